package model

// PriceTiers holds the two price brackets of a product. Retail applies to
// small quantities, wholesale kicks in above the tier threshold.
type PriceTiers struct {
	Retail    float64 `gorm:"column:retail_price;default:0" json:"retail_price"`
	Wholesale float64 `gorm:"column:whole_sale_price;default:0" json:"whole_sale_price"`
}

type Product struct {
	BaseModel
	Name     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Category string     `gorm:"type:varchar(100);index" json:"category"`
	Price    PriceTiers `gorm:"embedded" json:"price"`
	Quantity int        `gorm:"default:0" json:"quantity"` // stock on hand
}
