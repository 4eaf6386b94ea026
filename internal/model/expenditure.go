package model

import "time"

type ExpenditureCategory string

const (
	ExpUtilities   ExpenditureCategory = "utilities"
	ExpRent        ExpenditureCategory = "rent"
	ExpSupplies    ExpenditureCategory = "supplies"
	ExpSalary      ExpenditureCategory = "salary"
	ExpTransport   ExpenditureCategory = "transport"
	ExpMaintenance ExpenditureCategory = "maintenance"
	ExpOther       ExpenditureCategory = "other"
)

// Expenditure is a recorded business expense, independent of the sales flow.
type Expenditure struct {
	BaseModel
	Amount      float64             `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Description string              `gorm:"type:text;not null" json:"description" validate:"required"`
	Category    ExpenditureCategory `gorm:"type:varchar(30);index;not null" json:"category" validate:"required,oneof=utilities rent supplies salary transport maintenance other"`
	Date        time.Time           `gorm:"index;not null" json:"date"`
}
