package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentMomo     PaymentMethod = "momo"
	PaymentCredit   PaymentMethod = "credit"
	PaymentMomoCash PaymentMethod = "momo/cash" // split payment
)

// InvoiceItem is one confirmed order line. Plain auto-increment key so
// lines keep their insertion order.
type InvoiceItem struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Description string    `gorm:"type:varchar(255);not null" json:"description" validate:"required"`
	Quantity    int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price       float64   `gorm:"not null" json:"price" validate:"gte=0"`
}

type Invoice struct {
	BaseModel
	InvoiceNumber string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoiceNumber" validate:"required"`
	CustomerName  string        `gorm:"type:varchar(255);not null" json:"customerName" validate:"required"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null" json:"paymentMethod" validate:"required,oneof=cash momo credit momo/cash"`
	Items         []InvoiceItem `gorm:"constraint:OnDelete:CASCADE" json:"items" validate:"required,min=1,dive"`
	TotalAmount   float64       `gorm:"not null" json:"totalAmount"`

	// Split payment (momo/cash only)
	CashAmount *float64 `json:"cashAmount,omitempty"`
	MomoAmount *float64 `json:"momoAmount,omitempty"`

	// Amount paid / balance tracking. Balance = AmountPaid - TotalAmount,
	// positive means change, negative means the customer still owes.
	AmountPaid *float64 `json:"amountPaid,omitempty"`
	Balance    *float64 `json:"balance,omitempty"`

	// Optional delivery scheduling
	IsScheduled     bool       `gorm:"default:false" json:"isScheduled"`
	DeliveryDate    *time.Time `json:"deliveryDate,omitempty"`
	DeliveryAddress string     `gorm:"type:text" json:"deliveryAddress,omitempty"`
	DeliveryNotes   string     `gorm:"type:text" json:"deliveryNotes,omitempty"`
}
