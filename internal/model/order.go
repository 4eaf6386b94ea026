package model

import "github.com/google/uuid"

// OrderItem mirrors InvoiceItem for the order submission record.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	OrderID     uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Description string    `gorm:"type:varchar(255);not null" json:"description" validate:"required"`
	Quantity    int       `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Price       float64   `gorm:"not null" json:"price" validate:"gte=0"`
}

// Order is the submission event that produced an invoice and triggers the
// stock deduction flow. It carries the same payload the storefront posts.
type Order struct {
	BaseModel
	InvoiceNumber string        `gorm:"type:varchar(50);index;not null" json:"invoiceNumber" validate:"required"`
	CustomerName  string        `gorm:"type:varchar(255);not null" json:"customerName" validate:"required"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null" json:"paymentMethod" validate:"required,oneof=cash momo credit momo/cash"`
	Items         []OrderItem   `gorm:"constraint:OnDelete:CASCADE" json:"items" validate:"required,min=1,dive"`
	TotalAmount   float64       `json:"totalAmount"`
}
