package model

// InvoiceCounter is a single-row sequence backing invoice numbers.
// Locked FOR UPDATE while issuing so two tills never share a number.
type InvoiceCounter struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	LastSeq int64 `gorm:"not null;default:0" json:"last_seq"`
}
