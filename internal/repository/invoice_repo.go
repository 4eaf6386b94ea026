package repository

import (
	"strings"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/timeband"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(invoice *model.Invoice) error
	FindAll(band timeband.Range, query string) ([]model.Invoice, error)
	FindByID(id uuid.UUID) (*model.Invoice, error)
	FindByNumber(number string) (*model.Invoice, error)
	Delete(id uuid.UUID) error
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db}
}

func (r *invoiceRepo) Create(invoice *model.Invoice) error {
	return r.db.Create(invoice).Error
}

// FindAll returns invoices newest first, optionally constrained to a time
// band and a case-insensitive customer/number text filter.
func (r *invoiceRepo) FindAll(band timeband.Range, query string) ([]model.Invoice, error) {
	q := r.db.Preload("Items").Order("created_at DESC")
	if !band.From.IsZero() {
		q = q.Where("created_at >= ?", band.From)
	}
	if !band.To.IsZero() {
		q = q.Where("created_at < ?", band.To)
	}
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(customer_name) LIKE ? OR LOWER(invoice_number) LIKE ?", like, like)
	}
	var invoices []model.Invoice
	err := q.Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) FindByID(id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.Preload("Items").First(&invoice, "id = ?", id).Error
	return &invoice, err
}

func (r *invoiceRepo) FindByNumber(number string) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.Preload("Items").First(&invoice, "invoice_number = ?", number).Error
	return &invoice, err
}

func (r *invoiceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Invoice{}, "id = ?", id).Error
}
