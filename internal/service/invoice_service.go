package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/pricing"
	"temiperi-stocks-backend/internal/repository"
	"temiperi-stocks-backend/internal/timeband"
	"temiperi-stocks-backend/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrTotalMismatch   = errors.New("invoice total does not match the sum of its items")
	ErrSplitMismatch   = errors.New("cash and momo amounts must add up to the invoice total")
)

type InvoiceService interface {
	GenerateNumber() (string, error)
	Create(req *model.Invoice) error
	List(bucket timeband.Bucket, query string, now time.Time) ([]model.Invoice, float64, error)
	Get(id uuid.UUID) (*model.Invoice, error)
	Update(id uuid.UUID, req *model.Invoice) (*model.Invoice, error)
	Delete(id uuid.UUID) error
	TotalLabel(bucket timeband.Bucket) string
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
}

func NewInvoiceService(iRepo repository.InvoiceRepository, pRepo repository.ProductRepository, db *gorm.DB) InvoiceService {
	return &invoiceService{
		invoiceRepo: iRepo,
		productRepo: pRepo,
		db:          db,
	}
}

// GenerateNumber issues the next tm-prefixed invoice number from the
// counter row. If the counter cannot be read the flow must not block, so it
// falls back to a timestamp-derived number with a random suffix.
func (s *invoiceService) GenerateNumber() (string, error) {
	var seq int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var counter model.InvoiceCounter
		if err := lockForUpdate(tx).First(&counter).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			counter = model.InvoiceCounter{}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
		}
		counter.LastSeq++
		seq = counter.LastSeq
		return tx.Save(&counter).Error
	})
	if err != nil {
		return fallbackNumber(), nil
	}
	return fmt.Sprintf("tm%06d", seq), nil
}

// fallbackNumber mirrors the storefront's own fallback: last six digits of
// the unix-ms clock plus three random digits.
func fallbackNumber() string {
	ms := fmt.Sprintf("%d", time.Now().UnixMilli())
	return fmt.Sprintf("tm%s%03d", ms[len(ms)-6:], rand.Intn(1000))
}

// Create persists a submitted invoice. The total is recomputed from the
// lines (and unit prices from the product tier where the product still
// exists) rather than trusted from the payload.
func (s *invoiceService) Create(req *model.Invoice) error {
	if len(req.Items) == 0 {
		return ErrNoItems
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return errors.New(validator.FirstError(errs))
	}

	for i := range req.Items {
		item := &req.Items[i]
		if product, err := s.productRepo.FindByName(item.Description); err == nil {
			item.Price = pricing.UnitPrice(product.Price.Retail, product.Price.Wholesale, item.Quantity)
		}
	}
	req.TotalAmount = totalOf(req.Items)

	if err := s.applyPaymentFields(req); err != nil {
		return err
	}

	return s.invoiceRepo.Create(req)
}

// applyPaymentFields derives balance from amountPaid and checks that split
// payments add up to the total.
func (s *invoiceService) applyPaymentFields(inv *model.Invoice) error {
	if inv.PaymentMethod == model.PaymentMomoCash {
		if inv.CashAmount == nil || inv.MomoAmount == nil {
			return ErrSplitMismatch
		}
		if !pricing.Equal2(*inv.CashAmount+*inv.MomoAmount, inv.TotalAmount) {
			return ErrSplitMismatch
		}
	}
	if inv.AmountPaid != nil {
		balance := pricing.Balance(*inv.AmountPaid, inv.TotalAmount)
		inv.Balance = &balance
	}
	return nil
}

func totalOf(items []model.InvoiceItem) float64 {
	lines := make([]pricing.Line, len(items))
	for i, it := range items {
		lines[i] = pricing.Line{Quantity: it.Quantity, Price: it.Price}
	}
	return pricing.Total(lines)
}

func (s *invoiceService) List(bucket timeband.Bucket, query string, now time.Time) ([]model.Invoice, float64, error) {
	band, _ := timeband.ForBucket(bucket, now, timeband.WeekRolling)
	invoices, err := s.invoiceRepo.FindAll(band, query)
	if err != nil {
		return nil, 0, err
	}
	var total float64
	for _, inv := range invoices {
		total += inv.TotalAmount
	}
	return invoices, pricing.Round2(total), nil
}

// TotalLabel is the caption the storefront shows next to the running total.
func (s *invoiceService) TotalLabel(bucket timeband.Bucket) string {
	switch bucket {
	case timeband.Today:
		return "Today's Total Sales"
	case timeband.Yesterday:
		return "Yesterday's Total Sales"
	case timeband.ThisWeek:
		return "This Week's Total Sales"
	case timeband.Past:
		return "Past Total Sales"
	default:
		return "Total Sales"
	}
}

func (s *invoiceService) Get(id uuid.UUID) (*model.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}
	return invoice, nil
}

// Update saves an edited invoice. The claimed total must equal the sum of
// the lines, added quantities are re-validated against live stock, and the
// caller gets the persisted row back, never a locally fabricated one.
func (s *invoiceService) Update(id uuid.UUID, req *model.Invoice) (*model.Invoice, error) {
	existing, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}

	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, errors.New("quantity must be a positive integer")
		}
	}
	if !pricing.Equal2(req.TotalAmount, totalOf(req.Items)) {
		return nil, ErrTotalMismatch
	}

	// A line may grow by at most what is still on the shelf plus what this
	// invoice had already claimed.
	prevQty := map[string]int{}
	for _, item := range existing.Items {
		prevQty[item.Description] += item.Quantity
	}
	for _, item := range req.Items {
		product, err := s.productRepo.FindByName(item.Description)
		if err != nil {
			continue // free-form or retired product, nothing to check against
		}
		if item.Quantity > product.Quantity+prevQty[item.Description] {
			return nil, ErrInsufficientStock
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", existing.ID).Delete(&model.InvoiceItem{}).Error; err != nil {
			return err
		}

		existing.CustomerName = req.CustomerName
		existing.PaymentMethod = req.PaymentMethod
		existing.Items = make([]model.InvoiceItem, len(req.Items))
		for i, item := range req.Items {
			existing.Items[i] = model.InvoiceItem{
				InvoiceID:   existing.ID,
				Description: item.Description,
				Quantity:    item.Quantity,
				Price:       item.Price,
			}
		}
		existing.TotalAmount = totalOf(existing.Items)
		existing.CashAmount = req.CashAmount
		existing.MomoAmount = req.MomoAmount
		existing.AmountPaid = req.AmountPaid
		if err := s.applyPaymentFields(existing); err != nil {
			return err
		}

		return tx.Save(existing).Error
	})
	if err != nil {
		return nil, err
	}

	// Server echo: re-read so the caller replaces local state with what was
	// actually persisted.
	return s.invoiceRepo.FindByID(existing.ID)
}

func (s *invoiceService) Delete(id uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByID(id); err != nil {
		return ErrInvoiceNotFound
	}
	return s.invoiceRepo.Delete(id)
}
