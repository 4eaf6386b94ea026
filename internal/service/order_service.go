package service

import (
	"errors"
	"fmt"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/pricing"
	"temiperi-stocks-backend/internal/repository"
	"temiperi-stocks-backend/internal/ws"
	"temiperi-stocks-backend/pkg/validator"

	"gorm.io/gorm"
)

var ErrNoItems = errors.New("please add at least one item before submitting")

type OrderService interface {
	Submit(req *model.Order) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewOrderService(oRepo repository.OrderRepository, pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) OrderService {
	return &orderService{
		orderRepo:   oRepo,
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

// Submit records the order submission. Unit prices are recomputed from the
// product's tier for each quantity, never taken from the request, and every
// line is checked against live stock. Deduction itself happens through the
// per-item product-update call that follows.
func (s *orderService) Submit(req *model.Order) error {
	if len(req.Items) == 0 {
		return ErrNoItems
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return errors.New(validator.FirstError(errs))
	}

	lines := make([]pricing.Line, 0, len(req.Items))
	for i := range req.Items {
		item := &req.Items[i]

		product, err := s.productRepo.FindByName(item.Description)
		if err != nil {
			return fmt.Errorf("product '%s' not found", item.Description)
		}
		if product.Quantity < item.Quantity {
			return ErrInsufficientStock
		}

		item.Price = pricing.UnitPrice(product.Price.Retail, product.Price.Wholesale, item.Quantity)
		lines = append(lines, pricing.Line{Quantity: item.Quantity, Price: item.Price})
	}
	req.TotalAmount = pricing.Total(lines)

	if err := s.orderRepo.Create(req); err != nil {
		return err
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "order_update",
		"action": "order_created",
		"order": map[string]interface{}{
			"id":            req.ID,
			"invoiceNumber": req.InvoiceNumber,
			"customerName":  req.CustomerName,
			"totalAmount":   req.TotalAmount,
		},
		"message": fmt.Sprintf("Order %s submitted for %s (GH₵%.2f)", req.InvoiceNumber, req.CustomerName, req.TotalAmount),
	})

	return nil
}
