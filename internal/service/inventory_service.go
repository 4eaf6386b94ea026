package service

import (
	"errors"
	"fmt"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/repository"
	"temiperi-stocks-backend/internal/ws"
	"temiperi-stocks-backend/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("not enough stock available for this product")
)

type InventoryService interface {
	CreateProduct(req *model.Product) error
	GetProducts(category, query string) ([]model.Product, error)
	GetCategories() ([]string, error)
	DeductStock(productID uuid.UUID, quantity int) (*model.Product, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *inventoryService) CreateProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return errors.New(validator.FirstError(errs))
	}

	// Product names double as order line descriptions, keep them unique
	existing, _ := s.productRepo.FindByName(req.Name)
	if existing != nil && existing.ID != uuid.Nil {
		return errors.New("product already exists")
	}

	return s.productRepo.Create(req)
}

func (s *inventoryService) GetProducts(category, query string) ([]model.Product, error) {
	if category == "" && query == "" {
		return s.productRepo.FindAll()
	}
	return s.productRepo.FindFiltered(category, query)
}

func (s *inventoryService) GetCategories() ([]string, error) {
	return s.productRepo.Categories()
}

// lockForUpdate adds a pessimistic row lock to a read inside the running
// transaction. No-op on databases without row locks (sqlite).
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// DeductStock is the post-order per-item deduction call. It locks the row,
// rejects deductions below zero, and broadcasts the new stock level.
func (s *inventoryService) DeductStock(productID uuid.UUID, quantity int) (*model.Product, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity to deduct must be greater than zero")
	}

	var updated model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := lockForUpdate(tx).First(&product, "id = ?", productID).Error; err != nil {
			return ErrProductNotFound
		}

		if product.Quantity < quantity {
			return ErrInsufficientStock
		}

		newQuantity := product.Quantity - quantity
		if err := s.productRepo.UpdateQuantity(tx, product.ID, newQuantity); err != nil {
			return err
		}

		product.Quantity = newQuantity
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "stock_deducted",
		"product": map[string]interface{}{
			"id":       updated.ID,
			"name":     updated.Name,
			"quantity": updated.Quantity,
		},
		"message": fmt.Sprintf("%d units of '%s' sold, %d remaining", quantity, updated.Name, updated.Quantity),
	})

	return &updated, nil
}
