package repository

import (
	"strings"

	"temiperi-stocks-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByName(name string) (*model.Product, error)
	FindFiltered(category, query string) ([]model.Product, error)
	Categories() ([]string, error)
	Update(product *model.Product) error
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByName(name string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "name = ?", name).Error
	return &product, err
}

// FindFiltered applies the stock page filter: exact category (when set)
// AND case-insensitive substring match on name or category.
func (r *productRepo) FindFiltered(category, query string) ([]model.Product, error) {
	q := r.db.Order("name ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", like, like)
	}
	var products []model.Product
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&model.Product{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

// UpdateQuantity takes the *gorm.DB (tx) so it can run inside a transaction
func (r *productRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", newQuantity).Error
}
