package repository

import (
	"strings"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/timeband"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenditureRepository interface {
	Create(exp *model.Expenditure) error
	FindAll(band timeband.Range, category model.ExpenditureCategory, query string) ([]model.Expenditure, error)
	FindByID(id uuid.UUID) (*model.Expenditure, error)
	Update(exp *model.Expenditure) error
	Delete(id uuid.UUID) error
}

type expenditureRepo struct {
	db *gorm.DB
}

func NewExpenditureRepo(db *gorm.DB) ExpenditureRepository {
	return &expenditureRepo{db}
}

func (r *expenditureRepo) Create(exp *model.Expenditure) error {
	return r.db.Create(exp).Error
}

// FindAll filters on the expense date (not the row creation time), newest
// first. Category and text filters AND with the time band.
func (r *expenditureRepo) FindAll(band timeband.Range, category model.ExpenditureCategory, query string) ([]model.Expenditure, error) {
	q := r.db.Order("date DESC")
	if !band.From.IsZero() {
		q = q.Where("date >= ?", band.From)
	}
	if !band.To.IsZero() {
		q = q.Where("date < ?", band.To)
	}
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(description) LIKE ? OR LOWER(category) LIKE ?", like, like)
	}
	var exps []model.Expenditure
	err := q.Find(&exps).Error
	return exps, err
}

func (r *expenditureRepo) FindByID(id uuid.UUID) (*model.Expenditure, error) {
	var exp model.Expenditure
	err := r.db.First(&exp, "id = ?", id).Error
	return &exp, err
}

func (r *expenditureRepo) Update(exp *model.Expenditure) error {
	return r.db.Save(exp).Error
}

func (r *expenditureRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Expenditure{}, "id = ?", id).Error
}
