package service

import (
	"errors"
	"time"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/pricing"
	"temiperi-stocks-backend/internal/repository"
	"temiperi-stocks-backend/internal/timeband"
	"temiperi-stocks-backend/pkg/validator"

	"github.com/google/uuid"
)

var ErrExpenditureNotFound = errors.New("expenditure not found")

// ExpenditureFilter captures everything the expense page filters on: a
// preset bucket or a custom inclusive range, a category, and free text.
type ExpenditureFilter struct {
	Bucket   timeband.Bucket
	Start    *time.Time
	End      *time.Time
	Category model.ExpenditureCategory
	Query    string
}

type ExpenditureService interface {
	List(filter ExpenditureFilter, now time.Time) ([]model.Expenditure, float64, error)
	Create(exp *model.Expenditure) error
	Update(id uuid.UUID, req *model.Expenditure) (*model.Expenditure, error)
	Delete(id uuid.UUID) error
}

type expenditureService struct {
	repo repository.ExpenditureRepository
}

func NewExpenditureService(repo repository.ExpenditureRepository) ExpenditureService {
	return &expenditureService{repo: repo}
}

// List returns the filtered expenditures plus their running total. A custom
// range with both bounds set takes precedence over the preset buckets.
func (s *expenditureService) List(filter ExpenditureFilter, now time.Time) ([]model.Expenditure, float64, error) {
	var band timeband.Range
	if filter.Bucket == timeband.Custom && filter.Start != nil && filter.End != nil {
		band = timeband.CustomRange(*filter.Start, *filter.End)
	} else {
		band, _ = timeband.ForBucket(filter.Bucket, now, timeband.WeekCalendar)
	}

	exps, err := s.repo.FindAll(band, filter.Category, filter.Query)
	if err != nil {
		return nil, 0, err
	}
	var total float64
	for _, exp := range exps {
		total += exp.Amount
	}
	return exps, pricing.Round2(total), nil
}

func (s *expenditureService) Create(exp *model.Expenditure) error {
	if errs := validator.ValidateStruct(exp); len(errs) > 0 {
		return errors.New(validator.FirstError(errs))
	}
	if exp.Date.IsZero() {
		exp.Date = time.Now()
	}
	return s.repo.Create(exp)
}

func (s *expenditureService) Update(id uuid.UUID, req *model.Expenditure) (*model.Expenditure, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, ErrExpenditureNotFound
	}

	existing.Amount = req.Amount
	existing.Description = req.Description
	existing.Category = req.Category
	if !req.Date.IsZero() {
		existing.Date = req.Date
	}
	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return nil, errors.New(validator.FirstError(errs))
	}

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *expenditureService) Delete(id uuid.UUID) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return ErrExpenditureNotFound
	}
	return s.repo.Delete(id)
}
