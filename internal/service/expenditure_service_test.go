package service

import (
	"testing"
	"time"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/repository"
	"temiperi-stocks-backend/internal/timeband"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func seedExpenditure(t *testing.T, db *gorm.DB, desc string, category model.ExpenditureCategory, amount float64, date time.Time) *model.Expenditure {
	t.Helper()
	exp := &model.Expenditure{
		Amount:      amount,
		Description: desc,
		Category:    category,
		Date:        date,
	}
	if err := db.Create(exp).Error; err != nil {
		t.Fatalf("seed expenditure %s: %v", desc, err)
	}
	return exp
}

func TestExpenditureListByBucket(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewExpenditureService(repository.NewExpenditureRepo(db))

	// Fixed clock: Wednesday 2024-03-13 14:30. The expense page counts the
	// week from Sunday, so the previous Saturday is out.
	now := time.Date(2024, 3, 13, 14, 30, 0, 0, time.Local)

	seedExpenditure(t, db, "ECG bill", model.ExpUtilities, 120, now.Add(-2*time.Hour))
	seedExpenditure(t, db, "Fuel for delivery", model.ExpTransport, 50, now.AddDate(0, 0, -1))
	seedExpenditure(t, db, "Shop rent", model.ExpRent, 800, now.AddDate(0, 0, -4)) // Saturday, before week start

	today, total, err := svc.List(ExpenditureFilter{Bucket: timeband.Today}, now)
	if err != nil {
		t.Fatalf("list today: %v", err)
	}
	if len(today) != 1 || today[0].Description != "ECG bill" {
		t.Fatalf("expected only today's expense, got %d", len(today))
	}
	if total != 120 {
		t.Fatalf("expected total 120, got %v", total)
	}

	week, total, err := svc.List(ExpenditureFilter{Bucket: timeband.ThisWeek}, now)
	if err != nil {
		t.Fatalf("list week: %v", err)
	}
	if len(week) != 2 {
		t.Fatalf("expected 2 expenses since Sunday, got %d", len(week))
	}
	if total != 170 {
		t.Fatalf("expected week total 170, got %v", total)
	}

	all, total, err := svc.List(ExpenditureFilter{Bucket: timeband.All}, now)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 || total != 970 {
		t.Fatalf("expected 3 expenses totalling 970, got %d / %v", len(all), total)
	}
}

func TestExpenditureCustomRangeInclusiveEnd(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewExpenditureService(repository.NewExpenditureRepo(db))
	now := time.Date(2024, 3, 13, 14, 30, 0, 0, time.Local)

	lateOnEnd := time.Date(2024, 3, 10, 23, 0, 0, 0, time.Local)
	afterEnd := time.Date(2024, 3, 11, 1, 0, 0, 0, time.Local)
	seedExpenditure(t, db, "Inside range", model.ExpSupplies, 30, lateOnEnd)
	seedExpenditure(t, db, "Outside range", model.ExpSupplies, 40, afterEnd)

	start := time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	exps, total, err := svc.List(ExpenditureFilter{Bucket: timeband.Custom, Start: &start, End: &end}, now)
	if err != nil {
		t.Fatalf("list custom: %v", err)
	}

	// The end date is inclusive through 23:59.
	if len(exps) != 1 || exps[0].Description != "Inside range" {
		t.Fatalf("expected the 23:00 expense on the end date, got %d", len(exps))
	}
	if total != 30 {
		t.Fatalf("expected total 30, got %v", total)
	}
}

func TestExpenditureCategoryAndTextFilters(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewExpenditureService(repository.NewExpenditureRepo(db))
	now := time.Now()

	seedExpenditure(t, db, "Fuel for delivery van", model.ExpTransport, 50, now)
	seedExpenditure(t, db, "Trotro fares", model.ExpTransport, 15, now)
	seedExpenditure(t, db, "Fuel for generator", model.ExpUtilities, 70, now)

	exps, total, err := svc.List(ExpenditureFilter{
		Bucket:   timeband.All,
		Category: model.ExpTransport,
		Query:    "fuel",
	}, now)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(exps) != 1 || exps[0].Description != "Fuel for delivery van" {
		t.Fatalf("expected category AND text intersection, got %d", len(exps))
	}
	if total != 50 {
		t.Fatalf("expected total 50, got %v", total)
	}
}

func TestExpenditureCreateDefaultsDateAndValidates(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewExpenditureService(repository.NewExpenditureRepo(db))

	exp := &model.Expenditure{
		Amount:      25,
		Description: "Broom and mop",
		Category:    model.ExpSupplies,
	}
	if err := svc.Create(exp); err != nil {
		t.Fatalf("create: %v", err)
	}
	if exp.Date.IsZero() {
		t.Fatal("expected date defaulted to now")
	}

	bad := &model.Expenditure{Amount: 10, Description: "x", Category: "snacks"}
	if err := svc.Create(bad); err == nil {
		t.Fatal("expected validation error for unknown category")
	}
}

func TestExpenditureUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewExpenditureService(repository.NewExpenditureRepo(db))
	exp := seedExpenditure(t, db, "Shop rent", model.ExpRent, 800, time.Now())

	updated, err := svc.Update(exp.ID, &model.Expenditure{
		Amount:      850,
		Description: "Shop rent (increase)",
		Category:    model.ExpRent,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Amount != 850 || updated.Description != "Shop rent (increase)" {
		t.Fatalf("edit not applied: %+v", updated)
	}
	if updated.Date.IsZero() {
		t.Fatal("zero date in request must keep the stored date")
	}

	if _, err := svc.Update(uuid.New(), &model.Expenditure{Amount: 1, Description: "x", Category: model.ExpOther}); err != ErrExpenditureNotFound {
		t.Fatalf("expected ErrExpenditureNotFound, got %v", err)
	}

	if err := svc.Delete(exp.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(exp.ID); err != ErrExpenditureNotFound {
		t.Fatalf("expected ErrExpenditureNotFound after delete, got %v", err)
	}
}
