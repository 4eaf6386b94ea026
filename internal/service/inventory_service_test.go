package service

import (
	"strings"
	"testing"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestCreateProductRejectsDuplicateName(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedProduct(t, db, "Beer", 8, 7, 10)
	svc := NewInventoryService(repository.NewProductRepo(db), db, newTestHub())

	dup := &model.Product{
		Name:  "Beer",
		Price: model.PriceTiers{Retail: 8, Wholesale: 7},
	}
	if err := svc.CreateProduct(dup); err == nil {
		t.Fatal("expected duplicate name rejection")
	}
}

func TestGetProductsFiltered(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedProduct(t, db, "Club Beer", 8, 7, 10)
	seedProduct(t, db, "Star Beer", 9, 8, 10)
	water := &model.Product{Name: "Voltic Water", Category: "water", Quantity: 5}
	if err := db.Create(water).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := NewInventoryService(repository.NewProductRepo(db), db, newTestHub())

	all, err := svc.GetProducts("", "")
	if err != nil || len(all) != 3 {
		t.Fatalf("expected 3 products, got %d (%v)", len(all), err)
	}

	drinks, err := svc.GetProducts("drinks", "")
	if err != nil || len(drinks) != 2 {
		t.Fatalf("expected 2 drinks, got %d (%v)", len(drinks), err)
	}

	stars, err := svc.GetProducts("", "star")
	if err != nil || len(stars) != 1 || stars[0].Name != "Star Beer" {
		t.Fatalf("expected case-insensitive name match, got %d (%v)", len(stars), err)
	}

	categories, err := svc.GetCategories()
	if err != nil || len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %v (%v)", categories, err)
	}
}

// Locked reads back the stock deduction and invoice numbering guarantees,
// so the clause must survive into the generated SQL on postgres. A dry-run
// session builds the statement without needing a live server.
func TestLockForUpdateEmitsLockingClause(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=localhost user=temiperi dbname=temiperi",
		PreferSimpleProtocol: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	locked := lockForUpdate(db).First(&model.Product{}, "id = ?", uuid.New()).Statement
	if sql := locked.SQL.String(); !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("locked read must emit FOR UPDATE, got %q", sql)
	}

	plain := db.Session(&gorm.Session{DryRun: true}).First(&model.Product{}, "id = ?", uuid.New()).Statement
	if sql := plain.SQL.String(); strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("unlocked read must not emit FOR UPDATE, got %q", sql)
	}
}

func TestDeductStock(t *testing.T) {
	db := setupTestDB(t, t.Name())
	product := seedProduct(t, db, "Beer", 8, 7, 10)
	svc := NewInventoryService(repository.NewProductRepo(db), db, newTestHub())

	updated, err := svc.DeductStock(product.ID, 4)
	if err != nil {
		t.Fatalf("deduct: %v", err)
	}
	if updated.Quantity != 6 {
		t.Fatalf("expected 6 remaining, got %d", updated.Quantity)
	}

	// Never below zero.
	if _, err := svc.DeductStock(product.ID, 7); err != ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	var reloaded model.Product
	if err := db.First(&reloaded, "id = ?", product.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Quantity != 6 {
		t.Fatalf("failed deduction must not change stock, got %d", reloaded.Quantity)
	}

	if _, err := svc.DeductStock(uuid.New(), 1); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := svc.DeductStock(product.ID, 0); err == nil {
		t.Fatal("expected rejection of non-positive quantity")
	}
}
