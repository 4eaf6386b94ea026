package service

import (
	"fmt"
	"testing"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/ws"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Product{},
		&model.Invoice{}, &model.InvoiceItem{},
		&model.Order{}, &model.OrderItem{},
		&model.Expenditure{},
		&model.ChatMessage{}, &model.ChatAttachment{},
		&model.User{},
		&model.InvoiceCounter{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func seedProduct(t *testing.T, db *gorm.DB, name string, retail, wholesale float64, qty int) *model.Product {
	t.Helper()
	p := &model.Product{
		Name:     name,
		Category: "drinks",
		Price:    model.PriceTiers{Retail: retail, Wholesale: wholesale},
		Quantity: qty,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return p
}
