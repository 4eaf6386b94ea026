package service

import (
	"strings"
	"testing"
	"time"

	"temiperi-stocks-backend/internal/model"
	"temiperi-stocks-backend/internal/repository"
	"temiperi-stocks-backend/internal/timeband"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// seedInvoice stores an invoice with one "Crate" line of qty at 10 each.
func seedInvoice(t *testing.T, db *gorm.DB, number, customer string, qty int) *model.Invoice {
	t.Helper()
	inv := &model.Invoice{
		InvoiceNumber: number,
		CustomerName:  customer,
		PaymentMethod: model.PaymentCash,
		TotalAmount:   float64(qty) * 10,
		Items:         []model.InvoiceItem{{Description: "Crate", Quantity: qty, Price: 10}},
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("seed invoice %s: %v", number, err)
	}
	return inv
}

func TestGenerateNumberSequence(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewInvoiceService(repository.NewInvoiceRepo(db), repository.NewProductRepo(db), db)

	first, err := svc.GenerateNumber()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first != "tm000001" {
		t.Fatalf("expected tm000001, got %s", first)
	}

	second, err := svc.GenerateNumber()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if second != "tm000002" {
		t.Fatalf("expected tm000002, got %s", second)
	}
}

func TestFallbackNumberShape(t *testing.T) {
	n := fallbackNumber()
	if !strings.HasPrefix(n, "tm") || len(n) != 11 {
		t.Fatalf("expected tm + 9 digits, got %q", n)
	}
}

func TestCreateInvoiceRecomputesPricesAndTotal(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedProduct(t, db, "Beer", 8, 7, 100)
	svc := NewInvoiceService(repository.NewInvoiceRepo(db), repository.NewProductRepo(db), db)

	inv := &model.Invoice{
		InvoiceNumber: "tm000010",
		CustomerName:  "Kwame Mensah",
		PaymentMethod: model.PaymentCash,
		TotalAmount:   1, // claimed total is ignored
		Items: []model.InvoiceItem{
			{Description: "Beer", Quantity: 12, Price: 99},
			{Description: "Hand-written line", Quantity: 2, Price: 5},
		},
	}
	if err := svc.Create(inv); err != nil {
		t.Fatalf("create: %v", err)
	}

	// 12 Beers price at the wholesale tier; the free-form line keeps its
	// payload price.
	if inv.Items[0].Price != 7 {
		t.Fatalf("expected wholesale 7, got %v", inv.Items[0].Price)
	}
	if inv.TotalAmount != 12*7+2*5 {
		t.Fatalf("expected total %v, got %v", float64(12*7+2*5), inv.TotalAmount)
	}

	saved, err := repository.NewInvoiceRepo(db).FindByNumber("tm000010")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(saved.Items) != 2 || saved.TotalAmount != inv.TotalAmount {
		t.Fatalf("persisted invoice does not match: %+v", saved)
	}
}

func TestCreateInvoiceSplitPayment(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewInvoiceService(repository.NewInvoiceRepo(db), repository.NewProductRepo(db), db)

	cash, momo := 10.0, 20.0
	inv := &model.Invoice{
		InvoiceNumber: "tm000011",
		CustomerName:  "Akosua",
		PaymentMethod: model.PaymentMomoCash,
		Items:         []model.InvoiceItem{{Description: "Crate", Quantity: 1, Price: 100}},
		CashAmount:    &cash,
		MomoAmount:    &momo,
	}
	if err := svc.Create(inv); err != ErrSplitMismatch {
		t.Fatalf("expected ErrSplitMismatch, got %v", err)
	}

	cash, momo = 40.0, 60.0
	inv.CashAmount, inv.MomoAmount = &cash, &momo
	if err := svc.Create(inv); err != nil {
		t.Fatalf("create with matching split: %v", err)
	}
}

func TestCreateInvoiceDerivesBalance(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewInvoiceService(repository.NewInvoiceRepo(db), repository.NewProductRepo(db), db)

	paid := 100.0
	inv := &model.Invoice{
		InvoiceNumber: "tm000012",
		CustomerName:  "Kwame Mensah",
		PaymentMethod: model.PaymentCash,
		Items: []model.InvoiceItem{
			{Description: "Beer", Quantity: 12, Price: 8},
			{Description: "Malt", Quantity: 5, Price: 10},
		},
		AmountPaid: &paid,
	}
	if err := svc.Create(inv); err != nil {
		t.Fatalf("create: %v", err)
	}
	if inv.Balance == nil || *inv.Balance != -46 {
		t.Fatalf("expected balance -46 (owing), got %v", inv.Balance)
	}
}

func TestUpdateInvoiceRejectsTotalMismatch(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewInvoiceService(repository.NewInvoiceRepo(db), repository.NewProductRepo(db), db)
	inv := seedInvoice(t, db, "tm000020", "Adwoa", 3)

	req := &model.Invoice{
		CustomerName:  "Adwoa",
		PaymentMethod: model.PaymentCash,
		TotalAmount:   999, // items sum to 30
		Items:         []model.InvoiceItem{{Description: "Crate", Quantity: 3, Price: 10}},
	}
	if _, err := svc.Update(inv.ID, req); err != ErrTotalMismatch {
		t.Fatalf("expected ErrTotalMismatch, got %v", err)
	}
}

func TestUpdateInvoiceReturnsPersistedState(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewInvoiceService(repository.NewInvoiceRepo(db), repository.NewProductRepo(db), db)
	inv := seedInvoice(t, db, "tm000021", "Adwoa", 3)

	req := &model.Invoice{
		CustomerName:  "Adwoa Boateng",
		PaymentMethod: model.PaymentMomo,
		TotalAmount:   2*10 + 4*5,
		Items: []model.InvoiceItem{
			{Description: "Crate", Quantity: 2, Price: 10},
			{Description: "Soda", Quantity: 4, Price: 5},
		},
	}
	updated, err := svc.Update(inv.ID, req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.CustomerName != "Adwoa Boateng" || updated.PaymentMethod != model.PaymentMomo {
		t.Fatalf("edit not applied: %+v", updated)
	}
	if len(updated.Items) != 2 || updated.TotalAmount != 40 {
		t.Fatalf("items not replaced: %+v", updated)
	}

	// The old line set must be gone, not orphaned.
	var lineCount int64
	db.Model(&model.InvoiceItem{}).Where("invoice_id = ?", inv.ID).Count(&lineCount)
	if lineCount != 2 {
		t.Fatalf("expected 2 lines after replace, got %d", lineCount)
	}
}

func TestUpdateInvoiceStockGuardAllowsOwnQuantity(t *testing.T) {
	db := setupTestDB(t, t.Name())
	seedProduct(t, db, "Crate", 10, 9, 0) // shelf is empty
	svc := NewInvoiceService(repository.NewInvoiceRepo(db), repository.NewProductRepo(db), db)
	inv := seedInvoice(t, db, "tm000022", "Adwoa", 3)

	// Keeping the already-claimed 3 is fine even with zero on the shelf.
	req := &model.Invoice{
		CustomerName:  "Adwoa",
		PaymentMethod: model.PaymentCash,
		TotalAmount:   30,
		Items:         []model.InvoiceItem{{Description: "Crate", Quantity: 3, Price: 10}},
	}
	if _, err := svc.Update(inv.ID, req); err != nil {
		t.Fatalf("update keeping own quantity: %v", err)
	}

	// Growing beyond shelf + own claim is not.
	req.TotalAmount = 40
	req.Items[0].Quantity = 4
	if _, err := svc.Update(inv.ID, req); err != ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestListInvoicesByBucket(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewInvoiceService(repository.NewInvoiceRepo(db), repository.NewProductRepo(db), db)
	now := time.Now()

	backdate := func(inv *model.Invoice, ts time.Time) {
		if err := db.Model(inv).Update("created_at", ts).Error; err != nil {
			t.Fatalf("backdate: %v", err)
		}
	}

	a := seedInvoice(t, db, "tm000030", "Today Customer", 1)
	b := seedInvoice(t, db, "tm000031", "Recent Customer", 2)
	c := seedInvoice(t, db, "tm000032", "Old Customer", 3)
	backdate(b, now.AddDate(0, 0, -3))
	backdate(c, now.AddDate(0, 0, -10))
	_ = a

	today, total, err := svc.List(timeband.Today, "", now)
	if err != nil {
		t.Fatalf("list today: %v", err)
	}
	if len(today) != 1 || today[0].InvoiceNumber != "tm000030" {
		t.Fatalf("expected only today's invoice, got %d", len(today))
	}
	if total != 10 {
		t.Fatalf("expected today's total 10, got %v", total)
	}

	// thisWeek is a rolling 7 days on this page.
	week, _, err := svc.List(timeband.ThisWeek, "", now)
	if err != nil {
		t.Fatalf("list week: %v", err)
	}
	if len(week) != 2 {
		t.Fatalf("expected 2 invoices this week, got %d", len(week))
	}

	past, _, err := svc.List(timeband.Past, "", now)
	if err != nil {
		t.Fatalf("list past: %v", err)
	}
	if len(past) != 1 || past[0].InvoiceNumber != "tm000032" {
		t.Fatalf("expected only the old invoice in past, got %d", len(past))
	}

	// Text filter intersects with the bucket.
	filtered, _, err := svc.List(timeband.All, "recent", now)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].InvoiceNumber != "tm000031" {
		t.Fatalf("expected text match on customer name, got %d", len(filtered))
	}
}

func TestTotalLabelPerBucket(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewInvoiceService(repository.NewInvoiceRepo(db), repository.NewProductRepo(db), db)

	cases := map[timeband.Bucket]string{
		timeband.Today:     "Today's Total Sales",
		timeband.Yesterday: "Yesterday's Total Sales",
		timeband.ThisWeek:  "This Week's Total Sales",
		timeband.Past:      "Past Total Sales",
		timeband.All:       "Total Sales",
	}
	for bucket, want := range cases {
		if got := svc.TotalLabel(bucket); got != want {
			t.Errorf("label for %s: got %q want %q", bucket, got, want)
		}
	}
}

func TestDeleteInvoiceNotFound(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewInvoiceService(repository.NewInvoiceRepo(db), repository.NewProductRepo(db), db)

	if err := svc.Delete(uuid.New()); err != ErrInvoiceNotFound {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}
