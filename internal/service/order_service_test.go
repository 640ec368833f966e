package service

import (
	"errors"
	"testing"

	"go-inventario/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRecordPurchase(t *testing.T) {
	f := newFixture(t, StockPolicy{AllowNegativeStock: true})
	a := f.product(t, "A", "", "5", 2, 0)
	b := f.product(t, "B", "", "7", 0, 0)

	supplier := &model.Supplier{Name: "Distribuciones Sur"}
	if err := f.suppliers.Create(supplier); err != nil {
		t.Fatalf("supplier: %v", err)
	}

	purchase, err := f.purchases.RecordPurchase(&model.PurchaseRequest{
		SupplierID: supplier.ID,
		Items: []model.PurchaseItemRequest{
			{ProductID: a.ID, Quantity: 10, UnitCost: dec("3.10")},
			{ProductID: b.ID, Quantity: 4, UnitCost: dec("5")},
		},
	}, testActor)
	if err != nil {
		t.Fatalf("record purchase: %v", err)
	}
	if purchase.Total.StringFixed(2) != "51.00" {
		t.Errorf("total = %s, want 51.00", purchase.Total.StringFixed(2))
	}
	if len(purchase.Items) != 2 || purchase.Supplier == nil {
		t.Errorf("purchase not reloaded with relations: %+v", purchase)
	}

	for _, tc := range []struct {
		id   uuid.UUID
		want int
	}{{a.ID, 12}, {b.ID, 4}} {
		p, _ := f.inventory.GetProductByID(tc.id)
		if p.Stock != tc.want {
			t.Errorf("stock of %s = %d, want %d", p.SKU, p.Stock, tc.want)
		}
	}
}

func TestRecordPurchaseIsAtomic(t *testing.T) {
	f := newFixture(t, StockPolicy{AllowNegativeStock: true})
	a := f.product(t, "A", "", "5", 2, 0)
	supplier := &model.Supplier{Name: "Proveedor"}
	f.suppliers.Create(supplier)

	_, err := f.purchases.RecordPurchase(&model.PurchaseRequest{
		SupplierID: supplier.ID,
		Items: []model.PurchaseItemRequest{
			{ProductID: a.ID, Quantity: 10, UnitCost: dec("1")},
			{ProductID: uuid.New(), Quantity: 1, UnitCost: dec("1")},
		},
	}, testActor)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	p, _ := f.inventory.GetProductByID(a.ID)
	if p.Stock != 2 {
		t.Errorf("stock must roll back, got %d", p.Stock)
	}
}

func TestRecordPurchaseUnknownSupplier(t *testing.T) {
	f := newFixture(t, StockPolicy{AllowNegativeStock: true})
	a := f.product(t, "A", "", "5", 2, 0)

	_, err := f.purchases.RecordPurchase(&model.PurchaseRequest{
		SupplierID: uuid.New(),
		Items:      []model.PurchaseItemRequest{{ProductID: a.ID, Quantity: 1, UnitCost: dec("1")}},
	}, testActor)
	if !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
}

func TestRecordSale(t *testing.T) {
	f := newFixture(t, StockPolicy{AllowNegativeStock: true})
	a := f.product(t, "A", "", "2.50", 10, 0)
	b := f.product(t, "B", "", "4.00", 3, 0)
	custom := dec("3.75")

	sale, err := f.sales.RecordSale(&model.SaleRequest{
		PaymentMethod: model.PaymentCash,
		Items: []model.SaleItemRequest{
			{ProductID: a.ID, Quantity: 4},
			{ProductID: b.ID, Quantity: 2, UnitPrice: &custom},
		},
	}, testActor)
	if err != nil {
		t.Fatalf("record sale: %v", err)
	}
	// 4 × 2.50 + 2 × 3.75
	if sale.Total.StringFixed(2) != "17.50" {
		t.Errorf("total = %s, want 17.50", sale.Total.StringFixed(2))
	}
	if sale.ClientID != nil {
		t.Errorf("anonymous sale got client %v", sale.ClientID)
	}

	pa, _ := f.inventory.GetProductByID(a.ID)
	pb, _ := f.inventory.GetProductByID(b.ID)
	if pa.Stock != 6 || pb.Stock != 1 {
		t.Errorf("stock after sale = %d, %d", pa.Stock, pb.Stock)
	}

	actions := f.pub.actions()
	if actions[len(actions)-1] != "sale_created" {
		t.Errorf("last event = %s", actions[len(actions)-1])
	}
}

func TestRecordSaleNegativeStockPolicy(t *testing.T) {
	f := newFixture(t, StockPolicy{AllowNegativeStock: false})
	a := f.product(t, "A", "", "1", 1, 0)

	_, err := f.sales.RecordSale(&model.SaleRequest{
		PaymentMethod: model.PaymentCard,
		Items:         []model.SaleItemRequest{{ProductID: a.ID, Quantity: 2}},
	}, testActor)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestRecordSaleValidation(t *testing.T) {
	f := newFixture(t, StockPolicy{AllowNegativeStock: true})
	a := f.product(t, "A", "", "1", 1, 0)
	missing := uuid.New()

	tests := []struct {
		name string
		req  model.SaleRequest
		want error
	}{
		{"no items", model.SaleRequest{PaymentMethod: model.PaymentCash}, ErrValidation},
		{"bad payment", model.SaleRequest{PaymentMethod: "BARTER", Items: []model.SaleItemRequest{{ProductID: a.ID, Quantity: 1}}}, ErrValidation},
		{"zero quantity", model.SaleRequest{PaymentMethod: model.PaymentCash, Items: []model.SaleItemRequest{{ProductID: a.ID}}}, ErrValidation},
		{"unknown client", model.SaleRequest{ClientID: &missing, PaymentMethod: model.PaymentCash, Items: []model.SaleItemRequest{{ProductID: a.ID, Quantity: 1}}}, ErrClientNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			if _, err := f.sales.RecordSale(&req, testActor); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDashboardAndMovement(t *testing.T) {
	f := newFixture(t, StockPolicy{AllowNegativeStock: true})
	a := f.product(t, "A", "Bebidas", "2", 10, 0)
	supplier := &model.Supplier{Name: "Proveedor"}
	f.suppliers.Create(supplier)

	if _, err := f.purchases.RecordPurchase(&model.PurchaseRequest{
		SupplierID: supplier.ID,
		Items:      []model.PurchaseItemRequest{{ProductID: a.ID, Quantity: 5, UnitCost: dec("1")}},
	}, testActor); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if _, err := f.sales.RecordSale(&model.SaleRequest{
		PaymentMethod: model.PaymentTransfer,
		Items:         []model.SaleItemRequest{{ProductID: a.ID, Quantity: 3}},
	}, testActor); err != nil {
		t.Fatalf("sale: %v", err)
	}

	stats, err := f.reports.GetDashboardStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.ProductCount != 1 || stats.TotalStock != 12 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.SalesTotal.StringFixed(2) != "6.00" || stats.PurchasesTotal.StringFixed(2) != "5.00" {
		t.Errorf("totals: sales %s purchases %s", stats.SalesTotal, stats.PurchasesTotal)
	}

	points, err := f.reports.GetStockMovement(7)
	if err != nil {
		t.Fatalf("movement: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	today := points[6]
	if today.Inbound != 5 || today.Outbound != 3 {
		t.Errorf("today = %+v", today)
	}

	summary, err := f.reports.CategoryReport()
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(summary.Categories) != 1 || summary.TotalValue.StringFixed(2) != "24.00" {
		t.Errorf("summary = %+v", summary)
	}
}
