package report

import (
	"testing"
	"time"

	"go-inventario/internal/model"

	"github.com/shopspring/decimal"
)

func product(name, category, price string, stock, min int) model.Product {
	return model.Product{
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		MinStock: min,
	}
}

func sampleProducts() []model.Product {
	return []model.Product{
		product("Martillo", "Herramientas", "12.50", 4, 2),
		product("Destornillador", "Herramientas", "3.20", 10, 5),
		product("Tornillo", "Ferretería", "0.10", 500, 100),
		product("Cinta", "", "2.00", 1, 3),
		product("Taladro", "Herramientas", "89.99", -1, 0),
	}
}

func TestAggregateByCategory(t *testing.T) {
	aggs := AggregateByCategory(sampleProducts())

	if len(aggs) != 3 {
		t.Fatalf("expected 3 categories, got %d: %+v", len(aggs), aggs)
	}

	// Sorted by name
	if aggs[0].Category != "Ferretería" || aggs[1].Category != "Herramientas" || aggs[2].Category != Uncategorized {
		t.Fatalf("unexpected order: %s, %s, %s", aggs[0].Category, aggs[1].Category, aggs[2].Category)
	}

	tools := aggs[1]
	// 12.50*4 + 3.20*10 + 89.99*-1 = 50 + 32 - 89.99
	if want := decimal.RequireFromString("-7.99"); !tools.TotalValue.Equal(want) {
		t.Errorf("tools value = %s, want %s", tools.TotalValue, want)
	}
	if tools.TotalStock != 13 || tools.ProductCount != 3 {
		t.Errorf("tools stock=%d count=%d", tools.TotalStock, tools.ProductCount)
	}
	if aggs[2].Slug != "sin-categoria" {
		t.Errorf("uncategorized slug = %s", aggs[2].Slug)
	}
}

func TestCategoryTotalsMatchOverallValue(t *testing.T) {
	products := sampleProducts()

	sum := decimal.Zero
	for _, agg := range AggregateByCategory(products) {
		sum = sum.Add(agg.TotalValue)
	}

	direct := decimal.Zero
	for _, p := range products {
		direct = direct.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}

	if !sum.Equal(direct) || !sum.Equal(TotalValue(products)) {
		t.Fatalf("category sum %s != direct %s", sum, direct)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if aggs := AggregateByCategory(nil); len(aggs) != 0 {
		t.Fatalf("expected no aggregates, got %v", aggs)
	}
	if !TotalValue(nil).IsZero() {
		t.Fatal("expected zero total")
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := Summarize(sampleProducts(), now)

	if s.ProductCount != 5 {
		t.Errorf("product count = %d", s.ProductCount)
	}
	// Cinta (1<=3) and Taladro (-1<=0) are critical
	if s.CriticalCount != 2 {
		t.Errorf("critical count = %d", s.CriticalCount)
	}
	if s.TotalStock != 514 {
		t.Errorf("total stock = %d", s.TotalStock)
	}
	if !s.GeneratedAt.Equal(now) {
		t.Errorf("generated at = %v", s.GeneratedAt)
	}
	if len(CriticalProducts(sampleProducts())) != 2 {
		t.Errorf("critical products mismatch")
	}
}

func TestStockMovement(t *testing.T) {
	end := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	purchases := []model.Purchase{
		{BaseModel: model.BaseModel{CreatedAt: end.Add(-time.Hour)}, Items: []model.PurchaseItem{{Quantity: 5}, {Quantity: 2}}, Total: decimal.NewFromInt(70)},
		{BaseModel: model.BaseModel{CreatedAt: end.AddDate(0, 0, -10)}, Items: []model.PurchaseItem{{Quantity: 99}}, Total: decimal.NewFromInt(1)},
	}
	sales := []model.Sale{
		{BaseModel: model.BaseModel{CreatedAt: end.AddDate(0, 0, -2)}, Items: []model.SaleItem{{Quantity: 3}}, Total: decimal.NewFromInt(30)},
	}

	points := StockMovement(purchases, sales, end, 7)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	if points[0].Date != "2026-03-04" || points[6].Date != "2026-03-10" {
		t.Fatalf("unexpected range %s..%s", points[0].Date, points[6].Date)
	}
	if points[6].Inbound != 7 {
		t.Errorf("inbound today = %d", points[6].Inbound)
	}
	if points[4].Outbound != 3 {
		t.Errorf("outbound 2026-03-08 = %d", points[4].Outbound)
	}

	purchased, sold := Totals(purchases, sales)
	if !purchased.Equal(decimal.NewFromInt(71)) || !sold.Equal(decimal.NewFromInt(30)) {
		t.Errorf("totals purchased=%s sold=%s", purchased, sold)
	}
}
