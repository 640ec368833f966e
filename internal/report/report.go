// Package report derives aggregates from the product collection and the
// purchase/sale history. Everything here is a pure function of its input;
// nothing is cached between calls.
package report

import (
	"sort"
	"time"

	"go-inventario/internal/model"

	"github.com/shopspring/decimal"
)

// Uncategorized labels products whose category is blank.
const Uncategorized = "Sin categoría"

type CategoryAggregate struct {
	Category     string          `json:"category"`
	Slug         string          `json:"slug"`
	TotalValue   decimal.Decimal `json:"total_value"`
	TotalStock   int             `json:"total_stock"`
	ProductCount int             `json:"product_count"`
}

type Summary struct {
	Categories    []CategoryAggregate `json:"categories"`
	TotalValue    decimal.Decimal     `json:"total_value"`
	TotalStock    int                 `json:"total_stock"`
	ProductCount  int                 `json:"product_count"`
	CriticalCount int                 `json:"critical_count"`
	GeneratedAt   time.Time           `json:"generated_at"`
}

// AggregateByCategory groups products by category, summing price×stock and
// stock. The result is ordered by category name.
func AggregateByCategory(products []model.Product) []CategoryAggregate {
	byName := make(map[string]*CategoryAggregate)
	for i := range products {
		p := &products[i]
		name := p.Category
		if name == "" {
			name = Uncategorized
		}
		agg, ok := byName[name]
		if !ok {
			agg = &CategoryAggregate{Category: name, Slug: model.CategorySlug(p.Category), TotalValue: decimal.Zero}
			byName[name] = agg
		}
		agg.TotalValue = agg.TotalValue.Add(p.Value())
		agg.TotalStock += p.Stock
		agg.ProductCount++
	}

	out := make([]CategoryAggregate, 0, len(byName))
	for _, agg := range byName {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// TotalValue is Σ price×stock over all products.
func TotalValue(products []model.Product) decimal.Decimal {
	total := decimal.Zero
	for i := range products {
		total = total.Add(products[i].Value())
	}
	return total
}

// Summarize builds the report shown on the reports page and in its exports.
func Summarize(products []model.Product, now time.Time) Summary {
	s := Summary{
		Categories:   AggregateByCategory(products),
		TotalValue:   TotalValue(products),
		ProductCount: len(products),
		GeneratedAt:  now,
	}
	for i := range products {
		s.TotalStock += products[i].Stock
		if products[i].IsCritical() {
			s.CriticalCount++
		}
	}
	return s
}

// CriticalProducts returns the products at or below their minimum stock.
func CriticalProducts(products []model.Product) []model.Product {
	out := []model.Product{}
	for _, p := range products {
		if p.IsCritical() {
			out = append(out, p)
		}
	}
	return out
}
