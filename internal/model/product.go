package model

import (
	"strings"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// Inventory status labels, as shown in listings and exports.
const (
	StatusCritical = "Crítico"
	StatusOK       = "OK"
)

type Product struct {
	BaseModel
	Name         string          `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	SKU          string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required,max=50"`
	Category     string          `gorm:"type:varchar(100);index" json:"category" validate:"max=100"`
	CategorySlug string          `gorm:"type:varchar(120);index" json:"category_slug"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"price" validate:"decimal_gte0"`
	Stock        int             `gorm:"default:0" json:"stock"`
	MinStock     int             `gorm:"default:0" json:"min_stock" validate:"gte=0"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
}

// Normalize trims user input and derives the category slug.
func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	p.Category = strings.TrimSpace(p.Category)
	p.CategorySlug = CategorySlug(p.Category)
}

// CategorySlug is the URL-safe key for a category; uncategorised products share "sin-categoria".
func CategorySlug(category string) string {
	if strings.TrimSpace(category) == "" {
		return "sin-categoria"
	}
	return slug.Make(category)
}

// IsCritical reports whether stock has fallen to or below the minimum.
func (p *Product) IsCritical() bool {
	return p.Stock <= p.MinStock
}

func (p *Product) Status() string {
	if p.IsCritical() {
		return StatusCritical
	}
	return StatusOK
}

// Value is price × stock. Negative stock yields a negative value.
func (p *Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// ApplyDelta adds delta to stock and returns the stock before the change.
func (p *Product) ApplyDelta(delta int) int {
	previous := p.Stock
	p.Stock += delta
	return previous
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Category string
	Search   string
}

// InventoryRow is one line of the inventory listing and its spreadsheet export.
type InventoryRow struct {
	ProductID  string          `json:"product_id"`
	Product    string          `json:"product"`
	SKU        string          `json:"sku"`
	Location   string          `json:"location"`
	MinStock   int             `json:"min_stock"`
	Stock      int             `json:"stock"`
	Status     string          `json:"status"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// NewInventoryRow projects a product into the inventory listing.
func NewInventoryRow(p Product, location string) InventoryRow {
	return InventoryRow{
		ProductID:  p.ID.String(),
		Product:    p.Name,
		SKU:        p.SKU,
		Location:   location,
		MinStock:   p.MinStock,
		Stock:      p.Stock,
		Status:     p.Status(),
		TotalValue: p.Value(),
	}
}
