// Package export renders products, inventory and reports as downloadable
// spreadsheets and documents with fixed column schemas.
package export

import (
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

const (
	PrefixProducts  = "productos"
	PrefixInventory = "inventario"
	PrefixReports   = "reportes"

	ExtXLSX = "xlsx"
	ExtPDF  = "pdf"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

var (
	ProductSheetColumns   = []string{"Nombre", "SKU", "Categoría", "Precio", "Stock", "Stock Mínimo", "Descripción"}
	ProductDocColumns     = []string{"Producto", "SKU", "Categoría", "Precio", "Stock", "Mín."}
	InventorySheetColumns = []string{"Producto", "SKU", "Ubicación", "Stock Mínimo", "Stock Actual", "Estado", "Valor Total"}
	ReportColumns         = []string{"Categoría", "Valor", "Stock"}
)

// TotalValueLabel prefixes the summary line of report exports.
const TotalValueLabel = "Valor total del inventario"

// Options carries presentation details shared by document exports.
type Options struct {
	Business string
	Currency string
	Now      time.Time
}

func (o Options) currency() string {
	if o.Currency == "" {
		return "€"
	}
	return o.Currency
}

// FileName returns <prefix>_<YYYY-MM-DD>.<ext>.
func FileName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", slug.Make(prefix), now.Format("2006-01-02"), ext)
}

// Money formats an amount with the currency symbol and two decimals.
func Money(symbol string, d decimal.Decimal) string {
	return symbol + d.StringFixed(2)
}

// ContentType maps an export extension to its MIME type.
func ContentType(ext string) string {
	if ext == ExtPDF {
		return ContentTypePDF
	}
	return ContentTypeXLSX
}
