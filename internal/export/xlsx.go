package export

import (
	"fmt"

	"go-inventario/internal/model"
	"go-inventario/internal/report"

	"github.com/xuri/excelize/v2"
)

const (
	sheetProducts  = "Productos"
	sheetInventory = "Inventario"
	sheetReports   = "Reportes"
)

// ProductsXLSX writes the product catalog, one row per product.
func ProductsXLSX(products []model.Product) ([]byte, error) {
	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		rows = append(rows, []interface{}{
			p.Name,
			p.SKU,
			p.Category,
			p.Price.InexactFloat64(),
			p.Stock,
			p.MinStock,
			p.Description,
		})
	}
	return writeWorkbook(sheetProducts, ProductSheetColumns, rows, nil)
}

// InventoryXLSX writes the inventory listing. Valor Total is a fixed
// two-decimal string so it reads the same in every spreadsheet locale.
func InventoryXLSX(items []model.InventoryRow) ([]byte, error) {
	rows := make([][]interface{}, 0, len(items))
	for _, it := range items {
		rows = append(rows, []interface{}{
			it.Product,
			it.SKU,
			it.Location,
			it.MinStock,
			it.Stock,
			it.Status,
			it.TotalValue.StringFixed(2),
		})
	}
	return writeWorkbook(sheetInventory, InventorySheetColumns, rows, nil)
}

// ReportXLSX writes one row per category followed by the total inventory value.
func ReportXLSX(summary report.Summary, opts Options) ([]byte, error) {
	rows := make([][]interface{}, 0, len(summary.Categories))
	for _, c := range summary.Categories {
		rows = append(rows, []interface{}{
			c.Category,
			Money(opts.currency(), c.TotalValue),
			c.TotalStock,
		})
	}
	footer := [][]interface{}{
		{},
		{TotalValueLabel, Money(opts.currency(), summary.TotalValue)},
	}
	return writeWorkbook(sheetReports, ReportColumns, rows, footer)
}

func writeWorkbook(sheet string, header []string, rows, footer [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return nil, err
	}

	next := 2
	for _, group := range [][][]interface{}{rows, footer} {
		for _, row := range group {
			if len(row) > 0 {
				cell := fmt.Sprintf("A%d", next)
				r := row
				if err := f.SetSheetRow(sheet, cell, &r); err != nil {
					return nil, err
				}
			}
			next++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
