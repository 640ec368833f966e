package export

import (
	"bytes"
	"fmt"
	"strconv"

	"go-inventario/internal/model"
	"go-inventario/internal/report"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Helvetica"
	rowHeight  = 7.0
)

type table struct {
	title   string
	columns []string
	widths  []float64
	aligns  []string
}

// ProductsPDF renders the catalog as a paginated table with the column header
// repeated on every page.
func ProductsPDF(products []model.Product, opts Options) ([]byte, error) {
	t := table{
		title:   "Listado de productos",
		columns: ProductDocColumns,
		widths:  []float64{60, 30, 40, 25, 18, 17},
		aligns:  []string{"L", "L", "L", "R", "R", "R"},
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.Name,
			p.SKU,
			p.Category,
			Money(opts.currency(), p.Price),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.MinStock),
		})
	}
	return renderTable(t, rows, nil, opts)
}

// ReportPDF renders the per-category report and the total inventory value.
func ReportPDF(summary report.Summary, opts Options) ([]byte, error) {
	t := table{
		title:   "Reporte de inventario por categoría",
		columns: ReportColumns,
		widths:  []float64{90, 50, 50},
		aligns:  []string{"L", "R", "R"},
	}
	rows := make([][]string, 0, len(summary.Categories))
	for _, c := range summary.Categories {
		rows = append(rows, []string{
			c.Category,
			Money(opts.currency(), c.TotalValue),
			fmt.Sprintf("%d unidades", c.TotalStock),
		})
	}
	footer := []string{
		fmt.Sprintf("%s: %s", TotalValueLabel, Money(opts.currency(), summary.TotalValue)),
		fmt.Sprintf("Productos: %d  ·  En estado crítico: %d", summary.ProductCount, summary.CriticalCount),
	}
	return renderTable(t, rows, footer, opts)
}

func renderTable(t table, rows [][]string, footer []string, opts Options) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // cp1252 covers accents and €
	pdf.SetTitle(t.title, true)
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont(fontFamily, "B", 14)
		pdf.CellFormat(0, 8, tr(t.title), "", 1, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 9)
		subtitle := opts.Now.Format("02/01/2006")
		if opts.Business != "" {
			subtitle = opts.Business + " - " + subtitle
		}
		pdf.CellFormat(0, 5, tr(subtitle), "", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont(fontFamily, "B", 10)
		pdf.SetFillColor(224, 224, 224)
		for i, col := range t.columns {
			pdf.CellFormat(t.widths[i], rowHeight, tr(col), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(fontFamily, "", 9)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	for _, row := range rows {
		for i, cell := range row {
			text := fit(pdf, tr(cell), t.widths[i]-2)
			pdf.CellFormat(t.widths[i], rowHeight, text, "1", 0, t.aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(footer) > 0 {
		pdf.Ln(4)
		pdf.SetFont(fontFamily, "B", 11)
		for _, line := range footer {
			pdf.CellFormat(0, rowHeight, tr(line), "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fit truncates s so it renders within width at the current font.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
