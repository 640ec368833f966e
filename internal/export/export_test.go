package export

import (
	"bytes"
	"fmt"
	"regexp"
	"testing"
	"time"

	"go-inventario/internal/model"
	"go-inventario/internal/report"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func sampleProducts() []model.Product {
	return []model.Product{
		{Name: "Tornillo", SKU: "TOR-01", Category: "Ferretería", Price: decimal.NewFromInt(10), Stock: 5, MinStock: 10, Description: "Acero"},
		{Name: "Martillo", SKU: "MAR-01", Category: "Herramientas", Price: decimal.RequireFromString("12.5"), Stock: 20, MinStock: 2},
	}
}

func openSheet(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read sheet %s: %v", sheet, err)
	}
	return rows
}

func TestFileName(t *testing.T) {
	pattern := regexp.MustCompile(`^productos_\d{4}-\d{2}-\d{2}\.(xlsx|pdf)$`)
	for _, ext := range []string{ExtXLSX, ExtPDF} {
		name := FileName(PrefixProducts, ext, fixedNow)
		if !pattern.MatchString(name) {
			t.Errorf("%q does not match %s", name, pattern)
		}
	}
	if got := FileName(PrefixInventory, ExtXLSX, fixedNow); got != "inventario_2026-10-17.xlsx" {
		t.Errorf("got %s", got)
	}
}

func TestMoney(t *testing.T) {
	if got := Money("€", decimal.RequireFromString("3.456")); got != "€3.46" {
		t.Errorf("got %s", got)
	}
	if got := Money("€", decimal.Zero); got != "€0.00" {
		t.Errorf("got %s", got)
	}
}

func TestProductsXLSX(t *testing.T) {
	data, err := ProductsXLSX(sampleProducts())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	rows := openSheet(t, data, sheetProducts)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	for i, col := range ProductSheetColumns {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}
	if rows[1][0] != "Tornillo" || rows[1][1] != "TOR-01" || rows[1][2] != "Ferretería" {
		t.Errorf("unexpected row: %v", rows[1])
	}
	if rows[1][4] != "5" || rows[1][5] != "10" || rows[1][6] != "Acero" {
		t.Errorf("unexpected stock columns: %v", rows[1])
	}
}

func TestInventoryXLSX(t *testing.T) {
	var items []model.InventoryRow
	for _, p := range sampleProducts() {
		items = append(items, model.NewInventoryRow(p, "Almacén Principal"))
	}

	data, err := InventoryXLSX(items)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	rows := openSheet(t, data, sheetInventory)
	for i, col := range InventorySheetColumns {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	want := []string{"Tornillo", "TOR-01", "Almacén Principal", "10", "5", "Crítico", "50.00"}
	for i, v := range want {
		if rows[1][i] != v {
			t.Errorf("row1[%d] = %q, want %q", i, rows[1][i], v)
		}
	}
	if rows[2][5] != "OK" || rows[2][6] != "250.00" {
		t.Errorf("unexpected second row: %v", rows[2])
	}
}

func TestReportXLSX(t *testing.T) {
	summary := report.Summarize(sampleProducts(), fixedNow)

	data, err := ReportXLSX(summary, Options{Currency: "€"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	rows := openSheet(t, data, sheetReports)
	if rows[1][0] != "Ferretería" || rows[1][1] != "€50.00" || rows[1][2] != "5" {
		t.Errorf("unexpected first category: %v", rows[1])
	}
	if rows[2][0] != "Herramientas" || rows[2][1] != "€250.00" {
		t.Errorf("unexpected second category: %v", rows[2])
	}
	last := rows[len(rows)-1]
	if last[0] != TotalValueLabel || last[1] != "€300.00" {
		t.Errorf("unexpected summary line: %v", last)
	}
}

func TestProductsPDF(t *testing.T) {
	data, err := ProductsPDF(sampleProducts(), Options{Business: "Ferretería Paco", Now: fixedNow})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("not a PDF: %q", data[:8])
	}
}

func TestProductsPDFPaginates(t *testing.T) {
	var many []model.Product
	for i := 0; i < 120; i++ {
		many = append(many, model.Product{
			Name:  fmt.Sprintf("Producto con un nombre bastante largo número %d", i),
			SKU:   fmt.Sprintf("SKU-%03d", i),
			Price: decimal.NewFromInt(int64(i)),
			Stock: i,
		})
	}

	data, err := ProductsPDF(many, Options{Now: fixedNow})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if pages := bytes.Count(data, []byte("<</Type /Page\n")); pages < 2 {
		t.Fatalf("expected several pages, got %d", pages)
	}
}

func TestReportPDF(t *testing.T) {
	data, err := ReportPDF(report.Summarize(sampleProducts(), fixedNow), Options{Now: fixedNow})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("not a PDF")
	}
}
