package service

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
	"time"

	"go-inventario/internal/export"
)

func TestExportService(t *testing.T) {
	f := newFixture(t, StockPolicy{AllowNegativeStock: true})
	f.product(t, "A", "Bebidas", "10", 5, 10)
	f.product(t, "B", "Limpieza", "2", 3, 1)

	svc := NewExportService(f.inventory, f.settings).(*exportService)
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }

	tests := []struct {
		name    string
		render  func() (*ExportFile, error)
		file    string
		content string
		magic   []byte
	}{
		{"products xlsx", func() (*ExportFile, error) { return svc.Products(export.ExtXLSX) }, "productos_2024-03-09.xlsx", export.ContentTypeXLSX, []byte("PK")},
		{"products pdf", func() (*ExportFile, error) { return svc.Products(export.ExtPDF) }, "productos_2024-03-09.pdf", export.ContentTypePDF, []byte("%PDF-")},
		{"inventory xlsx", svc.Inventory, "inventario_2024-03-09.xlsx", export.ContentTypeXLSX, []byte("PK")},
		{"report xlsx", func() (*ExportFile, error) { return svc.Report(export.ExtXLSX) }, "reportes_2024-03-09.xlsx", export.ContentTypeXLSX, []byte("PK")},
		{"report pdf", func() (*ExportFile, error) { return svc.Report(export.ExtPDF) }, "reportes_2024-03-09.pdf", export.ContentTypePDF, []byte("%PDF-")},
	}
	pattern := regexp.MustCompile(`^(productos|inventario|reportes)_\d{4}-\d{2}-\d{2}\.(xlsx|pdf)$`)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := tt.render()
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if file.Name != tt.file || !pattern.MatchString(file.Name) {
				t.Errorf("name = %q, want %q", file.Name, tt.file)
			}
			if file.ContentType != tt.content {
				t.Errorf("content type = %q", file.ContentType)
			}
			if !bytes.HasPrefix(file.Data, tt.magic) {
				t.Errorf("unexpected file header %q", file.Data[:8])
			}
		})
	}

	if _, err := svc.Products("csv"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("csv: got %v", err)
	}
}
