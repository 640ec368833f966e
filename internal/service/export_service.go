package service

import (
	"time"

	"go-inventario/internal/export"
	"go-inventario/internal/model"
	"go-inventario/internal/report"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type ExportService interface {
	Products(ext string) (*ExportFile, error)
	Inventory() (*ExportFile, error)
	Report(ext string) (*ExportFile, error)
}

type exportService struct {
	inventory InventoryService
	settings  SettingService
	now       func() time.Time
}

func NewExportService(inventory InventoryService, settings SettingService) ExportService {
	return &exportService{inventory: inventory, settings: settings, now: time.Now}
}

func (s *exportService) options() export.Options {
	return export.Options{
		Business: s.settings.Value(model.SettingBusinessName),
		Currency: s.settings.Value(model.SettingCurrencySymbol),
		Now:      s.now(),
	}
}

func (s *exportService) file(prefix, ext string, data []byte, now time.Time) *ExportFile {
	return &ExportFile{
		Name:        export.FileName(prefix, ext, now),
		ContentType: export.ContentType(ext),
		Data:        data,
	}
}

func (s *exportService) Products(ext string) (*ExportFile, error) {
	products, err := s.inventory.GetAllProducts(model.ProductFilter{})
	if err != nil {
		return nil, err
	}

	opts := s.options()
	var data []byte
	switch ext {
	case export.ExtXLSX:
		data, err = export.ProductsXLSX(products)
	case export.ExtPDF:
		data, err = export.ProductsPDF(products, opts)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	return s.file(export.PrefixProducts, ext, data, opts.Now), nil
}

func (s *exportService) Inventory() (*ExportFile, error) {
	rows, err := s.inventory.GetInventory()
	if err != nil {
		return nil, err
	}
	data, err := export.InventoryXLSX(rows)
	if err != nil {
		return nil, err
	}
	return s.file(export.PrefixInventory, export.ExtXLSX, data, s.now()), nil
}

func (s *exportService) Report(ext string) (*ExportFile, error) {
	products, err := s.inventory.GetAllProducts(model.ProductFilter{})
	if err != nil {
		return nil, err
	}

	opts := s.options()
	summary := report.Summarize(products, opts.Now)
	var data []byte
	switch ext {
	case export.ExtXLSX:
		data, err = export.ReportXLSX(summary, opts)
	case export.ExtPDF:
		data, err = export.ReportPDF(summary, opts)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	return s.file(export.PrefixReports, ext, data, opts.Now), nil
}
