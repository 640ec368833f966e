package service

import (
	"time"

	"go-inventario/internal/model"
	"go-inventario/internal/report"
	"go-inventario/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardWindow is the period covered by sales and purchase totals.
const DashboardWindow = 30 * 24 * time.Hour

// MaxMovementDays bounds the stock movement chart.
const MaxMovementDays = 365

type DashboardStats struct {
	ProductCount   int             `json:"product_count"`
	CriticalCount  int             `json:"critical_count"`
	TotalStock     int             `json:"total_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	SalesTotal     decimal.Decimal `json:"sales_total"`
	PurchasesTotal decimal.Decimal `json:"purchases_total"`
	SalesCount     int             `json:"sales_count"`
	PurchasesCount int             `json:"purchases_count"`
	Since          time.Time       `json:"since"`
}

type ReportService interface {
	CategoryReport() (*report.Summary, error)
	GetDashboardStats() (*DashboardStats, error)
	GetStockMovement(days int) ([]report.MovementPoint, error)
}

type reportService struct {
	productRepo repository.ProductRepository
	purchases   repository.PurchaseRepository
	sales       repository.SaleRepository
	now         func() time.Time
}

func NewReportService(pRepo repository.ProductRepository, purchases repository.PurchaseRepository, sales repository.SaleRepository) ReportService {
	return &reportService{productRepo: pRepo, purchases: purchases, sales: sales, now: time.Now}
}

func (s *reportService) CategoryReport() (*report.Summary, error) {
	products, err := s.productRepo.FindAll(model.ProductFilter{})
	if err != nil {
		return nil, err
	}
	summary := report.Summarize(products, s.now())
	return &summary, nil
}

func (s *reportService) GetDashboardStats() (*DashboardStats, error) {
	products, err := s.productRepo.FindAll(model.ProductFilter{})
	if err != nil {
		return nil, err
	}

	end := s.now()
	start := end.Add(-DashboardWindow)
	purchases, err := s.purchases.FindBetween(start, end)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.FindBetween(start, end)
	if err != nil {
		return nil, err
	}

	summary := report.Summarize(products, end)
	purchased, sold := report.Totals(purchases, sales)
	return &DashboardStats{
		ProductCount:   summary.ProductCount,
		CriticalCount:  summary.CriticalCount,
		TotalStock:     summary.TotalStock,
		InventoryValue: summary.TotalValue,
		SalesTotal:     sold,
		PurchasesTotal: purchased,
		SalesCount:     len(sales),
		PurchasesCount: len(purchases),
		Since:          start,
	}, nil
}

// GetStockMovement returns one point per day for the last days days, today included.
func (s *reportService) GetStockMovement(days int) ([]report.MovementPoint, error) {
	if days <= 0 {
		days = 7
	}
	if days > MaxMovementDays {
		days = MaxMovementDays
	}

	end := s.now()
	y, m, d := end.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, end.Location()).AddDate(0, 0, -(days - 1))

	purchases, err := s.purchases.FindBetween(start, end)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.FindBetween(start, end)
	if err != nil {
		return nil, err
	}
	return report.StockMovement(purchases, sales, end, days), nil
}
