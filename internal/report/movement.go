package report

import (
	"time"

	"go-inventario/internal/model"

	"github.com/shopspring/decimal"
)

const dayLayout = "2006-01-02"

// MovementPoint is one day of stock flow: units received through purchases
// and units sold.
type MovementPoint struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// StockMovement buckets purchase and sale quantities per calendar day for the
// days ending at end (inclusive). Days without activity are present with zeros.
func StockMovement(purchases []model.Purchase, sales []model.Sale, end time.Time, days int) []MovementPoint {
	if days <= 0 {
		return []MovementPoint{}
	}
	loc := end.Location()
	points := make([]MovementPoint, days)
	index := make(map[string]int, days)
	first := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		d := first.AddDate(0, 0, i).Format(dayLayout)
		points[i] = MovementPoint{Date: d}
		index[d] = i
	}

	for _, p := range purchases {
		if i, ok := index[p.CreatedAt.In(loc).Format(dayLayout)]; ok {
			for _, item := range p.Items {
				points[i].Inbound += item.Quantity
			}
		}
	}
	for _, s := range sales {
		if i, ok := index[s.CreatedAt.In(loc).Format(dayLayout)]; ok {
			for _, item := range s.Items {
				points[i].Outbound += item.Quantity
			}
		}
	}
	return points
}

// Totals sums purchase and sale amounts.
func Totals(purchases []model.Purchase, sales []model.Sale) (purchased, sold decimal.Decimal) {
	purchased, sold = decimal.Zero, decimal.Zero
	for _, p := range purchases {
		purchased = purchased.Add(p.Total)
	}
	for _, s := range sales {
		sold = sold.Add(s.Total)
	}
	return purchased, sold
}
