package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDelta(t *testing.T) {
	tests := []struct {
		direction AdjustmentDirection
		quantity  int
		want      int
	}{
		{AdjustAdd, 5, 5},
		{AdjustRemove, 5, -5},
		{AdjustAdd, 1, 1},
		{AdjustRemove, 12, -12},
	}
	for _, tt := range tests {
		if got := Delta(tt.direction, tt.quantity); got != tt.want {
			t.Errorf("Delta(%s, %d) = %d, want %d", tt.direction, tt.quantity, got, tt.want)
		}
	}
}

func TestApplyDelta(t *testing.T) {
	p := Product{Stock: 3}

	prev := p.ApplyDelta(Delta(AdjustAdd, 4))
	if prev != 3 || p.Stock != 7 {
		t.Fatalf("add: prev=%d stock=%d", prev, p.Stock)
	}

	prev = p.ApplyDelta(Delta(AdjustRemove, 10))
	if prev != 7 || p.Stock != -3 {
		t.Fatalf("remove past zero: prev=%d stock=%d", prev, p.Stock)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		stock, min int
		want       string
	}{
		{5, 10, StatusCritical},
		{10, 10, StatusCritical},
		{11, 10, StatusOK},
		{0, 0, StatusCritical},
		{-2, 0, StatusCritical},
	}
	for _, tt := range tests {
		p := Product{Stock: tt.stock, MinStock: tt.min}
		if got := p.Status(); got != tt.want {
			t.Errorf("stock=%d min=%d: got %s, want %s", tt.stock, tt.min, got, tt.want)
		}
	}
}

func TestInventoryRowExample(t *testing.T) {
	p := Product{Name: "Tornillo", SKU: "TOR-01", Price: decimal.NewFromInt(10), Stock: 5, MinStock: 10}

	row := NewInventoryRow(p, "Almacén Principal")
	if row.Status != "Crítico" {
		t.Errorf("status = %s", row.Status)
	}
	if got := row.TotalValue.StringFixed(2); got != "50.00" {
		t.Errorf("total value = %s", got)
	}
	if row.Location != "Almacén Principal" {
		t.Errorf("location = %s", row.Location)
	}
}

func TestNormalize(t *testing.T) {
	p := Product{Name: " Tuerca ", SKU: " TU-1 ", Category: " Ferretería Básica "}
	p.Normalize()
	if p.Name != "Tuerca" || p.SKU != "TU-1" || p.Category != "Ferretería Básica" {
		t.Errorf("unexpected trim: %+v", p)
	}
	if p.CategorySlug != "ferreteria-basica" {
		t.Errorf("slug = %s", p.CategorySlug)
	}

	empty := Product{}
	empty.Normalize()
	if empty.CategorySlug != "sin-categoria" {
		t.Errorf("empty category slug = %s", empty.CategorySlug)
	}
}
