package model

import (
	"time"

	"github.com/google/uuid"
)

type AdjustmentDirection string

const (
	AdjustAdd    AdjustmentDirection = "add"
	AdjustRemove AdjustmentDirection = "remove"
)

// Delta returns the signed stock change: +quantity for add, -quantity for remove.
func Delta(direction AdjustmentDirection, quantity int) int {
	if direction == AdjustRemove {
		return -quantity
	}
	return quantity
}

// AdjustStockRequest is the body of a manual stock adjustment.
type AdjustStockRequest struct {
	ProductID uuid.UUID           `json:"product_id" validate:"uuid_required"`
	Quantity  int                 `json:"quantity" validate:"gt=0"`
	Direction AdjustmentDirection `json:"direction" validate:"required,oneof=add remove"`
	Reason    string              `json:"reason" validate:"max=255"`
}

// StockAdjustment describes an applied adjustment. It is not persisted; the
// service keeps the most recent ones in memory for display.
type StockAdjustment struct {
	ProductID     uuid.UUID           `json:"product_id"`
	SKU           string              `json:"sku"`
	ProductName   string              `json:"product_name"`
	Direction     AdjustmentDirection `json:"direction"`
	Quantity      int                 `json:"quantity"`
	Delta         int                 `json:"delta"`
	Reason        string              `json:"reason,omitempty"`
	PreviousStock int                 `json:"previous_stock"`
	NewStock      int                 `json:"new_stock"`
	AppliedBy     string              `json:"applied_by"`
	AppliedAt     time.Time           `json:"applied_at"`
}
