package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Purchase struct {
	BaseModel
	SupplierID uuid.UUID       `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Supplier   *Supplier       `json:"supplier,omitempty"`
	Items      []PurchaseItem  `gorm:"foreignKey:PurchaseID" json:"items"`
	Total      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"total"`
	Note       string          `gorm:"type:text" json:"note"`
}

type PurchaseItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Product    *Product        `json:"product,omitempty"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitCost   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_cost"`
	Subtotal   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"subtotal"`
}

type PurchaseRequest struct {
	SupplierID uuid.UUID             `json:"supplier_id" validate:"uuid_required"`
	Items      []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
	Note       string                `json:"note"`
}

type PurchaseItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"uuid_required"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost" validate:"decimal_gte0"`
}
