package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

type Sale struct {
	BaseModel
	ClientID      *uuid.UUID      `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Client        *Client         `json:"client,omitempty"`
	Items         []SaleItem      `gorm:"foreignKey:SaleID" json:"items"`
	Total         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"total"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20)" json:"payment_method"`
	Note          string          `gorm:"type:text" json:"note"`
}

type SaleItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"subtotal"`
}

type SaleRequest struct {
	ClientID      *uuid.UUID        `json:"client_id"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod PaymentMethod     `json:"payment_method" validate:"required,oneof=CASH CARD TRANSFER"`
	Note          string            `json:"note"`
}

// SaleItemRequest leaves UnitPrice nil to charge the catalog price.
type SaleItemRequest struct {
	ProductID uuid.UUID        `json:"product_id" validate:"uuid_required"`
	Quantity  int              `json:"quantity" validate:"gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"omitempty,decimal_gte0"`
}
