package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel is embedded by every UUID-keyed table. Deletes are soft and the
// *By columns record which user touched the row last.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	CreatedBy string `json:"created_by"`
	UpdatedBy string `json:"updated_by"`
	DeletedBy string `json:"deleted_by,omitempty"`
}

func (base *BaseModel) BeforeCreate(*gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// Stamp records actor as creator and last editor.
func (base *BaseModel) Stamp(actor string) {
	base.CreatedBy = actor
	base.Touch(actor)
}

// Touch records actor as last editor.
func (base *BaseModel) Touch(actor string) {
	base.UpdatedBy = actor
}
