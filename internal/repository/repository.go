// Package repository holds the GORM queries behind each service.
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// softDelete records deletedBy and soft-deletes the row with id. It reports
// gorm.ErrRecordNotFound when no live row matched.
func softDelete(db *gorm.DB, value interface{}, id uuid.UUID, deletedBy string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(value).Where("id = ?", id).Update("deleted_by", deletedBy)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(value, "id = ?", id).Error
	})
}
