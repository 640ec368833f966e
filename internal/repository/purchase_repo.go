package repository

import (
	"time"

	"go-inventario/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(tx *gorm.DB, purchase *model.Purchase) error
	FindAll() ([]model.Purchase, error)
	FindByID(id uuid.UUID) (*model.Purchase, error)
	FindBetween(start, end time.Time) ([]model.Purchase, error)
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) Create(tx *gorm.DB, purchase *model.Purchase) error {
	return tx.Create(purchase).Error
}

func (r *purchaseRepo) FindAll() ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Preload("Supplier").Preload("Items.Product").Order("created_at DESC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) FindByID(id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	if err := r.db.Preload("Supplier").Preload("Items.Product").First(&purchase, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepo) FindBetween(start, end time.Time) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Preload("Items").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at ASC").
		Find(&purchases).Error
	return purchases, err
}
