package service

import (
	"go-inventario/internal/model"
	"go-inventario/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// applyStockDelta locks the product inside tx, adds delta to its stock and
// persists the result. It returns the updated product and the previous stock.
// Negative stock is rejected only when allowNegative is false.
func applyStockDelta(tx *gorm.DB, repo repository.ProductRepository, productID uuid.UUID, delta int, allowNegative bool, actor Actor) (*model.Product, int, error) {
	product, err := repo.FindByIDForUpdate(tx, productID)
	if err != nil {
		return nil, 0, notFound(err, ErrProductNotFound)
	}

	previous := product.ApplyDelta(delta)
	if product.Stock < 0 && delta < 0 && !allowNegative {
		return nil, previous, ErrInsufficientStock
	}

	if err := repo.UpdateStock(tx, product.ID, product.Stock, actor.ID); err != nil {
		return nil, previous, err
	}
	return product, previous, nil
}
