package service

import (
	"fmt"
	"log/slog"

	"go-inventario/internal/model"
	"go-inventario/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseService interface {
	RecordPurchase(req *model.PurchaseRequest, actor Actor) (*model.Purchase, error)
	GetAllPurchases() ([]model.Purchase, error)
	GetPurchaseByID(id uuid.UUID) (*model.Purchase, error)
}

type purchaseService struct {
	purchases   repository.PurchaseRepository
	suppliers   repository.SupplierRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	publish     Publisher
	log         *slog.Logger
}

func NewPurchaseService(purchases repository.PurchaseRepository, suppliers repository.SupplierRepository, pRepo repository.ProductRepository, db *gorm.DB, hub Publisher, log *slog.Logger) PurchaseService {
	if log == nil {
		log = slog.Default()
	}
	return &purchaseService{
		purchases:   purchases,
		suppliers:   suppliers,
		productRepo: pRepo,
		db:          db,
		publish:     publisherOrNop(hub),
		log:         log,
	}
}

// RecordPurchase receives goods from a supplier: every item raises stock and
// the purchase is stored in the same transaction.
func (s *purchaseService) RecordPurchase(req *model.PurchaseRequest, actor Actor) (*model.Purchase, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	supplier, err := s.suppliers.FindByID(req.SupplierID)
	if err != nil {
		return nil, notFound(err, ErrSupplierNotFound)
	}

	purchase := &model.Purchase{SupplierID: supplier.ID, Note: req.Note, Total: decimal.Zero}
	purchase.Stamp(actor.ID)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			// Purchases only add stock, so the negative-stock policy never applies.
			if _, _, err := applyStockDelta(tx, s.productRepo, item.ProductID, item.Quantity, true, actor); err != nil {
				return err
			}
			subtotal := item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity)))
			purchase.Items = append(purchase.Items, model.PurchaseItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitCost:  item.UnitCost,
				Subtotal:  subtotal,
			})
			purchase.Total = purchase.Total.Add(subtotal)
		}
		return s.purchases.Create(tx, purchase)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("purchase recorded",
		"purchase_id", purchase.ID,
		"supplier_id", supplier.ID,
		"items", len(purchase.Items),
		"total", purchase.Total.StringFixed(2),
		"actor", actor.ID,
	)
	s.publish.Publish("purchase_created", map[string]interface{}{
		"purchase": map[string]interface{}{
			"id":       purchase.ID,
			"supplier": supplier.Name,
			"total":    purchase.Total,
			"items":    len(purchase.Items),
		},
		"user":    actor.payload(),
		"message": fmt.Sprintf("%s recorded a purchase from '%s'", actor.Name, supplier.Name),
	})

	return s.GetPurchaseByID(purchase.ID)
}

func (s *purchaseService) GetAllPurchases() ([]model.Purchase, error) {
	return s.purchases.FindAll()
}

func (s *purchaseService) GetPurchaseByID(id uuid.UUID) (*model.Purchase, error) {
	purchase, err := s.purchases.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrPurchaseNotFound)
	}
	return purchase, nil
}
