package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go-inventario/internal/model"
	"go-inventario/internal/report"
	"go-inventario/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryService interface {
	CreateProduct(req *model.Product, actor Actor) error
	UpdateProduct(id uuid.UUID, req *model.Product, actor Actor) (*model.Product, error)
	DeleteProduct(id uuid.UUID, actor Actor) error
	GetAllProducts(filter model.ProductFilter) ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)

	AdjustStock(req *model.AdjustStockRequest, actor Actor) (*model.StockAdjustment, error)
	RecentAdjustments(limit int) []model.StockAdjustment
	GetInventory() ([]model.InventoryRow, error)
	GetCriticalProducts() ([]model.Product, error)
}

// StockPolicy controls how stock-changing commands treat shortfalls.
type StockPolicy struct {
	AllowNegativeStock bool
}

type inventoryService struct {
	productRepo repository.ProductRepository
	settings    SettingService
	db          *gorm.DB
	publish     Publisher
	log         *slog.Logger
	policy      StockPolicy
	recent      *adjustmentLog
}

func NewInventoryService(pRepo repository.ProductRepository, settings SettingService, db *gorm.DB, hub Publisher, log *slog.Logger, policy StockPolicy, recentCapacity int) InventoryService {
	if log == nil {
		log = slog.Default()
	}
	return &inventoryService{
		productRepo: pRepo,
		settings:    settings,
		db:          db,
		publish:     publisherOrNop(hub),
		log:         log,
		policy:      policy,
		recent:      newAdjustmentLog(recentCapacity),
	}
}

func productPayload(p *model.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":        p.ID,
		"sku":       p.SKU,
		"name":      p.Name,
		"category":  p.Category,
		"stock":     p.Stock,
		"min_stock": p.MinStock,
		"price":     p.Price,
		"status":    p.Status(),
	}
}

func (s *inventoryService) CreateProduct(req *model.Product, actor Actor) error {
	req.Normalize()
	if err := validate(req); err != nil {
		return err
	}

	existing, err := s.productRepo.FindBySKU(req.SKU)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrSKUExists
	}

	req.ID = uuid.Nil
	req.Stamp(actor.ID)
	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.log.Info("product created", "product_id", req.ID, "sku", req.SKU, "actor", actor.ID)
	s.publish.Publish("product_created", map[string]interface{}{
		"product": productPayload(req),
		"user":    actor.payload(),
		"message": fmt.Sprintf("%s created product '%s'", actor.Name, req.Name),
	})
	return nil
}

func (s *inventoryService) UpdateProduct(id uuid.UUID, req *model.Product, actor Actor) (*model.Product, error) {
	req.Normalize()
	if err := validate(req); err != nil {
		return nil, err
	}

	var updated *model.Product
	var oldStock int

	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.productRepo.FindByIDForUpdate(tx, id)
		if err != nil {
			return notFound(err, ErrProductNotFound)
		}

		if req.SKU != existing.SKU {
			var clash int64
			if err := tx.Unscoped().Model(&model.Product{}).Where("sku = ? AND id <> ?", req.SKU, id).Count(&clash).Error; err != nil {
				return err
			}
			if clash > 0 {
				return ErrSKUExists
			}
		}

		oldStock = existing.Stock
		existing.Name = req.Name
		existing.SKU = req.SKU
		existing.Category = req.Category
		existing.CategorySlug = req.CategorySlug
		existing.Price = req.Price
		existing.Stock = req.Stock
		existing.MinStock = req.MinStock
		existing.Description = req.Description
		existing.Touch(actor.ID)

		if err := tx.Save(existing).Error; err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	payload := productPayload(updated)
	payload["old_stock"] = oldStock
	payload["new_stock"] = updated.Stock
	s.publish.Publish("product_updated", map[string]interface{}{
		"product": payload,
		"user":    actor.payload(),
		"message": fmt.Sprintf("%s updated product '%s'", actor.Name, updated.Name),
	})
	return updated, nil
}

func (s *inventoryService) DeleteProduct(id uuid.UUID, actor Actor) error {
	if err := s.productRepo.Delete(id, actor.ID); err != nil {
		return notFound(err, ErrProductNotFound)
	}

	s.log.Info("product deleted", "product_id", id, "actor", actor.ID)
	s.publish.Publish("product_deleted", map[string]interface{}{
		"product": map[string]interface{}{"id": id},
		"user":    actor.payload(),
	})
	return nil
}

func (s *inventoryService) GetAllProducts(filter model.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindAll(filter)
}

func (s *inventoryService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound)
	}
	return product, nil
}

// AdjustStock applies a signed delta (+quantity for add, -quantity for remove)
// to the product's stock.
func (s *inventoryService) AdjustStock(req *model.AdjustStockRequest, actor Actor) (*model.StockAdjustment, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	delta := model.Delta(req.Direction, req.Quantity)
	var adj *model.StockAdjustment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, previous, err := applyStockDelta(tx, s.productRepo, req.ProductID, delta, s.policy.AllowNegativeStock, actor)
		if err != nil {
			return err
		}
		adj = &model.StockAdjustment{
			ProductID:     product.ID,
			SKU:           product.SKU,
			ProductName:   product.Name,
			Direction:     req.Direction,
			Quantity:      req.Quantity,
			Delta:         delta,
			Reason:        req.Reason,
			PreviousStock: previous,
			NewStock:      product.Stock,
			AppliedBy:     actor.ID,
			AppliedAt:     time.Now(),
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrValidation) && !errors.Is(err, ErrNotFound) {
			s.log.Error("stock adjustment failed", "product_id", req.ProductID, "error", err)
		}
		return nil, err
	}

	s.recent.add(*adj)
	s.log.Info("stock adjusted",
		"product_id", adj.ProductID,
		"delta", adj.Delta,
		"new_stock", adj.NewStock,
		"reason", adj.Reason,
		"actor", actor.ID,
	)

	verb := "added"
	if req.Direction == model.AdjustRemove {
		verb = "removed"
	}
	s.publish.Publish("stock_adjusted", map[string]interface{}{
		"adjustment": adj,
		"user":       actor.payload(),
		"message":    fmt.Sprintf("%s %s %d units of '%s'", actor.Name, verb, req.Quantity, adj.ProductName),
	})
	return adj, nil
}

func (s *inventoryService) RecentAdjustments(limit int) []model.StockAdjustment {
	return s.recent.list(limit)
}

func (s *inventoryService) GetInventory() ([]model.InventoryRow, error) {
	products, err := s.productRepo.FindAll(model.ProductFilter{})
	if err != nil {
		return nil, err
	}

	location := s.settings.Value(model.SettingWarehouseLocation)
	rows := make([]model.InventoryRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, model.NewInventoryRow(p, location))
	}
	return rows, nil
}

func (s *inventoryService) GetCriticalProducts() ([]model.Product, error) {
	products, err := s.productRepo.FindAll(model.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return report.CriticalProducts(products), nil
}

// adjustmentLog keeps the most recent adjustments in memory, newest last.
type adjustmentLog struct {
	mu    sync.Mutex
	items []model.StockAdjustment
	cap   int
}

func newAdjustmentLog(capacity int) *adjustmentLog {
	if capacity <= 0 {
		capacity = 100
	}
	return &adjustmentLog{cap: capacity}
}

func (l *adjustmentLog) add(a model.StockAdjustment) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, a)
	if len(l.items) > l.cap {
		l.items = l.items[len(l.items)-l.cap:]
	}
}

// list returns up to limit adjustments, newest first. limit <= 0 means all.
func (l *adjustmentLog) list(limit int) []model.StockAdjustment {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := len(l.items)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]model.StockAdjustment, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, l.items[i])
	}
	return out
}
