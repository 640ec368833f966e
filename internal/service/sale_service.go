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

type SaleService interface {
	RecordSale(req *model.SaleRequest, actor Actor) (*model.Sale, error)
	GetAllSales() ([]model.Sale, error)
	GetSaleByID(id uuid.UUID) (*model.Sale, error)
}

type saleService struct {
	sales       repository.SaleRepository
	clients     repository.ClientRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	publish     Publisher
	log         *slog.Logger
	policy      StockPolicy
}

func NewSaleService(sales repository.SaleRepository, clients repository.ClientRepository, pRepo repository.ProductRepository, db *gorm.DB, hub Publisher, log *slog.Logger, policy StockPolicy) SaleService {
	if log == nil {
		log = slog.Default()
	}
	return &saleService{
		sales:       sales,
		clients:     clients,
		productRepo: pRepo,
		db:          db,
		publish:     publisherOrNop(hub),
		log:         log,
		policy:      policy,
	}
}

// RecordSale lowers stock for every item and stores the sale atomically.
// Items without a unit price are charged the catalog price.
func (s *saleService) RecordSale(req *model.SaleRequest, actor Actor) (*model.Sale, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	clientName := ""
	if req.ClientID != nil && *req.ClientID != uuid.Nil {
		client, err := s.clients.FindByID(*req.ClientID)
		if err != nil {
			return nil, notFound(err, ErrClientNotFound)
		}
		clientName = client.Name
	} else {
		req.ClientID = nil
	}

	sale := &model.Sale{
		ClientID:      req.ClientID,
		PaymentMethod: req.PaymentMethod,
		Note:          req.Note,
		Total:         decimal.Zero,
	}
	sale.Stamp(actor.ID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			product, _, err := applyStockDelta(tx, s.productRepo, item.ProductID, -item.Quantity, s.policy.AllowNegativeStock, actor)
			if err != nil {
				return err
			}
			price := product.Price
			if item.UnitPrice != nil {
				price = *item.UnitPrice
			}
			subtotal := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			sale.Items = append(sale.Items, model.SaleItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: price,
				Subtotal:  subtotal,
			})
			sale.Total = sale.Total.Add(subtotal)
		}
		return s.sales.Create(tx, sale)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("sale recorded",
		"sale_id", sale.ID,
		"items", len(sale.Items),
		"total", sale.Total.StringFixed(2),
		"payment_method", sale.PaymentMethod,
		"actor", actor.ID,
	)
	s.publish.Publish("sale_created", map[string]interface{}{
		"sale": map[string]interface{}{
			"id":             sale.ID,
			"client":         clientName,
			"total":          sale.Total,
			"items":          len(sale.Items),
			"payment_method": sale.PaymentMethod,
		},
		"user":    actor.payload(),
		"message": fmt.Sprintf("%s recorded a sale of %s", actor.Name, sale.Total.StringFixed(2)),
	})

	return s.GetSaleByID(sale.ID)
}

func (s *saleService) GetAllSales() ([]model.Sale, error) {
	return s.sales.FindAll()
}

func (s *saleService) GetSaleByID(id uuid.UUID) (*model.Sale, error) {
	sale, err := s.sales.FindByID(id)
	if err != nil {
		return nil, notFound(err, ErrSaleNotFound)
	}
	return sale, nil
}
