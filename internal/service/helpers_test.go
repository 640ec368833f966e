package service

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"go-inventario/internal/model"
	"go-inventario/internal/repository"
	"go-inventario/pkg/database"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testActor = Actor{ID: "tester", Name: "Tester", Email: "tester@example.com"}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(database.Config{
		Driver:   database.DriverSQLite,
		DSN:      fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		LogLevel: logger.Silent,
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.AutoMigrate(model.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type event struct {
	action string
	data   map[string]interface{}
}

// capturePublisher records events instead of broadcasting them.
type capturePublisher struct {
	mu     sync.Mutex
	events []event
}

func (p *capturePublisher) Publish(action string, data map[string]interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event{action: action, data: data})
}

func (p *capturePublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.action
	}
	return out
}

type fixture struct {
	db        *gorm.DB
	pub       *capturePublisher
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	clients   repository.ClientRepository
	settings  SettingService
	inventory InventoryService
	purchases PurchaseService
	sales     SaleService
	reports   ReportService
}

func newFixture(t *testing.T, policy StockPolicy) *fixture {
	t.Helper()
	db := newTestDB(t)
	pub := &capturePublisher{}
	f := &fixture{
		db:        db,
		pub:       pub,
		products:  repository.NewProductRepo(db),
		suppliers: repository.NewSupplierRepo(db),
		clients:   repository.NewClientRepo(db),
	}
	f.settings = NewSettingService(repository.NewSettingRepo(db), pub)
	if err := f.settings.SeedDefaults(nil); err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	f.inventory = NewInventoryService(f.products, f.settings, db, pub, quietLogger(), policy, 10)
	f.purchases = NewPurchaseService(repository.NewPurchaseRepo(db), f.suppliers, f.products, db, pub, quietLogger())
	f.sales = NewSaleService(repository.NewSaleRepo(db), f.clients, f.products, db, pub, quietLogger(), policy)
	f.reports = NewReportService(f.products, repository.NewPurchaseRepo(db), repository.NewSaleRepo(db))
	return f
}

func (f *fixture) product(t *testing.T, sku, category string, price string, stock, minStock int) *model.Product {
	t.Helper()
	p := &model.Product{
		Name:     "Producto " + sku,
		SKU:      sku,
		Category: category,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		MinStock: minStock,
	}
	if err := f.inventory.CreateProduct(p, testActor); err != nil {
		t.Fatalf("create product %s: %v", sku, err)
	}
	return p
}
