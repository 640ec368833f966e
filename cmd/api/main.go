package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go-inventario/internal/config"
	"go-inventario/internal/model"
	"go-inventario/internal/repository"
	"go-inventario/internal/router"
	"go-inventario/internal/service"
	"go-inventario/internal/ws"
	"go-inventario/pkg/database"
	"go-inventario/pkg/jwt"
	applog "go-inventario/pkg/logger"

	"github.com/joho/godotenv"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := applog.New(cfg.LogLevel)

	// 2. Setup Database
	sqlLevel := gormlogger.Warn
	if strings.EqualFold(cfg.LogLevel, "debug") {
		sqlLevel = gormlogger.Info
	}
	db, err := database.Connect(database.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN, LogLevel: sqlLevel})
	if err != nil {
		logger.Error("database connection failed", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(model.Models()...); err != nil {
			logger.Error("auto migrate failed", "error", err)
			os.Exit(1)
		}
	}

	// 3. Repositories
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	productRepo := repository.NewProductRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	clientRepo := repository.NewClientRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	settingRepo := repository.NewSettingRepo(db)

	// 4. Seed default privileges, roles, admin user and settings
	seeder := service.AccessSeeder{Users: userRepo, Roles: roleRepo, Privileges: privilegeRepo, Log: logger}
	if err := seeder.Seed(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		logger.Warn("seeding access control failed", "error", err)
	}

	// 5. Setup WebSocket Hub; it stops with the process signal context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	wsHub := ws.NewHub(logger)
	go wsHub.Run(ctx)

	settingService := service.NewSettingService(settingRepo, wsHub)
	if err := settingService.SeedDefaults(map[string]string{
		model.SettingWarehouseLocation: cfg.Inventory.WarehouseLocation,
		model.SettingCurrencySymbol:    cfg.Inventory.CurrencySymbol,
	}); err != nil {
		logger.Warn("seeding settings failed", "error", err)
	}

	// 6. Dependency Injection (Wiring Layers)
	policy := service.StockPolicy{AllowNegativeStock: cfg.Inventory.AllowNegativeStock}
	invService := service.NewInventoryService(productRepo, settingService, db, wsHub, logger, policy, cfg.Inventory.RecentAdjustments)

	app := router.New(router.Services{
		Auth:      service.NewAuthService(userRepo, jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), wsHub, cfg.Auth.IdleTimeout),
		Users:     service.NewUserService(userRepo, privilegeRepo, roleRepo),
		Inventory: invService,
		Partners:  service.NewPartnerService(supplierRepo, clientRepo),
		Purchases: service.NewPurchaseService(purchaseRepo, supplierRepo, productRepo, db, wsHub, logger),
		Sales:     service.NewSaleService(saleRepo, clientRepo, productRepo, db, wsHub, logger, policy),
		Reports:   service.NewReportService(productRepo, purchaseRepo, saleRepo),
		Exports:   service.NewExportService(invService, settingService),
		Settings:  settingService,
	}, router.Options{
		AppName:     cfg.AppName,
		CORSOrigins: strings.Join(cfg.CORSOrigins, ","),
		AccessLog:   true,
		Hub:         wsHub,
	})

	// 7. Graceful Shutdown
	go func() {
		logger.Info("server starting", "port", cfg.Port, "driver", cfg.Database.Driver)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server exited")
}
