// Package router assembles the Fiber application: middleware, routes and
// the websocket endpoint.
package router

import (
	"go-inventario/internal/handler"
	"go-inventario/internal/middleware"
	"go-inventario/internal/model"
	"go-inventario/internal/service"
	"go-inventario/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Services struct {
	Auth      service.AuthService
	Users     service.UserService
	Inventory service.InventoryService
	Partners  service.PartnerService
	Purchases service.PurchaseService
	Sales     service.SaleService
	Reports   service.ReportService
	Exports   service.ExportService
	Settings  service.SettingService
}

type Options struct {
	AppName     string
	CORSOrigins string
	AccessLog   bool // request logger, off in tests
	Hub         *ws.Hub
}

func New(svc Services, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: opts.AppName,
	})

	if opts.AccessLog {
		app.Use(logger.New())
	}
	app.Use(recover.New())
	corsCfg := cors.Config{}
	if opts.CORSOrigins != "" {
		corsCfg.AllowOrigins = opts.CORSOrigins
	}
	app.Use(cors.New(corsCfg))

	authHandler := handler.NewAuthHandler(svc.Auth)
	userHandler := handler.NewUserHandler(svc.Users)
	invHandler := handler.NewInventoryHandler(svc.Inventory)
	partnerHandler := handler.NewPartnerHandler(svc.Partners)
	orderHandler := handler.NewOrderHandler(svc.Purchases, svc.Sales)
	reportHandler := handler.NewReportHandler(svc.Reports)
	exportHandler := handler.NewExportHandler(svc.Exports)
	settingHandler := handler.NewSettingHandler(svc.Settings)

	requireAuth := middleware.RequireAuth(svc.Auth)
	can := middleware.RequirePrivilege

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ChangePassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", requireAuth, authHandler.Heartbeat)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", requireAuth)

	// Dashboard and reports
	protected.Get("/dashboard/stats", reportHandler.DashboardStats)
	protected.Get("/dashboard/stock-movement", reportHandler.StockMovement)
	protected.Get("/reports/categories", can(model.PrivReportView), reportHandler.Categories)

	// Products
	protected.Get("/products", can(model.PrivProductView), invHandler.GetProducts)
	protected.Get("/products/:id", can(model.PrivProductView), invHandler.GetProduct)
	protected.Post("/products", can(model.PrivProductCreate), invHandler.CreateProduct)
	protected.Put("/products/:id", can(model.PrivProductUpdate), invHandler.UpdateProduct)
	protected.Delete("/products/:id", can(model.PrivProductDelete), invHandler.DeleteProduct)

	// Inventory
	protected.Get("/inventory", can(model.PrivProductView), invHandler.GetInventory)
	protected.Get("/inventory/critical", can(model.PrivProductView), invHandler.GetCritical)
	protected.Get("/inventory/adjustments", can(model.PrivProductView), invHandler.GetAdjustments)
	protected.Post("/inventory/adjustments", can(model.PrivInventoryAdjust), invHandler.AdjustStock)

	// Suppliers and clients
	manage := can(model.PrivPartnerManage)
	protected.Get("/suppliers", manage, partnerHandler.GetSuppliers)
	protected.Get("/suppliers/:id", manage, partnerHandler.GetSupplier)
	protected.Post("/suppliers", manage, partnerHandler.CreateSupplier)
	protected.Put("/suppliers/:id", manage, partnerHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", manage, partnerHandler.DeleteSupplier)
	// Sellers pick clients at the till without managing them.
	protected.Get("/clients", middleware.RequireAnyPrivilege(model.PrivPartnerManage, model.PrivSaleCreate), partnerHandler.GetClients)
	protected.Get("/clients/:id", manage, partnerHandler.GetClient)
	protected.Post("/clients", manage, partnerHandler.CreateClient)
	protected.Put("/clients/:id", manage, partnerHandler.UpdateClient)
	protected.Delete("/clients/:id", manage, partnerHandler.DeleteClient)

	// Purchases and sales
	protected.Get("/purchases", can(model.PrivPurchaseView), orderHandler.GetPurchases)
	protected.Get("/purchases/:id", can(model.PrivPurchaseView), orderHandler.GetPurchase)
	protected.Post("/purchases", can(model.PrivPurchaseCreate), orderHandler.CreatePurchase)
	protected.Get("/sales", can(model.PrivSaleView), orderHandler.GetSales)
	protected.Get("/sales/:id", can(model.PrivSaleView), orderHandler.GetSale)
	protected.Post("/sales", can(model.PrivSaleCreate), orderHandler.CreateSale)

	// Exports
	exports := protected.Group("/exports", can(model.PrivReportExport))
	exports.Get("/products.xlsx", exportHandler.ProductsXLSX)
	exports.Get("/products.pdf", exportHandler.ProductsPDF)
	exports.Get("/inventory.xlsx", exportHandler.InventoryXLSX)
	exports.Get("/reports.xlsx", exportHandler.ReportXLSX)
	exports.Get("/reports.pdf", exportHandler.ReportPDF)

	// Settings
	protected.Get("/settings", settingHandler.GetSettings)
	protected.Put("/settings/:key", can(model.PrivSettingUpdate), settingHandler.UpdateSetting)

	// Users, roles and privileges
	protected.Get("/users/me", userHandler.Me)
	protected.Get("/users", can(model.PrivUserView), userHandler.GetUsers)
	protected.Get("/users/:id", can(model.PrivUserView), userHandler.GetUser)
	protected.Post("/users", can(model.PrivUserCreate), userHandler.CreateUser)
	protected.Put("/users/:id", can(model.PrivUserUpdate), userHandler.UpdateUser)
	protected.Delete("/users/:id", can(model.PrivUserDelete), userHandler.DeleteUser)
	protected.Put("/users/:id/privileges", can(model.PrivUserUpdatePrivilege), userHandler.UpdatePrivileges)
	protected.Get("/roles", userHandler.GetRoles)
	protected.Get("/privileges", userHandler.GetPrivileges)

	if opts.Hub != nil {
		mountWebsocket(app, opts.Hub)
	}

	return app
}

func mountWebsocket(app *fiber.App, hub *ws.Hub) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.Add(c)
		defer hub.Remove(c)

		for {
			// Clients only listen; reads detect disconnects.
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
