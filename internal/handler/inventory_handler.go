package handler

import (
	"go-inventario/internal/model"
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetProducts lists the catalog.
// GET /api/v1/products?category=&search=
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(model.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "product")
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return invalidJSON(c)
	}

	if err := h.service.CreateProduct(&product, actor(c)); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "product")
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return invalidJSON(c)
	}

	updated, err := h.service.UpdateProduct(id, &product, actor(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "product")
	}
	if err := h.service.DeleteProduct(id, actor(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// AdjustStock applies a manual add/remove.
// POST /api/v1/inventory/adjustments
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var req model.AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	adj, err := h.service.AdjustStock(&req, actor(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Stock adjusted", "data": adj})
}

// GetAdjustments returns the most recent adjustments, newest first.
// GET /api/v1/inventory/adjustments?limit=
func (h *InventoryHandler) GetAdjustments(c *fiber.Ctx) error {
	return c.JSON(h.service.RecentAdjustments(c.QueryInt("limit", 20)))
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	rows, err := h.service.GetInventory()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (h *InventoryHandler) GetCritical(c *fiber.Ctx) error {
	products, err := h.service.GetCriticalProducts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}
