package handler

import (
	"go-inventario/internal/model"
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler serves purchases (stock in) and sales (stock out).
type OrderHandler struct {
	purchases service.PurchaseService
	sales     service.SaleService
}

func NewOrderHandler(purchases service.PurchaseService, sales service.SaleService) *OrderHandler {
	return &OrderHandler{purchases: purchases, sales: sales}
}

func (h *OrderHandler) CreatePurchase(c *fiber.Ctx) error {
	var req model.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	purchase, err := h.purchases.RecordPurchase(&req, actor(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Purchase recorded", "data": purchase})
}

func (h *OrderHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.purchases.GetAllPurchases()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchases)
}

func (h *OrderHandler) GetPurchase(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "purchase")
	}
	purchase, err := h.purchases.GetPurchaseByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchase)
}

func (h *OrderHandler) CreateSale(c *fiber.Ctx) error {
	var req model.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	sale, err := h.sales.RecordSale(&req, actor(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Sale recorded", "data": sale})
}

func (h *OrderHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.sales.GetAllSales()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sales)
}

func (h *OrderHandler) GetSale(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "sale")
	}
	sale, err := h.sales.GetSaleByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}
