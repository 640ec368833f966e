package handler

import (
	"go-inventario/internal/model"
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PartnerHandler struct {
	service service.PartnerService
}

func NewPartnerHandler(s service.PartnerService) *PartnerHandler {
	return &PartnerHandler{service: s}
}

func (h *PartnerHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAllSuppliers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(suppliers)
}

func (h *PartnerHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "supplier")
	}
	supplier, err := h.service.GetSupplierByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplier)
}

func (h *PartnerHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return invalidJSON(c)
	}
	if err := h.service.CreateSupplier(&supplier, actor(c)); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Supplier created", "data": supplier})
}

func (h *PartnerHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "supplier")
	}
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return invalidJSON(c)
	}
	updated, err := h.service.UpdateSupplier(id, &supplier, actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplier updated", "data": updated})
}

func (h *PartnerHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "supplier")
	}
	if err := h.service.DeleteSupplier(id, actor(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplier deleted"})
}

func (h *PartnerHandler) GetClients(c *fiber.Ctx) error {
	clients, err := h.service.GetAllClients()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(clients)
}

func (h *PartnerHandler) GetClient(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "client")
	}
	client, err := h.service.GetClientByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client)
}

func (h *PartnerHandler) CreateClient(c *fiber.Ctx) error {
	var client model.Client
	if err := c.BodyParser(&client); err != nil {
		return invalidJSON(c)
	}
	if err := h.service.CreateClient(&client, actor(c)); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Client created", "data": client})
}

func (h *PartnerHandler) UpdateClient(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "client")
	}
	var client model.Client
	if err := c.BodyParser(&client); err != nil {
		return invalidJSON(c)
	}
	updated, err := h.service.UpdateClient(id, &client, actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Client updated", "data": updated})
}

func (h *PartnerHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "client")
	}
	if err := h.service.DeleteClient(id, actor(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Client deleted"})
}
