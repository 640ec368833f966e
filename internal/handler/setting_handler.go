package handler

import (
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SettingHandler struct {
	service service.SettingService
}

func NewSettingHandler(s service.SettingService) *SettingHandler {
	return &SettingHandler{service: s}
}

// GET /api/v1/settings
func (h *SettingHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

// PUT /api/v1/settings/:key
func (h *SettingHandler) UpdateSetting(c *fiber.Ctx) error {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	setting, err := h.service.Set(c.Params("key"), req.Value, actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Setting updated", "data": setting})
}
