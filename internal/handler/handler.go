package handler

import (
	"errors"

	"go-inventario/internal/middleware"
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// actor builds the service actor from the identity RequireAuth stored in Locals.
func actor(c *fiber.Ctx) service.Actor {
	a := service.SystemActor
	if id, ok := c.Locals(middleware.LocalUserID).(string); ok && id != "" {
		a = service.Actor{ID: id}
		a.Name, _ = c.Locals(middleware.LocalUserName).(string)
		a.Email, _ = c.Locals(middleware.LocalUserEmail).(string)
	}
	return a
}

func paramID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func invalidID(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid " + what + " ID"})
}

func invalidJSON(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
}

// respondError maps service errors to status codes. Unexpected errors are
// hidden behind a generic message.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "Internal Server Error"
	switch {
	case errors.Is(err, service.ErrValidation):
		status, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound):
		status, msg = fiber.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrConflict):
		status, msg = fiber.StatusConflict, err.Error()
	case errors.Is(err, service.ErrUnauthorized):
		status, msg = fiber.StatusUnauthorized, err.Error()
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
