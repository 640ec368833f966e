package handler

import (
	"strings"

	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login opens a session and revokes any other one the user holds.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in credentials
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}

	session, err := h.auth.Login(in.Email, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// ChangePassword requires the current password and revokes open sessions.
// POST /api/v1/auth/reset-password
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req service.PasswordChange
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	if err := h.auth.ChangePassword(&req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}

// ValidateToken lets the frontend check a stored token on startup.
// POST /api/v1/auth/validate-token
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var in struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}
	if in.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token is required"})
	}

	session, err := h.auth.ValidateToken(in.Token)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// POST /api/v1/auth/heartbeat
func (h *AuthHandler) Heartbeat(c *fiber.Ctx) error {
	id, err := uuid.Parse(actor(c).ID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	if err := h.auth.Heartbeat(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "online"})
}
