package handler

import (
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserHandler serves users together with the roles and privileges they can
// be given.
type UserHandler struct {
	users service.UserService
}

func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GET /api/v1/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.users.GetAllUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "user")
	}
	return h.sendUser(c, id)
}

// Me returns the caller's own profile; no privilege is needed.
// GET /api/v1/users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	id, err := uuid.Parse(actor(c).ID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	return h.sendUser(c, id)
}

func (h *UserHandler) sendUser(c *fiber.Ctx, id uuid.UUID) error {
	user, err := h.users.GetUserByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// POST /api/v1/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	user, err := h.users.CreateUser(&req, actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"data":    user.ToResponse(),
	})
}

// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "user")
	}
	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	user, err := h.users.UpdateUser(id, &req, actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"data":    user.ToResponse(),
	})
}

// Privileges are replaced wholesale, not merged.
// PUT /api/v1/users/:id/privileges
func (h *UserHandler) UpdatePrivileges(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "user")
	}
	var in struct {
		Privileges []string `json:"privileges"`
	}
	if err := c.BodyParser(&in); err != nil {
		return invalidJSON(c)
	}

	user, err := h.users.UpdateUserPrivileges(id, in.Privileges, actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Privileges updated successfully",
		"data":    user.ToResponse(),
	})
}

// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return invalidID(c, "user")
	}
	if err := h.users.DeleteUser(id, actor(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// GET /api/v1/roles
func (h *UserHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.users.GetAllRoles()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(roles)
}

// GET /api/v1/privileges
func (h *UserHandler) GetPrivileges(c *fiber.Ctx) error {
	privs, err := h.users.GetAllPrivileges()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(privs)
}
