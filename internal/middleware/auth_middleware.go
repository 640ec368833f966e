// Package middleware holds the Fiber handlers that authenticate requests and
// enforce privileges.
package middleware

import (
	"errors"
	"strings"

	"go-inventario/internal/model"
	"go-inventario/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth.
const (
	LocalUserID     = "user_id"
	LocalUserEmail  = "user_email"
	LocalUserName   = "user_name"
	LocalPrivileges = "user_privileges"
)

// Authenticator resolves a bearer token to its user. service.AuthService implements it.
type Authenticator interface {
	Authenticate(token string) (*model.User, error)
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}

func bearer(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", false
	}
	return token, true
}

// RequireAuth rejects requests without a valid bearer token. Privileges are
// read from the database, so a revocation applies on the next request.
func RequireAuth(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "Missing authorization token")
		}
		token, ok := bearer(header)
		if !ok {
			return unauthorized(c, "Invalid authorization format. Use: Bearer <token>")
		}

		user, err := auth.Authenticate(token)
		if err != nil {
			if errors.Is(err, service.ErrSessionReplaced) || errors.Is(err, service.ErrUserInactive) {
				return unauthorized(c, err.Error())
			}
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals(LocalUserID, user.ID.String())
		c.Locals(LocalUserEmail, user.Email)
		c.Locals(LocalUserName, user.FullName)
		c.Locals(LocalPrivileges, user.GetPrivilegeCodes())
		return c.Next()
	}
}

// RequirePrivilege lets the request through only if the user holds code.
func RequirePrivilege(code string) fiber.Handler {
	return requireAny([]string{code}, "Forbidden: requires '"+code+"' privilege")
}

// RequireAnyPrivilege lets the request through if the user holds any of codes.
func RequireAnyPrivilege(codes ...string) fiber.Handler {
	return requireAny(codes, "Forbidden: requires one of "+strings.Join(codes, ", ")+" privileges")
}

func requireAny(codes []string, denied string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		held, ok := c.Locals(LocalPrivileges).([]string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No privileges found"})
		}
		for _, h := range held {
			for _, want := range codes {
				if h == want {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": denied})
	}
}
