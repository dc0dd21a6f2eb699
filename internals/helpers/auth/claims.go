// internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys populated by the auth middleware after JWT verification.
const (
	LocUserID = "user_id"
	LocRole   = "role"
)

// GetUserID returns the authenticated user's id from Locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	switch v := c.Locals(LocUserID).(type) {
	case uuid.UUID:
		if v != uuid.Nil {
			return v, nil
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(v)); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user id missing from token")
}

// GetRole returns the authenticated user's role from Locals.
func GetRole(c *fiber.Ctx) (string, error) {
	if v, ok := c.Locals(LocRole).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "role missing from token")
}

// HasRole reports whether the request is authenticated as one of the roles.
func HasRole(c *fiber.Ctx, roles ...string) bool {
	got, err := GetRole(c)
	if err != nil {
		return false
	}
	for _, r := range roles {
		if got == r {
			return true
		}
	}
	return false
}
