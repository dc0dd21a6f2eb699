package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	helperAuth "stepwise_backend/internals/helpers/auth"
)

// OnlyRoles rejects requests whose role claim is not in the allow set.
// Mount after AuthMiddleware.
func OnlyRoles(action string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.HasRole(c, roles...) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden,
			fmt.Sprintf("Insufficient role for %s", action))
	}
}

// OnlyRolesSlice is OnlyRoles with a prebuilt role set, handy with the
// constants package guard sets.
func OnlyRolesSlice(action string, roles []string) fiber.Handler {
	return OnlyRoles(action, roles...)
}
