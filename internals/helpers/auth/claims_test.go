// file: internals/helpers/auth/claims_test.go
package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLocals(t *testing.T, userID any, role any, h fiber.Handler) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		if userID != nil {
			c.Locals(LocUserID, userID)
		}
		if role != nil {
			c.Locals(LocRole, role)
		}
		return h(c)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	require.NoError(t, err)
	resp.Body.Close()
}

func TestGetUserID(t *testing.T) {
	id := uuid.New()

	t.Run("uuid local", func(t *testing.T) {
		withLocals(t, id, nil, func(c *fiber.Ctx) error {
			got, err := GetUserID(c)
			assert.NoError(t, err)
			assert.Equal(t, id, got)
			return nil
		})
	})

	t.Run("string local", func(t *testing.T) {
		withLocals(t, id.String(), nil, func(c *fiber.Ctx) error {
			got, err := GetUserID(c)
			assert.NoError(t, err)
			assert.Equal(t, id, got)
			return nil
		})
	})

	t.Run("missing", func(t *testing.T) {
		withLocals(t, nil, nil, func(c *fiber.Ctx) error {
			_, err := GetUserID(c)
			assert.Error(t, err)
			return nil
		})
	})
}

func TestGetRoleAndHasRole(t *testing.T) {
	withLocals(t, nil, "teacher", func(c *fiber.Ctx) error {
		role, err := GetRole(c)
		assert.NoError(t, err)
		assert.Equal(t, "teacher", role)
		assert.True(t, HasRole(c, "admin", "teacher"))
		assert.False(t, HasRole(c, "student"))
		return nil
	})

	withLocals(t, nil, nil, func(c *fiber.Ctx) error {
		_, err := GetRole(c)
		assert.Error(t, err)
		assert.False(t, HasRole(c, "admin"))
		return nil
	})
}
