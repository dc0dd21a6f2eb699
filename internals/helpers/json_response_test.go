// file: internals/helpers/json_response_test.go
package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusToErrorCode(t *testing.T) {
	cases := map[int]string{
		fiber.StatusBadRequest:            "BAD_REQUEST",
		fiber.StatusUnauthorized:          "UNAUTHORIZED",
		fiber.StatusForbidden:             "FORBIDDEN",
		fiber.StatusNotFound:              "NOT_FOUND",
		fiber.StatusConflict:              "CONFLICT",
		fiber.StatusUnprocessableEntity:   "VALIDATION_ERROR",
		fiber.StatusTooManyRequests:       "RATE_LIMITED",
		fiber.StatusInternalServerError:   "INTERNAL_ERROR",
		fiber.StatusBadGateway:            "INTERNAL_ERROR",
		fiber.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
		fiber.StatusTeapot:                "ERROR",
	}
	for status, code := range cases {
		assert.Equal(t, code, statusToErrorCode(status), "status %d", status)
	}
}

func doRequest(t *testing.T, h fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", h)

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJsonError(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusConflict, "already exists")
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "already exists", body["message"])
	assert.Equal(t, "CONFLICT", body["error_code"])
}

func TestFromFiberError(t *testing.T) {
	t.Run("fiber error keeps its status", func(t *testing.T) {
		status, body := doRequest(t, func(c *fiber.Ctx) error {
			return FromFiberError(c, fiber.NewError(fiber.StatusForbidden, "no access"))
		})
		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, "FORBIDDEN", body["error_code"])
		assert.Equal(t, "no access", body["message"])
	})

	t.Run("plain error becomes 500", func(t *testing.T) {
		status, body := doRequest(t, func(c *fiber.Ctx) error {
			return FromFiberError(c, assert.AnError)
		})
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "INTERNAL_ERROR", body["error_code"])
	})
}

func TestJsonListShape(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonList(c, "OK", []string{"a", "b"}, BuildPaginationFromPage(2, 1, 20))
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "OK", body["message"])
	require.NotNil(t, body["data"])
	require.NotNil(t, body["pagination"])

	paging, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), paging["total"])
}

func TestJsonOKShape(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "OK", fiber.Map{"x": 1})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "OK", body["message"])
	require.NotNil(t, body["data"])
}
