package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishlist-backend/internal/middleware"
)

func newTestApp() (*fiber.App, *test.Hook) {
	logger, hook := test.NewNullLogger()
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(logger),
	})
	return app, hook
}

func TestErrorHandler_UnmappedError(t *testing.T) {
	app, hook := newTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("connection refused")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotEmpty(t, body.TraceID)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "request failed", hook.LastEntry().Message)
	assert.Equal(t, body.TraceID, hook.LastEntry().Data["trace_id"])
	assert.Equal(t, "/boom", hook.LastEntry().Data["path"])
	assert.EqualError(t, hook.LastEntry().Data["error"].(error), "connection refused")
}

func TestErrorHandler_MappedErrorsNotLogged(t *testing.T) {
	app, hook := newTestApp()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return middleware.NotFound("Wish not found")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, "Wish not found", body.Message)

	assert.Nil(t, hook.LastEntry())
}

func TestErrorHandler_UpstreamFailureLogged(t *testing.T) {
	app, hook := newTestApp()
	app.Post("/relay", func(c *fiber.Ctx) error {
		return middleware.BadGateway("Failed to deliver message")
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/relay", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UPSTREAM_FAILURE", body.Code)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, 502, hook.LastEntry().Data["status"])
}
