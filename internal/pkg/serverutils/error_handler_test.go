package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Mode  string       `validate:"required,oneof=DRAFTING ANALYSIS"`
	Items []sampleItem `validate:"dive"`
}

type sampleItem struct {
	Id string `validate:"required"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())

	app.Get("/app-error", func(ctx *fiber.Ctx) error {
		return NewAppError(fiber.StatusServiceUnavailable, "not configured", errors.New("inner"))
	})
	app.Get("/validation", func(ctx *fiber.Ctx) error {
		return ValidateRequest(sampleRequest{Mode: "OTHER", Items: []sampleItem{{}}})
	})
	app.Get("/fiber-error", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/plain", func(ctx *fiber.Ctx) error {
		return errors.New("secret detail")
	})
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("fine", map[string]int{"n": 1}))
	})
	return app
}

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		path        string
		wantStatus  int
		wantMessage string
	}{
		{"/app-error", fiber.StatusServiceUnavailable, "not configured"},
		{"/validation", fiber.StatusBadRequest, "Validation failed"},
		{"/fiber-error", fiber.StatusTeapot, "short and stout"},
		{"/plain", fiber.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := decode(t, app, tt.path)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Equal(t, false, body["success"])
			assert.NotContains(t, body["message"], "secret")
		})
	}
}

func TestValidationFieldErrors(t *testing.T) {
	_, body := decode(t, newTestApp(), "/validation")

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 2)

	fields := map[string]string{}
	for _, e := range errs {
		m := e.(map[string]any)
		fields[m["field"].(string)] = m["message"].(string)
	}
	assert.Equal(t, "must be one of [DRAFTING ANALYSIS]", fields["Mode"])
	assert.Equal(t, "is required", fields["Items[0].Id"])
}

func TestSuccessResponse(t *testing.T) {
	status, body := decode(t, newTestApp(), "/ok")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"n": float64(1)}, body["data"])
}
