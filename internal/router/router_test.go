package router_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/portfolio-go-api/internal/config"
	"github.com/noah-isme/portfolio-go-api/internal/content"
	"github.com/noah-isme/portfolio-go-api/internal/handler"
	"github.com/noah-isme/portfolio-go-api/internal/router"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{AppName: "Portfolio API", AppEnv: "test"}
	app := fiber.New()
	router.Register(app, cfg, router.Dependencies{
		ContentHandler: handler.NewContentHandler(content.Default(), zerolog.New(io.Discard)),
	})
	return app
}

func TestHealthEndpoint(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "Portfolio API", resp.Header.Get("X-Application"))

	var payload handler.HealthResponse
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "ok", payload.Status)
	require.Equal(t, "test", payload.Environment)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMissingHandlersAreTolerated(t *testing.T) {
	app := fiber.New()
	router.Register(app, config.Config{}, router.Dependencies{})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
