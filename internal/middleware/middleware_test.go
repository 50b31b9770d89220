package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/soccer-data-api/internal/metrics"
)

func scrape(t *testing.T, rec *metrics.Recorder) string {
	t.Helper()
	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	return string(body)
}

func TestCORS_Preflight(t *testing.T) {
	app := fiber.New()
	app.Use(CORS())
	app.Get("/api/hello", func(c *fiber.Ctx) error { return c.SendString("hi") })

	req := httptest.NewRequest(http.MethodOptions, "/api/hello", nil)
	req.Header.Set("Origin", "https://frontend.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "https://frontend.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodGet)
	assert.Equal(t, "X-Custom-Header", resp.Header.Get("Access-Control-Allow-Headers"))
}

func TestCORS_SimpleRequest(t *testing.T) {
	app := fiber.New()
	app.Use(CORS())
	app.Get("/api/hello", func(c *fiber.Ctx) error { return c.SendString("hi") })

	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	rec := metrics.New()
	app := fiber.New()
	app.Use(Metrics(rec))
	app.Get("/api/sample/matches", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"items": []string{}}) })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/sample/matches", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	assert.Contains(t, scrape(t, rec), `soccer_api_http_requests_total{method="GET",route="/api/sample/matches",status="200"} 2`)
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	rec := metrics.New()
	app := fiber.New()
	app.Use(Metrics(rec))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/no/such/path", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := scrape(t, rec)
	assert.Contains(t, body, `route="unmatched",status="404"`)
	assert.NotContains(t, body, "/no/such/path")
}

func TestMetrics_HandlerError(t *testing.T) {
	rec := metrics.New()
	app := fiber.New()
	app.Use(Metrics(rec))
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	assert.Contains(t, scrape(t, rec), `route="/teapot",status="418"`)
}

func TestMetrics_PreflightLabel(t *testing.T) {
	rec := metrics.New()
	app := fiber.New()
	app.Use(Metrics(rec))
	app.Use(CORS())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("root") })
	app.Get("/api/hello", func(c *fiber.Ctx) error { return c.SendString("hi") })

	for _, path := range []string{"/api/hello", "/api/sample/players"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://frontend.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	}

	body := scrape(t, rec)
	assert.Contains(t, body, `soccer_api_http_requests_total{method="OPTIONS",route="preflight",status="204"} 2`)
	assert.NotContains(t, body, `route="/"`)
}
