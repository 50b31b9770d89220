package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/trentd187/soccer-data-api/internal/diagnostics"
)

// stalledHandle never finishes listing collections unless ctx is cancelled.
type stalledHandle struct {
	release chan struct{}
}

func (s stalledHandle) Name() (string, bool) { return "soccer", true }

func (s stalledHandle) ListCollections(ctx context.Context, _ int) ([]string, error) {
	select {
	case <-s.release:
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func stalledResolver(t *testing.T) diagnostics.Resolver {
	t.Helper()
	h := stalledHandle{release: make(chan struct{})}
	t.Cleanup(func() { close(h.release) })
	return diagnostics.ResolverFunc(func() (diagnostics.Collaborator, error) { return h, nil })
}

func noEnv(string) (string, bool) { return "", false }

func TestTestDatabase_BoundedByProberTimeout(t *testing.T) {
	prober := diagnostics.NewProber(stalledResolver(t),
		diagnostics.WithTimeout(50*time.Millisecond),
		diagnostics.WithLookupEnv(noEnv),
	)
	app := fiber.New()
	app.Get("/test", TestDatabase(prober))

	start := time.Now()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil), 2000)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, gjson.GetBytes(body, "database").String(), "deadline exceeded")
	assert.Equal(t, "[]", gjson.GetBytes(body, "collections").Raw)
}

func TestHealthCheck(t *testing.T) {
	app := fiber.New()
	app.Get("/health", HealthCheck)
	// A database that never answers must not affect liveness.
	app.Get("/test", TestDatabase(diagnostics.NewProber(stalledResolver(t), diagnostics.WithLookupEnv(noEnv))))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}
