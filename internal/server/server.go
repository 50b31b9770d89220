// Package server assembles the Fiber application: global middleware plus every route.
// main() builds it once; tests build their own copy and drive it with app.Test.
package server

import (
	"github.com/gofiber/fiber/v2"
	// adaptor converts a standard net/http handler (here: the Prometheus exporter) into a
	// fiber.Handler.
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	// logger prints request details (method, path, status, duration) to stdout.
	"github.com/gofiber/fiber/v2/middleware/logger"
	// recover turns a panic inside a handler into a 500 instead of crashing the process.
	"github.com/gofiber/fiber/v2/middleware/recover"
	// requestid tags every request with an X-Request-ID header.
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/trentd187/soccer-data-api/internal/diagnostics"
	"github.com/trentd187/soccer-data-api/internal/handlers"
	"github.com/trentd187/soccer-data-api/internal/metrics"
	"github.com/trentd187/soccer-data-api/internal/middleware"
)

// AppName is reported by Fiber and shown in the startup log line.
const AppName = "Soccer Data API"

// requestLogFormat adds the request ID to Fiber's usual access-log fields.
const requestLogFormat = "${time} | ${locals:requestid} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n"

// Options carries the dependencies the routes need.
type Options struct {
	// Prober backs GET /test. Nil means "no database collaborator".
	Prober *diagnostics.Prober

	// Metrics enables request metrics and the GET /metrics route when non-nil.
	Metrics *metrics.Recorder

	// DisableRequestLog turns off the access log (useful in tests).
	DisableRequestLog bool
}

// New creates the Fiber app with all middleware and routes registered.
func New(opts Options) *fiber.App {
	prober := opts.Prober
	if prober == nil {
		prober = diagnostics.NewProber(diagnostics.Unavailable, diagnostics.WithMetrics(opts.Metrics))
	}

	app := fiber.New(fiber.Config{
		AppName:               AppName,
		DisableStartupMessage: true, // main logs its own startup line
	})

	// --- Global middleware ---
	// These run on every request before any route handler, in registration order.
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if !opts.DisableRequestLog {
		app.Use(logger.New(logger.Config{Format: requestLogFormat}))
	}
	if opts.Metrics != nil {
		app.Use(middleware.Metrics(opts.Metrics))
	}
	app.Use(middleware.CORS())

	// --- Routes ---
	// All routes are read-only GETs without parameters.
	app.Get("/", handlers.Root)
	app.Get("/health", handlers.HealthCheck)
	app.Get("/test", handlers.TestDatabase(prober))

	api := app.Group("/api")
	api.Get("/hello", handlers.Hello)
	api.Get("/sample/matches", handlers.GetSampleMatches)
	api.Get("/sample/players", handlers.GetSamplePlayers)

	if opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(opts.Metrics.Handler()))
	}

	return app
}
