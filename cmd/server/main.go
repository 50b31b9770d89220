// cmd/server/main.go
// This is the entry point for the Soccer Data API server.
// The "cmd/server" directory follows a common Go convention: the cmd/ folder holds executable
// binaries, and internal/ holds packages that are not meant to be imported by other projects.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Fiber's log package gives us leveled, structured application logs
	// (request logs come from the logger middleware registered in internal/server).
	"github.com/gofiber/fiber/v2/log"

	"github.com/trentd187/soccer-data-api/internal/config"
	"github.com/trentd187/soccer-data-api/internal/database"
	"github.com/trentd187/soccer-data-api/internal/diagnostics"
	"github.com/trentd187/soccer-data-api/internal/metrics"
	"github.com/trentd187/soccer-data-api/internal/server"
)

// shutdownTimeout bounds how long in-flight requests get to finish after SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration from defaults, an optional YAML file, and environment variables
	// (including a .env file in development).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate() already checked the level name, so the error can be ignored here.
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	log.SetLevel(level)

	// ctx is cancelled when the process receives SIGINT (Ctrl+C) or SIGTERM (docker stop).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL if DATABASE_URL is set. This never stops startup: a missing or
	// unreachable database is simply reported by GET /test.
	db := database.Open(ctx, cfg)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warnw("closing database", "error", err)
		}
	}()

	recorder := metrics.New()
	prober := diagnostics.NewProber(db,
		diagnostics.WithTimeout(cfg.ProbeTimeout),
		diagnostics.WithMetrics(recorder),
	)

	app := server.New(server.Options{
		Prober:  prober,
		Metrics: recorder,
	})

	// Start listening in a goroutine so main can wait for a shutdown signal.
	// cfg.Addr() is "0.0.0.0:<port>" — listen on all network interfaces.
	errCh := make(chan error, 1)
	go func() {
		log.Infow("starting server", "addr", cfg.Addr(), "env", cfg.Env)
		errCh <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errCh:
		// Listen only returns on failure (e.g. the port is already in use).
		log.Errorw("server stopped", "error", err)
		return
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
}
