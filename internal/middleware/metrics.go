package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/trentd187/soccer-data-api/internal/metrics"
)

// unmatchedRoute labels requests that hit no route, so random paths cannot blow up the
// number of metric series.
const unmatchedRoute = "unmatched"

// preflightRoute labels CORS preflights. The CORS middleware answers them before routing, so
// the matched route would be the middleware's own "/" for every path.
const preflightRoute = "preflight"

// Metrics returns a middleware that counts and times every request on rec.
// It must be registered before the routes so it wraps all of them.
func Metrics(rec *metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Run the rest of the chain (other middleware + the route handler).
		err := c.Next()

		// The error handler has not run yet, so a returned error has not been turned into a
		// status code. Work out the status the client is about to receive.
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		// c.Route() now points at the matched route, so the label is the route pattern
		// ("/api/sample/matches"), not the raw URL.
		route := c.Route().Path
		switch {
		case isPreflight(c):
			route = preflightRoute
		case status == fiber.StatusNotFound:
			route = unmatchedRoute
		}

		// Fiber reuses request buffers once the handler returns; copy before the label
		// value is stored by Prometheus.
		rec.ObserveRequest(route, utils.CopyString(c.Method()), status, time.Since(start))
		return err
	}
}

func isPreflight(c *fiber.Ctx) bool {
	return c.Method() == fiber.MethodOptions && c.Get(fiber.HeaderAccessControlRequestMethod) != ""
}
