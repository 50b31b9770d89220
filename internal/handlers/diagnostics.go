package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/soccer-data-api/internal/diagnostics"
)

// TestDatabase returns a handler for GET /test.
//
// It follows the "handler factory" pattern: the prober is injected once when routes are
// registered, and the returned fiber.Handler is called for every request. That keeps the
// database collaborator out of global variables.
//
// The response is always 200 OK. Whatever goes wrong while probing (no database configured,
// connection lost, query timed out) is described inside the report instead.
func TestDatabase(prober *diagnostics.Prober) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Fiber leaves UserContext as context.Background() unless a middleware sets one, so the
		// prober's own timeout is what bounds this call.
		report := prober.Probe(c.UserContext())
		return c.Status(fiber.StatusOK).JSON(report)
	}
}
