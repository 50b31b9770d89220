// Package handlers contains the HTTP route handler functions for the Soccer Data API.
// Each handler corresponds to one API endpoint and is responsible for reading the request and
// writing a JSON response. None of the routes take parameters and none of them write anything.
package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health, the liveness check used by the container runtime.
// It answers {"status":"ok"} as long as the process can serve requests, whatever state the
// database is in, so a slow or missing database never gets the container restarted.
// GET /test is where the database shows up.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
