// Package middleware contains HTTP middleware functions for the Soccer Data API.
// Middleware sits between the HTTP server and route handlers — it runs on every request that
// passes through it, making it the right place for cross-cutting concerns like CORS, request
// IDs and metrics.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	// cors handles Cross-Origin Resource Sharing — it lets a browser frontend served from a
	// different host/port call this API.
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS returns the permissive cross-origin policy used by this demo API:
// any origin, any method, any request header, with credentials allowed.
//
// Browsers refuse "Access-Control-Allow-Origin: *" on credentialed requests, and fiber refuses
// to be configured that way. Instead AllowOriginsFunc accepts every origin, which makes the
// middleware echo the caller's Origin back. Leaving AllowHeaders empty makes it echo the
// requested headers on preflight.
//
// This is not a security boundary; lock it down before exposing real data.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodHead,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodPatch,
			fiber.MethodOptions,
		}, ","),
		AllowCredentials: true,
	})
}
