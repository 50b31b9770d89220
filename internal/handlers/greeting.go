package handlers

import "github.com/gofiber/fiber/v2"

// Greeting messages. Clients (and tests) match on these exact strings.
const (
	RootMessage  = "Hello from FastAPI Backend!"
	HelloMessage = "Hello from the backend API!"
)

// MessageResponse is the body of the greeting routes.
type MessageResponse struct {
	Message string `json:"message"`
}

// Root handles GET /.
func Root(c *fiber.Ctx) error {
	return c.JSON(MessageResponse{Message: RootMessage})
}

// Hello handles GET /api/hello.
func Hello(c *fiber.Ctx) error {
	return c.JSON(MessageResponse{Message: HelloMessage})
}
