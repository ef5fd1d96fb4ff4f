package middleware

import "github.com/gofiber/fiber/v2"

// Noop is a minimal middleware that simply calls the next handler. It stands
// in for the admin gate when no API token is configured.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
