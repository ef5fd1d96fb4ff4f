package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireToken gates mutating admin routes behind a static bearer token.
// An empty token disables the gate, which keeps local development frictionless.
//
// Expected header: Authorization: Bearer <token>
func RequireToken(token string) fiber.Handler {
	if token == "" {
		return Noop()
	}

	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		candidate, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(candidate), []byte(token)) != 1 {
			rid, _ := c.Locals(RequestIDLocalKey).(string)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"request_id": rid,
				"error": fiber.Map{
					"code":    "UNAUTHORIZED",
					"message": "missing or invalid credentials",
				},
			})
		}
		return c.Next()
	}
}
