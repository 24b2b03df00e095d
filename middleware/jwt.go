package middleware

import (
	"strings"

	"github.com/aswin-roy/jjjj/utils"

	"github.com/gofiber/fiber/v2"
)

// JWTMiddleware reads a Bearer token from the Authorization header and puts
// the session identity into Locals.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "missing or malformed authorization header",
		})
	}

	claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "invalid or expired token",
		})
	}

	c.Locals("userID", claims.ID)
	c.Locals("userEmail", claims.Email)
	return c.Next()
}

// JWTMiddlewareForExport also accepts the token from the query string.
// Download endpoints are opened via window.open, which cannot set headers.
func JWTMiddlewareForExport(c *fiber.Ctx) error {
	tokenStr := ""

	authHeader := c.Get("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
	}
	if tokenStr == "" {
		tokenStr = c.Query("token", "")
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "missing or malformed authorization header",
		})
	}

	claims, err := utils.ParseToken(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "invalid or expired token",
		})
	}

	c.Locals("userID", claims.ID)
	c.Locals("userEmail", claims.Email)
	return c.Next()
}
