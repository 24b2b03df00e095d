package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NormalizeURL strips stray encoded newlines that some clients append to the
// request path, which would otherwise 404 on an exact route match.
func NormalizeURL(c *fiber.Ctx) error {
	path := c.Path()
	cleaned := strings.NewReplacer("%0A", "", "%0a", "", "%0D", "", "%0d", "", "\n", "", "\r", "").Replace(path)
	if cleaned != path {
		c.Path(cleaned)
	}
	return c.Next()
}
