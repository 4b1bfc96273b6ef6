package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the request and response header carrying the Ray ID.
const HeaderName = "X-Ray-ID"

// LocalsKey is the Fiber locals key the Ray ID is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that reuses an incoming Ray ID or generates a new one.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
