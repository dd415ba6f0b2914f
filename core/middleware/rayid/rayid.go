// Package rayid assigns every request a RayID used to correlate logs.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the RayID on requests and responses.
const Header = "X-Ray-ID"

// LocalKey is the Fiber locals key holding the RayID.
const LocalKey = "ray_id"

// New returns a middleware that reuses an incoming RayID or generates one,
// stores it in the request locals and echoes it in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
