package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(seen *string) *fiber.App {
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		*seen, _ = c.Locals(LocalKey).(string)
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestNew_Generates(t *testing.T) {
	var seen string
	resp, err := newApp(&seen).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	id := resp.Header.Get(Header)
	assert.Equal(t, seen, id)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestNew_ReusesIncoming(t *testing.T) {
	var seen string
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(Header, "upstream-id")

	resp, err := newApp(&seen).Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-id", seen)
	assert.Equal(t, "upstream-id", resp.Header.Get(Header))
}
