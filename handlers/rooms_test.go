package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterInterestRequiresAuthentication(t *testing.T) {
	// Anonymous taps must not reach the interest feed even on a route wired
	// without the auth middleware.
	app := fiber.New()
	app.Post("/api/rooms/:key/interest", RegisterInterest)

	req := httptest.NewRequest("POST", "/api/rooms/main-stage/interest", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
