package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"liverooms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type probeResult struct {
	Anonymous bool `json:"anonymous"`
	UserID    uint `json:"user_id"`
	IsAdmin   bool `json:"is_admin"`
}

// probeApp exposes the locals a middleware sets, so tests can observe what a
// handler would see.
func probeApp(mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/probe", mw, func(c *fiber.Ctx) error {
		userID, err := GetUserID(c)
		if err != nil {
			return c.JSON(probeResult{Anonymous: true, IsAdmin: IsAdmin(c)})
		}
		return c.JSON(probeResult{UserID: userID, IsAdmin: IsAdmin(c)})
	})
	return app
}

func probe(t *testing.T, app *fiber.App, token string) (int, probeResult) {
	t.Helper()
	req := httptest.NewRequest("GET", "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result probeResult
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.Unmarshal(body, &result))
	}
	return resp.StatusCode, result
}

func issueTestToken(t *testing.T, user models.User) string {
	t.Helper()
	token, _, err := IssueToken(&user, time.Hour)
	require.NoError(t, err)
	return token
}

func TestIssueTokenCarriesUserRecordClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := issueTestToken(t, models.User{ID: 7, Username: "casey", IsAdmin: true})
	claims, err := parseToken(token)
	require.NoError(t, err)

	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "casey", claims["username"])
	assert.Equal(t, true, claims["is_admin"])
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := probeApp(AuthMiddleware)

	status, _ := probe(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthMiddlewarePopulatesLocals(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := probeApp(AuthMiddleware)

	token := issueTestToken(t, models.User{ID: 12, Username: "sam"})
	status, result := probe(t, app, token)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, uint(12), result.UserID)
	assert.False(t, result.IsAdmin)
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := probeApp(OptionalAuthMiddleware)

	status, result := probe(t, app, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, result.Anonymous)
	assert.False(t, result.IsAdmin)
}

func TestOptionalAuthPopulatesLocalsFromToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := probeApp(OptionalAuthMiddleware)

	token := issueTestToken(t, models.User{ID: 3, Username: "riley", IsAdmin: true})
	status, result := probe(t, app, token)

	assert.Equal(t, fiber.StatusOK, status)
	assert.False(t, result.Anonymous)
	assert.Equal(t, uint(3), result.UserID)
	assert.True(t, result.IsAdmin)
}

func TestOptionalAuthDegradesBadTokenToAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := probeApp(OptionalAuthMiddleware)

	status, result := probe(t, app, "not-a-token")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, result.Anonymous)
}

func TestAdminAuthMiddlewareRequiresAdminClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	app := probeApp(AdminAuthMiddleware)

	memberToken := issueTestToken(t, models.User{ID: 4, Username: "kit"})
	status, _ := probe(t, app, memberToken)
	assert.Equal(t, fiber.StatusForbidden, status)

	adminToken := issueTestToken(t, models.User{ID: 5, Username: "ops", IsAdmin: true})
	status, result := probe(t, app, adminToken)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, result.IsAdmin)
}
