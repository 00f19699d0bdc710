package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedoor/stagedoor-api/internal/auth"
	"github.com/stagedoor/stagedoor-api/internal/domain"
)

// requireApp routes requests through a seed middleware standing in for the
// gate, so the helpers can be exercised with and without a principal.
func requireApp(principal *auth.Principal, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if principal != nil {
			c.Locals("auth_principal", principal)
		}
		return c.Next()
	})
	app.Get("/probe", handler)
	return app
}

func probe(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	body := make([]byte, 64)
	n, _ := res.Body.Read(body)
	return res.StatusCode, string(body[:n])
}

func TestRequireAuthenticated(t *testing.T) {
	dancer := &auth.Principal{ID: "dancer-1", Role: domain.RoleDancer}

	app := requireApp(dancer, func(c *fiber.Ctx) error {
		principal, err := auth.RequireAuthenticated(c)
		if err != nil {
			return err
		}
		return c.SendString(principal.ID)
	})
	status, body := probe(t, app)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "dancer-1", body)
}

func TestRequireAuthenticatedWithoutSession(t *testing.T) {
	app := requireApp(nil, func(c *fiber.Ctx) error {
		_, err := auth.RequireAuthenticated(c)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
		return c.SendStatus(http.StatusUnauthorized)
	})
	status, _ := probe(t, app)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRequireRoleMismatch(t *testing.T) {
	dancer := &auth.Principal{ID: "dancer-1", Role: domain.RoleDancer}

	app := requireApp(dancer, func(c *fiber.Ctx) error {
		_, err := auth.RequireRole(c, domain.RoleAdmin)
		assert.ErrorIs(t, err, auth.ErrForbidden)
		return c.SendStatus(http.StatusForbidden)
	})
	status, _ := probe(t, app)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRequireRoleMatch(t *testing.T) {
	admin := &auth.Principal{ID: "admin-1", Role: domain.RoleAdmin}

	app := requireApp(admin, func(c *fiber.Ctx) error {
		principal, err := auth.RequireRole(c, domain.RoleAdmin)
		if err != nil {
			return err
		}
		return c.SendString(principal.ID)
	})
	status, body := probe(t, app)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "admin-1", body)
}

func TestRequireRoleHandlerNoSession(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: sentinelErrorHandler})
	app.Get("/probe", auth.RequireRoleHandler(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("reached")
	})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRequireRoleHandlerWrongRole(t *testing.T) {
	dancer := &auth.Principal{ID: "dancer-1", Role: domain.RoleDancer}

	app := fiber.New(fiber.Config{ErrorHandler: sentinelErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("auth_principal", dancer)
		return c.Next()
	})
	app.Get("/probe", auth.RequireRoleHandler(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("reached")
	})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
