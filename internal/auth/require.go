package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stagedoor/stagedoor-api/internal/domain"
)

// PrincipalFromContext retrieves the principal stored by the middleware.
// The second return is false on optional-auth paths with no session.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// RequireAuthenticated asserts a valid session is present.
func RequireAuthenticated(c *fiber.Ctx) (*Principal, error) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return principal, nil
}

// RequireRole asserts the caller holds the given role. Handlers call this
// even on gate-filtered routes; the gate is not the last line of defense.
func RequireRole(c *fiber.Ctx, role domain.Role) (*Principal, error) {
	principal, err := RequireAuthenticated(c)
	if err != nil {
		return nil, err
	}
	if principal.Role != role {
		return nil, ErrForbidden
	}
	return principal, nil
}

// RequireRoleHandler is the route-level form of RequireRole.
func RequireRoleHandler(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := RequireRole(c, role); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequireAuthenticatedHandler is the route-level form of RequireAuthenticated.
func RequireAuthenticatedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := RequireAuthenticated(c); err != nil {
			return err
		}
		return c.Next()
	}
}
