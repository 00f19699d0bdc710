package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "stagedoor_session"

const principalKey = "auth_principal"

// Middleware runs the authorization gate before dispatch and, for gated
// paths, loads the caller's principal into the request context.
type Middleware struct {
	gate    *Gate
	codec   *TokenCodec
	users   UserStore
	revoked *RevocationList
}

// NewMiddleware constructs the gate middleware.
func NewMiddleware(codec *TokenCodec, users UserStore, revoked *RevocationList) *Middleware {
	return &Middleware{
		gate:    NewGate(codec),
		codec:   codec,
		users:   users,
		revoked: revoked,
	}
}

// TokenFromRequest extracts the session token from the cookie or from an
// Authorization bearer header. Empty string when neither is present.
func TokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookieName); cookie != "" {
		return cookie
	}
	parts := strings.SplitN(c.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// Handle gates the request. Public paths pass through without touching the
// token. For everything else the gate decides allow-or-redirect; allowed
// requests then get their principal resolved and stored, with revoked
// tokens treated exactly like absent sessions.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	path := c.Path()
	if Classify(path).Public {
		return c.Next()
	}

	token := TokenFromRequest(c)
	decision := m.gate.Decide(path, token)
	if !decision.Allow {
		return c.Redirect(decision.RedirectTo, fiber.StatusFound)
	}

	claims, err := m.codec.Decode(token)
	if err != nil {
		return c.Redirect(LoginPath, fiber.StatusFound)
	}
	revoked, rerr := m.revoked.IsRevoked(c.Context(), claims.ID)
	if rerr != nil {
		// Fail closed: with the revocation list unreachable a logout
		// cannot be honored, so no gated request may proceed.
		return ErrStoreUnavailable
	}
	if revoked {
		clearSessionCookie(c)
		return c.Redirect(LoginPath, fiber.StatusFound)
	}

	user, err := m.users.GetByID(c.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			clearSessionCookie(c)
			return c.Redirect(LoginPath, fiber.StatusFound)
		}
		return ErrStoreUnavailable
	}

	c.Locals(principalKey, PrincipalForClaims(user, claims.Role))

	if m.codec.Sliding() {
		if refreshed, expiresAt, err := m.codec.Refresh(claims); err == nil {
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookieName,
				Value:    refreshed,
				Expires:  expiresAt,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
	}

	return c.Next()
}

func clearSessionCookie(c *fiber.Ctx) {
	c.ClearCookie(SessionCookieName)
}
