package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedoor/stagedoor-api/internal/auth"
	"github.com/stagedoor/stagedoor-api/internal/domain"
	apperrors "github.com/stagedoor/stagedoor-api/pkg/util"
)

type gateFixture struct {
	app     *fiber.App
	codec   *auth.TokenCodec
	store   *stubUserStore
	revoked *auth.RevocationList
	redis   *miniredis.Miniredis
}

func newGateFixture(t *testing.T) *gateFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	revoked := auth.NewRevocationList(client, time.Now)

	hasher := auth.NewHasher(4)
	hash, err := hasher.Hash("opensesame")
	require.NoError(t, err)
	store := &stubUserStore{users: map[string]*domain.User{
		"admin@example.com": {ID: "admin-1", Email: "admin@example.com", PasswordHash: &hash, Role: domain.RoleAdmin},
		"dana@example.com":  {ID: "dancer-1", Email: "dana@example.com", PasswordHash: &hash, Role: domain.RoleDancer},
	}}

	codec := auth.NewTokenCodec("secret")
	middleware := auth.NewMiddleware(codec, store, revoked)

	app := fiber.New(fiber.Config{ErrorHandler: sentinelErrorHandler})
	app.Use(middleware.Handle)
	echo := func(c *fiber.Ctx) error {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(principal.ID)
	}
	app.Get("/", echo)
	app.Get("/events", echo)
	app.Get("/admin/users", echo)
	app.Get("/booking", echo)
	app.Get("/settings", echo)

	return &gateFixture{app: app, codec: codec, store: store, revoked: revoked, redis: mr}
}

// sentinelErrorHandler stands in for the production error middleware,
// mapping auth sentinels to their HTTP statuses.
func sentinelErrorHandler(c *fiber.Ctx, err error) error {
	domainErr := apperrors.ToDomainError(err)
	return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
}

func (f *gateFixture) request(t *testing.T, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}
	res, err := f.app.Test(req)
	require.NoError(t, err)
	return res
}

func (f *gateFixture) tokenFor(t *testing.T, id string, role domain.Role) string {
	t.Helper()
	token, _, err := f.codec.Issue(&auth.Principal{ID: id, Role: role})
	require.NoError(t, err)
	return token
}

func TestMiddlewarePublicPathBypassesSession(t *testing.T) {
	f := newGateFixture(t)

	res := f.request(t, "/", "")
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res = f.request(t, "/events", "garbage-token")
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestMiddlewareRedirectsAnonymousToLogin(t *testing.T) {
	f := newGateFixture(t)

	res := f.request(t, "/admin/users", "")
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, auth.LoginPath, res.Header.Get("Location"))
}

func TestMiddlewareRedirectsWrongRoleHome(t *testing.T) {
	f := newGateFixture(t)
	token := f.tokenFor(t, "dancer-1", domain.RoleDancer)

	res := f.request(t, "/admin/users", token)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, auth.HomePath, res.Header.Get("Location"))
}

func TestMiddlewareLoadsPrincipalForAllowedRequest(t *testing.T) {
	f := newGateFixture(t)
	token := f.tokenFor(t, "admin-1", domain.RoleAdmin)

	res := f.request(t, "/admin/users", token)
	require.Equal(t, http.StatusOK, res.StatusCode)
	body := make([]byte, 16)
	n, _ := res.Body.Read(body)
	assert.Equal(t, "admin-1", string(body[:n]))
}

func TestMiddlewareBearerHeaderFallback(t *testing.T) {
	f := newGateFixture(t)
	token := f.tokenFor(t, "dancer-1", domain.RoleDancer)

	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestMiddlewareTreatsRevokedTokenAsNoSession(t *testing.T) {
	f := newGateFixture(t)
	token := f.tokenFor(t, "admin-1", domain.RoleAdmin)

	claims, err := f.codec.Decode(token)
	require.NoError(t, err)
	require.NoError(t, f.revoked.Revoke(context.Background(), claims.ID, claims.ExpiresAt.Time))

	res := f.request(t, "/admin/users", token)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, auth.LoginPath, res.Header.Get("Location"))
}

func TestMiddlewareFailsClosedWhenRevocationStoreDown(t *testing.T) {
	f := newGateFixture(t)
	token := f.tokenFor(t, "admin-1", domain.RoleAdmin)

	// With the revocation list unreachable a logout cannot be checked, so
	// the session must not be honored.
	f.redis.Close()

	res := f.request(t, "/admin/users", token)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestMiddlewareRedirectsDeletedUser(t *testing.T) {
	f := newGateFixture(t)
	token := f.tokenFor(t, "ghost-1", domain.RoleDancer)

	res := f.request(t, "/settings", token)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, auth.LoginPath, res.Header.Get("Location"))
}
