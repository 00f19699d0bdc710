package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedoor/stagedoor-api/internal/auth"
	"github.com/stagedoor/stagedoor-api/internal/domain"
)

func fixedClock(t time.Time) auth.Clock {
	return func() time.Time { return t }
}

func testPrincipal() *auth.Principal {
	return &auth.Principal{
		ID:          "user-1",
		Email:       "dancer@example.com",
		Role:        domain.RoleDancer,
		DisplayName: "Dana",
	}
}

func TestIssueEmbedsIDAndRoleOnly(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	codec := auth.NewTokenCodec("secret", auth.WithClock(fixedClock(issuedAt)))

	token, expiresAt, err := codec.Issue(testPrincipal())
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(auth.DefaultSessionTTL), expiresAt)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, domain.RoleDancer, claims.Role)
	assert.NotEmpty(t, claims.ID)
	// The payload must never carry the email address.
	assert.NotContains(t, token, "example.com")
}

func TestDecodeExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt

	codec := auth.NewTokenCodec("secret", auth.WithClock(func() time.Time { return now }))
	token, _, err := codec.Issue(testPrincipal())
	require.NoError(t, err)

	now = issuedAt.Add(auth.DefaultSessionTTL - time.Second)
	_, err = codec.Decode(token)
	require.NoError(t, err)

	now = issuedAt.Add(auth.DefaultSessionTTL + time.Second)
	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenCodec("secret-a")
	verifier := auth.NewTokenCodec("secret-b")

	token, _, err := issuer.Issue(testPrincipal())
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	codec := auth.NewTokenCodec("secret")

	for _, garbage := range []string{"", "not.a.jwt", "a.b", "....."} {
		_, err := codec.Decode(garbage)
		assert.ErrorIs(t, err, auth.ErrTokenInvalid, "input %q", garbage)
	}
}

func TestDecodeRejectsTamperedRole(t *testing.T) {
	codec := auth.NewTokenCodec("secret")
	token, _, err := codec.Issue(testPrincipal())
	require.NoError(t, err)

	// Flip a byte in the payload segment; the signature check must fail.
	tampered := []byte(token)
	tampered[len(tampered)/2] ^= 0x01
	_, err = codec.Decode(string(tampered))
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestRefreshRestartsWindow(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	codec := auth.NewTokenCodec("secret",
		auth.WithClock(func() time.Time { return now }),
		auth.WithSlidingExpiry(true))
	require.True(t, codec.Sliding())

	token, _, err := codec.Issue(testPrincipal())
	require.NoError(t, err)
	claims, err := codec.Decode(token)
	require.NoError(t, err)

	now = issuedAt.Add(10 * 24 * time.Hour)
	refreshed, expiresAt, err := codec.Refresh(claims)
	require.NoError(t, err)
	assert.Equal(t, now.Add(auth.DefaultSessionTTL), expiresAt)

	refreshedClaims, err := codec.Decode(refreshed)
	require.NoError(t, err)
	assert.Equal(t, claims.Subject, refreshedClaims.Subject)
	assert.Equal(t, claims.Role, refreshedClaims.Role)
}

func TestCustomTTL(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	codec := auth.NewTokenCodec("secret",
		auth.WithClock(fixedClock(issuedAt)),
		auth.WithTTL(time.Hour))

	_, expiresAt, err := codec.Issue(testPrincipal())
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)
}
