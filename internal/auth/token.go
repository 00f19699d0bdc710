package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/stagedoor/stagedoor-api/internal/domain"
)

// DefaultSessionTTL is the absolute validity window for issued sessions.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Clock supplies the current time; injectable for deterministic tests.
type Clock func() time.Time

// SessionClaims is the signed token payload. Only the principal id (sub),
// role and token id travel in the token; never email or password material.
type SessionClaims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and decodes signed session tokens.
type TokenCodec struct {
	secret  []byte
	ttl     time.Duration
	clock   Clock
	sliding bool
}

// CodecOption customizes a TokenCodec.
type CodecOption func(*TokenCodec)

// WithClock overrides the time source.
func WithClock(clock Clock) CodecOption {
	return func(c *TokenCodec) { c.clock = clock }
}

// WithTTL overrides the session validity window.
func WithTTL(ttl time.Duration) CodecOption {
	return func(c *TokenCodec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithSlidingExpiry enables re-issuance on use, turning the fixed window
// into a rolling one. Off by default.
func WithSlidingExpiry(enabled bool) CodecOption {
	return func(c *TokenCodec) { c.sliding = enabled }
}

// NewTokenCodec builds a codec signing with the given HMAC secret.
func NewTokenCodec(secret string, opts ...CodecOption) *TokenCodec {
	codec := &TokenCodec{
		secret: []byte(secret),
		ttl:    DefaultSessionTTL,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(codec)
	}
	return codec
}

// Sliding reports whether tokens should be re-issued on successful decode.
func (c *TokenCodec) Sliding() bool {
	return c.sliding
}

// TTL returns the configured validity window.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a session token for the principal, embedding id and role.
func (c *TokenCodec) Issue(principal *Principal) (string, time.Time, error) {
	return c.issue(principal.ID, principal.Role)
}

// Refresh re-issues a token for the same subject and role, restarting the
// validity window. Used when sliding expiry is enabled.
func (c *TokenCodec) Refresh(claims *SessionClaims) (string, time.Time, error) {
	return c.issue(claims.Subject, claims.Role)
}

func (c *TokenCodec) issue(subjectID string, role domain.Role) (string, time.Time, error) {
	now := c.clock()
	expiresAt := now.Add(c.ttl)
	claims := &SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Decode validates signature, structure and expiry. Malformed input never
// panics; every failure maps to ErrTokenExpired or ErrTokenInvalid.
func (c *TokenCodec) Decode(tokenStr string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrTokenInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.clock() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Subject == "" || !claims.Role.IsValid() {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
