package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"

	"github.com/stagedoor/stagedoor-api/internal/domain"
)

// UserStore is the narrow persistence surface the authenticator needs.
// Implementations return pgx.ErrNoRows for missing records.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Credentials is the transient login input; never persisted or logged.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// Principal is the authenticated identity derived from a successful
// credential check. Lifetime is one login attempt or one request.
type Principal struct {
	ID          string
	Email       string
	Role        domain.Role
	DisplayName string
}

// CredentialAuthenticator validates login input against the user store.
type CredentialAuthenticator struct {
	store    UserStore
	hasher   *Hasher
	validate *validator.Validate
}

// NewCredentialAuthenticator wires the authenticator to its collaborators.
func NewCredentialAuthenticator(store UserStore, hasher *Hasher) *CredentialAuthenticator {
	return &CredentialAuthenticator{
		store:    store,
		hasher:   hasher,
		validate: validator.New(),
	}
}

// NormalizeEmail canonicalizes an address for lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate verifies credentials and returns the principal on success.
// Malformed input fails before any store lookup. Unknown email, absent
// password hash and wrong password are indistinguishable to the caller,
// in error value and in timing: branches that skip the real bcrypt
// comparison burn an equivalent one against a dummy digest.
func (a *CredentialAuthenticator) Authenticate(ctx context.Context, creds Credentials) (*Principal, error) {
	creds.Email = NormalizeEmail(creds.Email)
	if err := a.validate.Struct(creds); err != nil {
		return nil, ErrInvalidInput
	}

	user, err := a.store.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, ErrStoreUnavailable
		}
		if errors.Is(err, pgx.ErrNoRows) {
			a.hasher.burnComparison(creds.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, ErrStoreUnavailable
	}

	if user.PasswordHash == nil {
		a.hasher.burnComparison(creds.Password)
		return nil, ErrInvalidCredentials
	}
	if !a.hasher.Verify(creds.Password, *user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &Principal{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		DisplayName: displayName(user),
	}, nil
}

// PrincipalForClaims rebuilds the request-scoped principal for a decoded
// session. The role comes from the token, not the record: role changes made
// after issuance take effect at the next login.
func PrincipalForClaims(user *domain.User, role domain.Role) *Principal {
	return &Principal{
		ID:          user.ID,
		Email:       user.Email,
		Role:        role,
		DisplayName: displayName(user),
	}
}

// displayName resolves the presentation name: role profile name first,
// then composed legal name, then the email address.
func displayName(user *domain.User) string {
	switch user.Role {
	case domain.RoleStylist:
		if user.StylistProfile != nil && user.StylistProfile.DisplayName != "" {
			return user.StylistProfile.DisplayName
		}
	case domain.RoleDancer:
		if user.DancerProfile != nil && user.DancerProfile.DisplayName != "" {
			return user.DancerProfile.DisplayName
		}
	}
	if full := strings.TrimSpace(user.FirstName + " " + user.LastName); full != "" {
		return full
	}
	return user.Email
}
