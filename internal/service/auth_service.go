package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stagedoor/stagedoor-api/internal/auth"
	"github.com/stagedoor/stagedoor-api/internal/config"
	"github.com/stagedoor/stagedoor-api/internal/domain"
	"github.com/stagedoor/stagedoor-api/internal/repository"
	apperrors "github.com/stagedoor/stagedoor-api/pkg/util"
)

// storeLookupTimeout bounds the credential lookup so a stalled database
// surfaces as StoreUnavailable instead of hanging the login request.
const storeLookupTimeout = 5 * time.Second

// AuthService coordinates registration, login and logout flows.
type AuthService struct {
	users         repository.UserRepository
	profiles      repository.ProfileRepository
	authenticator *auth.CredentialAuthenticator
	codec         *auth.TokenCodec
	hasher        *auth.Hasher
	revoked       *auth.RevocationList
	validate      *validator.Validate
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	Revocations *auth.RevocationList
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	return &AuthService{
		users:         deps.UserRepo,
		profiles:      deps.ProfileRepo,
		authenticator: auth.NewCredentialAuthenticator(deps.UserRepo, hasher),
		codec: auth.NewTokenCodec(cfg.Auth.JWTSecret,
			auth.WithTTL(cfg.Auth.SessionTTL()),
			auth.WithSlidingExpiry(cfg.Auth.SlidingExpiry)),
		hasher:   hasher,
		revoked:  deps.Revocations,
		validate: validator.New(),
	}
}

// RegisterInput is the self-registration payload. Admin accounts are not
// self-registerable.
type RegisterInput struct {
	Email       string      `validate:"required,email"`
	Password    string      `validate:"required,min=8"`
	FirstName   string      `validate:"required"`
	LastName    string      `validate:"required"`
	Role        domain.Role `validate:"required,oneof=STYLIST DANCER"`
	DisplayName string
}

// Register creates an account with its role profile and signs the caller in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*auth.Principal, string, time.Time, error) {
	input.Email = auth.NormalizeEmail(input.Email)
	if err := s.validate.Struct(input); err != nil {
		return nil, "", time.Time{}, auth.ErrInvalidInput
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: &hash,
		Role:         input.Role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A register racing the GetByEmail check above lands on the
		// users.email unique constraint; that is still a conflict.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
		}
		return nil, "", time.Time{}, err
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = strings.TrimSpace(input.FirstName + " " + input.LastName)
	}

	switch input.Role {
	case domain.RoleStylist:
		profile := &domain.StylistProfile{UserID: user.ID, DisplayName: displayName}
		if err := s.profiles.CreateStylist(ctx, profile); err != nil {
			return nil, "", time.Time{}, err
		}
		user.StylistProfile = profile
	case domain.RoleDancer:
		profile := &domain.DancerProfile{UserID: user.ID, DisplayName: displayName}
		if err := s.profiles.CreateDancer(ctx, profile); err != nil {
			return nil, "", time.Time{}, err
		}
		user.DancerProfile = profile
	}

	principal := auth.PrincipalForClaims(user, user.Role)
	token, expiresAt, err := s.codec.Issue(principal)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return principal, token, expiresAt, nil
}

// Login authenticates credentials and issues a session token. The store
// lookup is bounded; timeouts surface as StoreUnavailable, never as a
// credential failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.Principal, string, time.Time, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, storeLookupTimeout)
	defer cancel()

	principal, err := s.authenticator.Authenticate(lookupCtx, auth.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.codec.Issue(principal)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return principal, token, expiresAt, nil
}

// Logout invalidates the presented session for the remainder of its
// lifetime. An already-expired token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.codec.Decode(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil
		}
		return err
	}
	return s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

// CurrentUser resolves the principal for a presented token, honoring
// revocation. Absent or unusable sessions read as Unauthenticated.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*auth.Principal, error) {
	if token == "" {
		return nil, auth.ErrUnauthenticated
	}
	claims, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}
	if revoked, err := s.revoked.IsRevoked(ctx, claims.ID); err == nil && revoked {
		return nil, auth.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUnauthenticated
		}
		return nil, auth.ErrStoreUnavailable
	}
	return auth.PrincipalForClaims(user, claims.Role), nil
}

// TokenCodec exposes the codec for middleware wiring.
func (s *AuthService) TokenCodec() *auth.TokenCodec {
	return s.codec
}
