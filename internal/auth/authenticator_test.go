package auth_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedoor/stagedoor-api/internal/auth"
	"github.com/stagedoor/stagedoor-api/internal/domain"
)

type stubUserStore struct {
	users   map[string]*domain.User
	err     error
	lookups int
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.lookups++
	if s.err != nil {
		return nil, s.err
	}
	if user, ok := s.users[email]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.lookups++
	if s.err != nil {
		return nil, s.err
	}
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newTestAuthenticator(store *stubUserStore) (*auth.CredentialAuthenticator, *auth.Hasher) {
	hasher := auth.NewHasher(4)
	return auth.NewCredentialAuthenticator(store, hasher), hasher
}

func storedUser(t *testing.T, hasher *auth.Hasher, password string) *domain.User {
	t.Helper()
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	return &domain.User{
		ID:           "user-1",
		Email:        "dana@example.com",
		PasswordHash: &hash,
		Role:         domain.RoleDancer,
		FirstName:    "Dana",
		LastName:     "Reyes",
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	store := &stubUserStore{users: map[string]*domain.User{}}
	authenticator, hasher := newTestAuthenticator(store)
	user := storedUser(t, hasher, "opensesame")
	store.users[user.Email] = user

	principal, err := authenticator.Authenticate(context.Background(), auth.Credentials{
		Email:    "Dana@Example.com ",
		Password: "opensesame",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.ID)
	assert.Equal(t, domain.RoleDancer, principal.Role)
	assert.Equal(t, "dana@example.com", principal.Email)
}

func TestAuthenticateMalformedInputSkipsLookup(t *testing.T) {
	store := &stubUserStore{users: map[string]*domain.User{}}
	authenticator, _ := newTestAuthenticator(store)

	cases := []auth.Credentials{
		{Email: "not-an-email", Password: "longenough"},
		{Email: "", Password: "longenough"},
		{Email: "dana@example.com", Password: "short"},
		{Email: "dana@example.com", Password: ""},
	}
	for _, creds := range cases {
		_, err := authenticator.Authenticate(context.Background(), creds)
		assert.ErrorIs(t, err, auth.ErrInvalidInput)
	}
	assert.Zero(t, store.lookups, "malformed input must not touch the store")
}

func TestAuthenticateUniformFailure(t *testing.T) {
	store := &stubUserStore{users: map[string]*domain.User{}}
	authenticator, hasher := newTestAuthenticator(store)

	user := storedUser(t, hasher, "opensesame")
	store.users[user.Email] = user
	noHash := &domain.User{ID: "user-2", Email: "nohash@example.com", Role: domain.RoleStylist}
	store.users[noHash.Email] = noHash

	// Unknown email, account without a hash, and wrong password must all
	// surface the exact same failure.
	for _, creds := range []auth.Credentials{
		{Email: "nobody@example.com", Password: "opensesame"},
		{Email: "nohash@example.com", Password: "opensesame"},
		{Email: "dana@example.com", Password: "wrongpassword"},
	} {
		_, err := authenticator.Authenticate(context.Background(), creds)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	}
}

func TestAuthenticateStoreTimeout(t *testing.T) {
	store := &stubUserStore{err: context.DeadlineExceeded}
	authenticator, _ := newTestAuthenticator(store)

	_, err := authenticator.Authenticate(context.Background(), auth.Credentials{
		Email:    "dana@example.com",
		Password: "opensesame",
	})
	assert.ErrorIs(t, err, auth.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestDisplayNameFallbackOrder(t *testing.T) {
	store := &stubUserStore{users: map[string]*domain.User{}}
	authenticator, hasher := newTestAuthenticator(store)
	hash, err := hasher.Hash("opensesame")
	require.NoError(t, err)

	tests := []struct {
		name string
		user *domain.User
		want string
	}{
		{
			name: "stylist profile name wins",
			user: &domain.User{
				ID: "u1", Email: "s@example.com", PasswordHash: &hash, Role: domain.RoleStylist,
				FirstName: "Sam", LastName: "Ortiz",
				StylistProfile: &domain.StylistProfile{DisplayName: "Studio Sam"},
			},
			want: "Studio Sam",
		},
		{
			name: "composed name when profile has no display name",
			user: &domain.User{
				ID: "u2", Email: "d@example.com", PasswordHash: &hash, Role: domain.RoleDancer,
				FirstName: "Dana", LastName: "Reyes",
				DancerProfile: &domain.DancerProfile{},
			},
			want: "Dana Reyes",
		},
		{
			name: "email as last resort",
			user: &domain.User{
				ID: "u3", Email: "bare@example.com", PasswordHash: &hash, Role: domain.RoleDancer,
			},
			want: "bare@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.users = map[string]*domain.User{tt.user.Email: tt.user}
			principal, err := authenticator.Authenticate(context.Background(), auth.Credentials{
				Email:    tt.user.Email,
				Password: "opensesame",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, principal.DisplayName)
		})
	}
}
