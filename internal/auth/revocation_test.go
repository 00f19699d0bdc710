package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedoor/stagedoor-api/internal/auth"
)

func newRevocationList(t *testing.T) (*auth.RevocationList, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return auth.NewRevocationList(client, time.Now), mr
}

func TestRevokeThenCheck(t *testing.T) {
	list, _ := newRevocationList(t)
	ctx := context.Background()

	revoked, err := list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, list.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRevokeExpiredTokenIsNoOp(t *testing.T) {
	list, _ := newRevocationList(t)
	ctx := context.Background()

	require.NoError(t, list.Revoke(ctx, "jti-dead", time.Now().Add(-time.Minute)))

	revoked, err := list.IsRevoked(ctx, "jti-dead")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationEntryExpiresWithToken(t *testing.T) {
	list, mr := newRevocationList(t)
	ctx := context.Background()

	require.NoError(t, list.Revoke(ctx, "jti-2", time.Now().Add(time.Minute)))
	mr.FastForward(2 * time.Minute)

	revoked, err := list.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}
