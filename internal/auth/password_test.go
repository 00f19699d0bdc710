package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedoor/stagedoor-api/internal/auth"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	hasher := auth.NewHasher(4)

	for _, plaintext := range []string{"correct horse", "p@ssw0rd!!", "日本語のパスワード"} {
		hashed, err := hasher.Hash(plaintext)
		require.NoError(t, err)
		assert.True(t, hasher.Verify(plaintext, hashed))
	}
}

func TestHashSaltsPerCall(t *testing.T) {
	hasher := auth.NewHasher(4)

	first, err := hasher.Hash("same input")
	require.NoError(t, err)
	second, err := hasher.Hash("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same input", first))
	assert.True(t, hasher.Verify("same input", second))
}

func TestVerifyRejectsMismatch(t *testing.T) {
	hasher := auth.NewHasher(4)

	hashed, err := hasher.Hash("the real password")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("not the password", hashed))
	assert.False(t, hasher.Verify("", hashed))
}

func TestVerifyNeverErrorsOnGarbageDigest(t *testing.T) {
	hasher := auth.NewHasher(4)

	assert.False(t, hasher.Verify("anything", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Verify("", ""))
}

func TestHasherClampsInvalidCost(t *testing.T) {
	hasher := auth.NewHasher(99)

	hashed, err := hasher.Hash("password123")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("password123", hashed))
}
