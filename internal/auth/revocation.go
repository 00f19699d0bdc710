package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "session:revoked:"

// RevocationList records token ids invalidated before their natural
// expiry (logout). Entries live exactly as long as the token would have.
type RevocationList struct {
	client *redis.Client
	clock  Clock
}

// NewRevocationList builds a Redis-backed revocation list.
func NewRevocationList(client *redis.Client, clock Clock) *RevocationList {
	if clock == nil {
		clock = time.Now
	}
	return &RevocationList{client: client, clock: clock}
}

// Revoke marks the token id invalid until its expiry instant.
func (r *RevocationList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.clock())
	if ttl <= 0 {
		// Already expired; nothing to record.
		return nil
	}
	return r.client.Set(ctx, revocationKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether the token id has been invalidated.
func (r *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revocationKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
