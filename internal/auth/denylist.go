package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DenyList records revoked token ids until their natural expiry. Tokens are
// otherwise stateless; this is the only server-side revocation mechanism.
type DenyList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const denyListKeyPrefix = "auth:denylist:"

type redisDenyList struct {
	client *redis.Client
}

// NewRedisDenyList builds a Redis-backed deny-list. Keys carry a TTL equal
// to the revoked token's remaining life, so entries clean themselves up.
func NewRedisDenyList(client *redis.Client) DenyList {
	return &redisDenyList{client: client}
}

func (d *redisDenyList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denyListKeyPrefix+tokenID, "1", ttl).Err()
}

func (d *redisDenyList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, denyListKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type noopDenyList struct{}

// NewNoopDenyList returns a deny-list that revokes nothing. Used when Redis
// is not configured; logout degrades to client-side token discard.
func NewNoopDenyList() DenyList {
	return noopDenyList{}
}

func (noopDenyList) Revoke(context.Context, string, time.Duration) error { return nil }

func (noopDenyList) IsRevoked(context.Context, string) (bool, error) { return false, nil }
