package jwtutil

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist tracks revoked access-token IDs until their natural expiry.
// A nil client disables it, so deployments without Redis still work.
type Denylist struct{ rdb *redis.Client }

func NewDenylist(rdb *redis.Client) *Denylist { return &Denylist{rdb: rdb} }

func (d *Denylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if d == nil || d.rdb == nil || jti == "" {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, "revoked:"+jti, 1, ttl).Err()
}

func (d *Denylist) Revoked(ctx context.Context, jti string) bool {
	if d == nil || d.rdb == nil || jti == "" {
		return false
	}
	n, err := d.rdb.Exists(ctx, "revoked:"+jti).Result()
	return err == nil && n > 0
}
