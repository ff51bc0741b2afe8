package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDedupTTL = 10 * time.Minute

// DedupChecker holds short-lived keys so the same export is not queued twice
// while one is still pending.
// Key format: dedup:export:<session_id>:<resource>
type DedupChecker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
// Keys expire after ttl even if never released.
func NewDedupChecker(client *redis.Client, ttl time.Duration) *DedupChecker {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &DedupChecker{client: client, ttl: ttl}
}

// Acquire reports whether key was free and is now held.
func (d *DedupChecker) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := d.client.SetNX(ctx, d.key(key), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedup acquire: %w", err)
	}
	return ok, nil
}

// Release frees key.
func (d *DedupChecker) Release(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, d.key(key)).Err(); err != nil {
		return fmt.Errorf("dedup release: %w", err)
	}
	return nil
}

func (d *DedupChecker) key(k string) string {
	return "dedup:" + k
}
