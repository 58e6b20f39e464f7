package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker provides transaction idempotency checks backed by Redis.
// Key format: txn:<username>:<idempotency_key>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether a transaction with this key has already
// been recorded for the user.
func (d *DedupChecker) IsDuplicate(ctx context.Context, username, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(username, key)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this transaction has been stored (expires after
// dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, username, key string) error {
	return d.client.Set(ctx, d.key(username, key), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(username, key string) string {
	return fmt.Sprintf("txn:%s:%s", username, key)
}
