package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kosaboard/board-api/internal/api/metrics"
	"github.com/kosaboard/board-api/internal/core/ports"
)

const feedKey = "feed:posts"

// FeedCache caches the rendered post feed as a single JSON value in Redis.
// Key format: feed:posts
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache creates a FeedCache wrapping the given Redis client. Entries
// expire after ttl.
func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{client: client, ttl: ttl}
}

// Get returns the cached feed, or ok=false when the key is absent.
func (f *FeedCache) Get(ctx context.Context) ([]ports.PostSummary, bool, error) {
	raw, err := f.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.FeedCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("feed cache get: %w", err)
	}

	var summaries []ports.PostSummary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		// A corrupt entry behaves like a miss so the feed can be rebuilt.
		metrics.FeedCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, fmt.Errorf("feed cache decode: %w", err)
	}

	metrics.FeedCacheTotal.WithLabelValues("hit").Inc()
	return summaries, true, nil
}

// Set stores the feed, replacing any previous entry.
func (f *FeedCache) Set(ctx context.Context, summaries []ports.PostSummary) error {
	raw, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("feed cache encode: %w", err)
	}
	if err := f.client.Set(ctx, feedKey, raw, f.ttl).Err(); err != nil {
		return fmt.Errorf("feed cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached feed so the next read rebuilds it.
func (f *FeedCache) Invalidate(ctx context.Context) error {
	if err := f.client.Del(ctx, feedKey).Err(); err != nil {
		return fmt.Errorf("feed cache invalidate: %w", err)
	}
	return nil
}
