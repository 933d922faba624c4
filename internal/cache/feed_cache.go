package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const topRatedPrefix = "toprated:"

// FeedCache keeps recently computed top-rated feeds in redis. All methods are
// nil-safe: with no client the cache always misses and writes are dropped, so
// callers fall through to the database.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache connects to redis and verifies the connection.
func NewFeedCache(redisURL, password string, ttl time.Duration) (*FeedCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &FeedCache{client: rdb, ttl: ttl}, nil
}

func topRatedKey(minCount, limit int) string {
	return fmt.Sprintf("%smin:%d:limit:%d", topRatedPrefix, minCount, limit)
}

// GetTopRated returns a cached feed and whether it was present.
func (c *FeedCache) GetTopRated(ctx context.Context, minCount, limit int) ([]string, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, topRatedKey(minCount, limit)).Bytes()
	if err != nil {
		return nil, false
	}

	var isbns []string
	if err := json.Unmarshal(payload, &isbns); err != nil {
		return nil, false
	}
	return isbns, true
}

// SetTopRated stores a computed feed with the configured TTL. Errors are
// swallowed; the cache is best effort.
func (c *FeedCache) SetTopRated(ctx context.Context, minCount, limit int, isbns []string) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(isbns)
	if err != nil {
		return
	}
	c.client.Set(ctx, topRatedKey(minCount, limit), payload, c.ttl)
}

// InvalidateTopRated drops every cached feed variant. Called after any
// rating write so readers never see a feed older than the TTL allows.
func (c *FeedCache) InvalidateTopRated(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, topRatedPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}

// Close releases the underlying client.
func (c *FeedCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
