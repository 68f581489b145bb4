// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// exportKeyPrefix is the Valkey key prefix for exported documents.
	exportKeyPrefix = "export:"

	// DefaultExportTTL is how long an exported document stays cached.
	DefaultExportTTL = 10 * time.Minute
)

// ExportCache stores rendered export documents in Valkey. Keys are
// content hashes of the profile, so entries never need invalidation; they
// simply expire.
type ExportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewExportCache creates an export cache backed by the given Valkey client.
func NewExportCache(client *redis.Client, ttl time.Duration) *ExportCache {
	if ttl <= 0 {
		ttl = DefaultExportTTL
	}
	return &ExportCache{client: client, ttl: ttl}
}

// Key returns the full Valkey key for a profile hash.
func Key(hash string) string {
	return exportKeyPrefix + hash
}

// Get returns a cached document. Errors are logged and reported as a miss.
func (c *ExportCache) Get(ctx context.Context, hash string) ([]byte, bool) {
	val, err := c.client.Get(ctx, Key(hash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("export cache get error", "key", hash, "error", err)
		return nil, false
	}
	slog.Debug("export cache hit", "key", hash)
	return val, true
}

// Set stores a document with the configured TTL.
func (c *ExportCache) Set(ctx context.Context, hash string, data []byte) {
	if err := c.client.Set(ctx, Key(hash), data, c.ttl).Err(); err != nil {
		slog.Warn("export cache set error", "key", hash, "error", err)
	}
}

// Flush removes every cached document by scanning for the prefix. Used
// after a deploy that changes the document layout.
func (c *ExportCache) Flush(ctx context.Context) (int, error) {
	var cursor uint64
	var deleted int
	for {
		keys, next, err := c.client.Scan(ctx, cursor, exportKeyPrefix+"*", 100).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return deleted, err
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("export cache cleared", "deleted", deleted)
	}
	return deleted, nil
}
