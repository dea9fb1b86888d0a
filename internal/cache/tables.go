// Package cache provides a Redis-backed cache for the available-tables
// listing, the one read the front desk hammers while seating guests.
// The cache degrades gracefully: with no Redis client every method is a
// no-op and callers fall through to the database.
package cache

import (
    "context"
    "encoding/json"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

const availableTablesKey = "tables:available"

// TableCache caches the available-tables listing under a single key with
// a short TTL.  Any write that can change a table's status must call
// Invalidate.
type TableCache struct {
    client *redis.Client
    ttl    time.Duration
}

// New returns a TableCache.  A nil client yields a disabled cache.
func New(client *redis.Client, ttl time.Duration) *TableCache {
    return &TableCache{client: client, ttl: ttl}
}

// GetAvailable returns the cached listing and true on a hit.  Any Redis
// or decode error counts as a miss.
func (c *TableCache) GetAvailable(ctx context.Context) ([]model.Table, bool) {
    if c == nil || c.client == nil {
        return nil, false
    }
    raw, err := c.client.Get(ctx, availableTablesKey).Bytes()
    if err != nil {
        return nil, false
    }
    var tables []model.Table
    if err := json.Unmarshal(raw, &tables); err != nil {
        return nil, false
    }
    return tables, true
}

// SetAvailable stores the listing.  Failures are ignored; the cache is an
// optimization, not a source of truth.
func (c *TableCache) SetAvailable(ctx context.Context, tables []model.Table) {
    if c == nil || c.client == nil {
        return
    }
    raw, err := json.Marshal(tables)
    if err != nil {
        return
    }
    _ = c.client.Set(ctx, availableTablesKey, raw, c.ttl).Err()
}

// Invalidate drops the cached listing.  Called after every table-status
// write, whether from a booking transition or a direct table edit.
func (c *TableCache) Invalidate(ctx context.Context) {
    if c == nil || c.client == nil {
        return
    }
    _ = c.client.Del(ctx, availableTablesKey).Err()
}
