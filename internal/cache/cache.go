package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/holiday-tracker/internal/holiday"
)

// DefaultTTL is how long an upstream year response stays cached.
const DefaultTTL = 24 * time.Hour

// Cache wraps a Redis client and stores upstream holiday responses per country and year.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache. A non-positive ttl falls back to DefaultTTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// key returns the Redis key for the given country and year.
func key(country string, year int) string {
	return "holidays:" + strings.ToLower(strings.TrimSpace(country)) + ":" + strconv.Itoa(year)
}

// Get retrieves the cached holidays of country in year.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, country string, year int) ([]holiday.Holiday, error) {
	val, err := c.client.Get(ctx, key(country, year)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for %s/%d: %w", country, year, err)
	}

	holidays := []holiday.Holiday{}
	if err := json.Unmarshal([]byte(val), &holidays); err != nil {
		return nil, fmt.Errorf("unmarshaling cached holidays for %s/%d: %w", country, year, err)
	}

	return holidays, nil
}

// Set stores holidays with the configured TTL. A nil slice is a no-op.
func (c *Cache) Set(ctx context.Context, country string, year int, holidays []holiday.Holiday) error {
	if holidays == nil {
		return nil
	}

	b, err := json.Marshal(holidays)
	if err != nil {
		return fmt.Errorf("marshaling holidays for %s/%d: %w", country, year, err)
	}

	if err := c.client.Set(ctx, key(country, year), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for %s/%d: %w", country, year, err)
	}

	return nil
}

var _ holiday.YearCache = (*Cache)(nil)
