package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const lookupKeyPrefix = "lookups:"

// LookupCache stores read-only lookup lists as JSON under lookups:{name}.
type LookupCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewLookupCache(r *Redis, ttl time.Duration) *LookupCache {
	return &LookupCache{client: r.Client, ttl: ttl}
}

// Get decodes the cached value into dst. A miss returns false and no error.
func (c *LookupCache) Get(ctx context.Context, name string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, lookupKeyPrefix+name).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *LookupCache) Set(ctx context.Context, name string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, lookupKeyPrefix+name, b, c.ttl).Err()
}
