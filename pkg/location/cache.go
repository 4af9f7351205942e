package location

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/tripwise/tripwise/pkg/redis_client"
)

// Cache keeps successful provider lookups in redis so repeat queries
// for the same address skip the provider entirely.
type Cache struct {
	Cache *cache.Cache[string]
}

func (c *Cache) Setup() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(90*time.Minute))

	c.Cache = cache.New[string](redisStore)
}

func (c *Cache) Get(ctx context.Context, ipAddress string) *Record {
	value, err := c.Cache.Get(ctx, cacheKey(ipAddress))
	if err != nil {
		return nil
	}

	var record *Record
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return nil
	}

	return record
}

func (c *Cache) Set(ctx context.Context, ipAddress string, record *Record) {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return
	}

	c.Cache.Set(ctx, cacheKey(ipAddress), string(jsonBytes))
}

func cacheKey(ipAddress string) string {
	return fmt.Sprintf("location:%s", ipAddress)
}
