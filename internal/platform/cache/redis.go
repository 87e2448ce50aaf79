package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minhtran/phimhub/internal/domain/catalog"
	"github.com/minhtran/phimhub/internal/platform/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// InitRedis opens and verifies a connection to the Redis server.
func InitRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("error verifying Redis connection: %w", err)
	}

	return client, nil
}

// RedisPageCache stores latest-movies page results in Redis with a TTL.
// Cache failures are absorbed: a broken Redis degrades to cache misses,
// never to request failures.
type RedisPageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPageCache(client *redis.Client, ttl time.Duration) *RedisPageCache {
	return &RedisPageCache{client: client, ttl: ttl}
}

func cacheKey(page int) string {
	return fmt.Sprintf("catalog:latest:%d", page)
}

func (c *RedisPageCache) Get(ctx context.Context, page int) (*catalog.PageResult, bool) {
	data, err := c.client.Get(ctx, cacheKey(page)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Int("page", page).Msg("redis cache read failed")
		}
		return nil, false
	}

	var result catalog.PageResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.Debug().Err(err).Int("page", page).Msg("redis cache entry unreadable")
		return nil, false
	}
	return &result, true
}

func (c *RedisPageCache) Set(ctx context.Context, page int, result *catalog.PageResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(page), data, c.ttl).Err(); err != nil {
		log.Debug().Err(err).Int("page", page).Msg("redis cache write failed")
	}
}
