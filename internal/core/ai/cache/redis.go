package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"pairing-generator/internal/infrastructure/config"
	"pairing-generator/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore backs the recommendation cache with Redis so several
// instances can share one cache. Selected with cache.backend=redis;
// single-instance deployments keep the default in-memory Manager.
type RedisStore struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg *config.CacheConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("redis cache store initialized",
		zap.String("addr", cfg.RedisAddr),
		zap.Duration("ttl", cfg.TTL),
	)

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get returns the cached recommendations for key. Redis applies the TTL
// itself, so a hit is always fresh.
func (s *RedisStore) Get(ctx context.Context, key string) ([]common.Recommendation, bool) {
	data, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			common.LogError("failed to read cache from redis",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		common.LogCacheMiss("redis", key)
		return nil, false
	}

	var items []common.Recommendation
	if err := json.Unmarshal(data, &items); err != nil {
		common.LogError("failed to unmarshal cached recommendations",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, false
	}

	common.LogCacheHit("redis", key)
	return items, true
}

// Set stores recommendations under key with the configured TTL.
func (s *RedisStore) Set(ctx context.Context, key string, items []common.Recommendation) {
	data, err := json.Marshal(items)
	if err != nil {
		common.LogError("failed to marshal recommendations for cache",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}

	if err := s.client.Set(ctx, s.redisKey(key), data, s.config.TTL).Err(); err != nil {
		common.LogError("failed to write cache to redis",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}

	common.LogInfo("cache entry stored", zap.String("key", key))
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) redisKey(key string) string {
	return "pairing:" + key
}
