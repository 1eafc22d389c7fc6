package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	profileKeyPrefix = "tradeobull:profile:"
	sessionKeyPrefix = "tradeobull:session:"
	profileTTL       = 24 * time.Hour
	redisOpTimeout   = 3 * time.Second
)

// RedisCache is the Redis-backed fast tier. Every operation carries a
// bounded timeout so a stalled Redis never blocks a caller indefinitely.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(addr string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisCache{client: client}, nil
}

func (c *RedisCache) GetProfile(ctx context.Context, identity string) (models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, profileKeyPrefix+identity).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, err
	}

	var p models.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		// Corrupt cache entry: treat as a miss so the remote can repair it.
		return models.UserProfile{}, ErrNotFound
	}
	return p, nil
}

func (c *RedisCache) SetProfile(ctx context.Context, profile models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	return c.client.Set(ctx, profileKeyPrefix+profile.Email, raw, profileTTL).Err()
}

func (c *RedisCache) DeleteProfile(ctx context.Context, identity string) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	return c.client.Del(ctx, profileKeyPrefix+identity).Err()
}

func (c *RedisCache) MarkSession(ctx context.Context, identity string) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	return c.client.Set(ctx, sessionKeyPrefix+identity, "1", profileTTL).Err()
}

func (c *RedisCache) ClearSession(ctx context.Context, identity string) error {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	return c.client.Del(ctx, sessionKeyPrefix+identity).Err()
}
