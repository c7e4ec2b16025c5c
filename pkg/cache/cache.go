package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL constants
const (
	TTLReactions = 30 * time.Second // reaction summaries (invalidated on write)
	TTLProfiles  = 5 * time.Minute  // resolved user profiles
	TTLDefault   = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixReactions = "reactions:"
	PrefixProfile   = "profile:"
)

// Service is the Redis cache interface. All operations tolerate a nil
// client so the API keeps working when Redis is unavailable.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Reaction summary cache
	GetReactions(ctx context.Context, contentType string, contentID uint64) ([]byte, error)
	SetReactions(ctx context.Context, contentType string, contentID uint64, data interface{}) error
	InvalidateReactions(ctx context.Context, contentType string, contentID uint64) error

	// User profile cache
	GetProfile(ctx context.Context, userID uint64) ([]byte, error)
	SetProfile(ctx context.Context, userID uint64, data interface{}) error
	InvalidateProfile(ctx context.Context, userID uint64) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a Redis-backed cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

func (c *redisCache) reactionsKey(contentType string, contentID uint64) string {
	return fmt.Sprintf("%s%s:%d", PrefixReactions, contentType, contentID)
}

func (c *redisCache) GetReactions(ctx context.Context, contentType string, contentID uint64) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, c.reactionsKey(contentType, contentID)).Bytes()
}

func (c *redisCache) SetReactions(ctx context.Context, contentType string, contentID uint64, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.reactionsKey(contentType, contentID), jsonData, TTLReactions).Err()
}

func (c *redisCache) InvalidateReactions(ctx context.Context, contentType string, contentID uint64) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.reactionsKey(contentType, contentID)).Err()
}

func (c *redisCache) profileKey(userID uint64) string {
	return fmt.Sprintf("%s%d", PrefixProfile, userID)
}

func (c *redisCache) GetProfile(ctx context.Context, userID uint64) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	return c.client.Get(ctx, c.profileKey(userID)).Bytes()
}

func (c *redisCache) SetProfile(ctx context.Context, userID uint64, data interface{}) error {
	if c.client == nil {
		return nil
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.profileKey(userID), jsonData, TTLProfiles).Err()
}

func (c *redisCache) InvalidateProfile(ctx context.Context, userID uint64) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.profileKey(userID)).Err()
}
