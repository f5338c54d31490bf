package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "nhl-fantasy-update:delivered:"
	// Claims only need to outlive the day they guard.
	defaultClaimTTL = 48 * time.Hour
)

type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore is a delivery ledger shared by every scheduler pointed at the same Redis.
type RedisStore struct {
	client redisClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return newRedisStore(client)
}

func newRedisStore(client redisClient) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: defaultKeyPrefix,
		ttl:    defaultClaimTTL,
	}
}

// OpenRedis parses a redis:// URL and returns a connected store.
func OpenRedis(ctx context.Context, url string) (*RedisStore, func() error, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStore(client), client.Close, nil
}

// Claim sets the date key only if it does not exist yet.
func (s *RedisStore) Claim(ctx context.Context, date string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(date), time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim %s: %w", date, err)
	}
	return ok, nil
}

// Release deletes the date key.
func (s *RedisStore) Release(ctx context.Context, date string) error {
	if err := s.client.Del(ctx, s.key(date)).Err(); err != nil {
		return fmt.Errorf("release %s: %w", date, err)
	}
	return nil
}

// Delivered reports whether the date key exists.
func (s *RedisStore) Delivered(ctx context.Context, date string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(date)).Result()
	if err != nil {
		return false, fmt.Errorf("check %s: %w", date, err)
	}
	return n > 0, nil
}

func (s *RedisStore) key(date string) string {
	return s.prefix + date
}
