package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jeevanrakshak/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore records which issued session tokens are still live.
type SessionStore interface {
	Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenHash string) (bool, error)
	Delete(ctx context.Context, tokenHash string) error
}

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, tokenHash, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, utils.AuthCachePrefix+tokenHash, userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Exists(ctx context.Context, tokenHash string) (bool, error) {
	_, err := s.client.Get(ctx, utils.AuthCachePrefix+tokenHash).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}
	return true, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, tokenHash string) error {
	return s.client.Del(ctx, utils.AuthCachePrefix+tokenHash).Err()
}
