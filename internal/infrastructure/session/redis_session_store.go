// Package session keeps short-lived identity state and the live profile feed in Redis.
package session

import (
	"context"
	"errors"
	"time"

	"eventos_api/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	revokedPrefix = "auth:revoked:"
	resetPrefix   = "auth:reset:"
)

type RedisSessionStore struct {
	rdb redis.UniversalClient
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(rdb redis.UniversalClient) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err()
}

func (s *RedisSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisSessionStore) SaveResetToken(ctx context.Context, token, email string, ttl time.Duration) error {
	return s.rdb.Set(ctx, resetPrefix+token, email, ttl).Err()
}

func (s *RedisSessionStore) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	email, err := s.rdb.GetDel(ctx, resetPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return email, nil
}
