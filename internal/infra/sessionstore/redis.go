package sessionstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранит отозванные сессии в Redis с TTL до истечения токена
// Подходит для нескольких экземпляров сервиса
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore создает хранилище поверх клиента Redis
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix + "revoked:", now: time.Now}
}

// Revoke помечает сессию отозванной до момента until
func (s *RedisStore) Revoke(ctx context.Context, sessionID string, until time.Time) error {
	// Истекший токен и так не пройдет проверку, хранить нечего
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.rdb.Set(ctx, s.prefix+sessionID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Revoke - set: %v", ErrStore, err)
	}
	return nil
}

// IsRevoked возвращает true, если сессия была отозвана
func (s *RedisStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.prefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: IsRevoked - exists: %v", ErrStore, err)
	}
	return n > 0, nil
}

// Ping проверяет доступность Redis
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: Ping: %v", ErrStore, err)
	}
	return nil
}
