package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrSessionUnavailable redis 未配置
	ErrSessionUnavailable = errors.New("session store is not configured")
	ErrSessionNotFound    = errors.New("session not found")
)

type SessionStorage struct {
	redis *redis.Client
}

func NewSessionStorage(rds *redis.Client) *SessionStorage {
	return &SessionStorage{redis: rds}
}

// Set 写入会话
// @params sid     会话ID
// @params adminID 管理员ID
// @params ttl     有效期
func (s *SessionStorage) Set(ctx context.Context, sid string, adminID int64, ttl time.Duration) error {
	if s.redis == nil {
		return ErrSessionUnavailable
	}
	return s.redis.Set(ctx, s.name(sid), adminID, ttl).Err()
}

// Get 获取会话对应的管理员ID
func (s *SessionStorage) Get(ctx context.Context, sid string) (int64, error) {
	if s.redis == nil {
		return 0, ErrSessionUnavailable
	}
	id, err := s.redis.Get(ctx, s.name(sid)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, ErrSessionNotFound
	}
	return id, err
}

func (s *SessionStorage) Del(ctx context.Context, sid string) error {
	if s.redis == nil {
		return ErrSessionUnavailable
	}
	return s.redis.Del(ctx, s.name(sid)).Err()
}

func (s *SessionStorage) name(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}
