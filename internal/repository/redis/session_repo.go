package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("session extend failed")
	ErrSessionDeleted   = errors.New("session delete failed")
)

const (
	SessionPrefix = "session"
	SessionTTL    = 24 * time.Hour // 距最近一次写入24小时过期
)

type SessionRepository struct{} // 会话：sid -> username

func (r *SessionRepository) AddSession(sid, username string) error {
	key := fmt.Sprintf("%s:%s", SessionPrefix, sid)
	if err := Client.Set(context.Background(), key, username, SessionTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) GetSession(sid string) (string, error) {
	key := fmt.Sprintf("%s:%s", SessionPrefix, sid)
	username, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return username, nil
}

// ExtendSession 滑动续期
func (r *SessionRepository) ExtendSession(sid string) error {
	key := fmt.Sprintf("%s:%s", SessionPrefix, sid)
	_, err := Client.Expire(context.Background(), key, SessionTTL).Result()
	if err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *SessionRepository) DeleteSession(sid string) error {
	key := fmt.Sprintf("%s:%s", SessionPrefix, sid)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrSessionDeleted
	}
	return nil
}
