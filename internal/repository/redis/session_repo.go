package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	SessionTokenPrefix = "session:user:token"
	SessionTokenExpire = 60 * 30
)

// SessionRepository 单会话：每个用户只保留最后一次登录签发的 access token
type SessionRepository struct{}

func (r *SessionRepository) AddUserToken(usrID uint64, token string) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, usrID)
	if err := Client.Set(context.Background(), key, token, time.Second*SessionTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) GetUserToken(usrID uint64) (string, error) {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, usrID)
	token, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *SessionRepository) ExtendUserToken(usrID uint64) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, usrID)
	_, err := Client.Expire(context.Background(), key, time.Second*SessionTokenExpire).Result()
	if err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *SessionRepository) DeleteUserToken(usrID uint64) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, usrID)
	err := Client.Del(context.Background(), key).Err()
	if err != nil {
		return ErrTokenDeleted
	}
	return nil
}
