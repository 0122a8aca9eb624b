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
	SessionTokenPrefix = "login:user:token"
	SessionTokenExpire = 60 * 30
)

type SessionRepository struct{} // 登录态 access token 存储，单点登录

func (r *SessionRepository) AddUserToken(usrId uint64, token string) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, usrId)
	if err := Client.Set(context.Background(), key, token, time.Second*SessionTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) GetUserToken(usrId uint64) (string, error) {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, usrId)
	token, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *SessionRepository) ExtendUserToken(usrId uint64) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, usrId)
	_, err := Client.Expire(context.Background(), key, time.Second*SessionTokenExpire).Result()
	if err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *SessionRepository) DeleteUserToken(usrId uint64) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, usrId)
	err := Client.Del(context.Background(), key).Err()
	if err != nil {
		return ErrTokenDeleted
	}
	return nil
}
