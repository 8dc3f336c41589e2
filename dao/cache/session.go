package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// OTP 会话：逻辑过期 30 分钟，缓存 TTL 1 小时。逻辑过期在读取时单独校验，
	// 与 TTL 相互独立
	OtpSessionExpiry = 30 * time.Minute
	otpSessionTTL    = time.Hour

	// 登录会话：24 小时，过期惰性检查，不主动清除
	AuthSessionExpiry = 24 * time.Hour
)

// OtpSession 邮箱验证码会话，仅存缓存
type OtpSession struct {
	Email     string    `json:"email"`
	CodeHash  string    `json:"code_hash"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *OtpSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type OtpSessionStorage struct {
	redis *redis.Client
}

func NewOtpSessionStorage(rds *redis.Client) *OtpSessionStorage {
	return &OtpSessionStorage{redis: rds}
}

func (s *OtpSessionStorage) Create(ctx context.Context, slug string, sess *OtpSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, s.name(slug), data, otpSessionTTL).Err()
}

// Find 未找到返回 (nil, nil)
func (s *OtpSessionStorage) Find(ctx context.Context, slug string) (*OtpSession, error) {
	data, err := s.redis.Get(ctx, s.name(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess OtpSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *OtpSessionStorage) Delete(ctx context.Context, slug string) error {
	return s.redis.Del(ctx, s.name(slug)).Err()
}

func (s *OtpSessionStorage) name(slug string) string {
	return fmt.Sprintf("otp:session:%s", slug)
}

// AuthSession 登录会话，仅存缓存
type AuthSession struct {
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
}

func (s *AuthSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type AuthSessionStorage struct {
	redis *redis.Client
}

func NewAuthSessionStorage(rds *redis.Client) *AuthSessionStorage {
	return &AuthSessionStorage{redis: rds}
}

func (s *AuthSessionStorage) Create(ctx context.Context, token string, sess *AuthSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, s.name(token), data, AuthSessionExpiry).Err()
}

// Find 未找到返回 (nil, nil)
func (s *AuthSessionStorage) Find(ctx context.Context, token string) (*AuthSession, error) {
	data, err := s.redis.Get(ctx, s.name(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess AuthSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *AuthSessionStorage) Delete(ctx context.Context, token string) error {
	return s.redis.Del(ctx, s.name(token)).Err()
}

func (s *AuthSessionStorage) name(token string) string {
	return fmt.Sprintf("auth:session:%s", token)
}
