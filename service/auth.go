package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"notalx/dao/cache"
	"notalx/models"
	"notalx/pkg/encrypt"
	"notalx/pkg/log"
	"notalx/pkg/response"
	"notalx/pkg/strutil"
	"notalx/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	RequestOtp(ctx context.Context, email string) (string, error)
	VerifyOtp(ctx context.Context, slug, code, ip, userAgent string) (string, *models.User, error)
	Logout(ctx context.Context, token string) error
	SessionExpiry(ctx context.Context, token string) (*types.SessionExpiryResponse, error)
}

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type otpMailer interface {
	SendOtp(ctx context.Context, to string, code string) error
}

// AuthService 两段式登录状态机:
// NO_SESSION -> OTP_PENDING -> AUTHENTICATED -> (expired|invalidated) -> NO_SESSION
type AuthService struct {
	Users        userFinder
	OtpSessions  *cache.OtpSessionStorage
	AuthSessions *cache.AuthSessionStorage
	Mailer       otpMailer
}

// RequestOtp 签发验证码会话，返回不透明 slug 供 Cookie 携带
func (s *AuthService) RequestOtp(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !strutil.IsValidEmail(email) {
		return "", response.Validation("Invalid email address")
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", response.NotFound("No account with this email")
		}
		return "", err
	}

	code := strutil.RandomCode(6)
	slug := uuid.NewString()

	sess := &cache.OtpSession{
		Email:     user.Email,
		CodeHash:  encrypt.HashPassword(code),
		ExpiresAt: time.Now().Add(cache.OtpSessionExpiry),
	}
	if err := s.OtpSessions.Create(ctx, slug, sess); err != nil {
		return "", err
	}

	// 邮件失败只记日志，不影响会话签发
	if err := s.Mailer.SendOtp(ctx, user.Email, code); err != nil {
		log.L.Error("send otp mail error", zap.String("email", user.Email), zap.Error(err))
	}

	return slug, nil
}

// VerifyOtp 校验验证码，换发登录会话。逻辑过期独立于缓存 TTL 再检查一次
func (s *AuthService) VerifyOtp(ctx context.Context, slug, code, ip, userAgent string) (string, *models.User, error) {
	if slug == "" {
		return "", nil, response.Unauthorized("No pending login")
	}

	sess, err := s.OtpSessions.Find(ctx, slug)
	if err != nil {
		return "", nil, err
	}
	if sess == nil || sess.Expired(time.Now()) {
		return "", nil, response.Unauthorized("Login code expired, request a new one")
	}

	if !encrypt.VerifyPassword(sess.CodeHash, code) {
		return "", nil, response.Unauthorized("Incorrect login code")
	}

	user, err := s.Users.FindByEmail(ctx, sess.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, response.Unauthorized("Account no longer exists")
		}
		return "", nil, err
	}

	token := uuid.NewString()
	auth := &cache.AuthSession{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(cache.AuthSessionExpiry),
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.AuthSessions.Create(ctx, token, auth); err != nil {
		return "", nil, err
	}

	// 验证码会话一次性消费
	if err := s.OtpSessions.Delete(ctx, slug); err != nil {
		log.L.Warn("delete otp session error", zap.Error(err))
	}

	return token, user, nil
}

// Logout 无条件成功，会话不存在也一样
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.AuthSessions.Delete(ctx, token); err != nil {
		log.L.Warn("delete auth session error", zap.Error(err))
	}
	return nil
}

func (s *AuthService) SessionExpiry(ctx context.Context, token string) (*types.SessionExpiryResponse, error) {
	if token == "" {
		return nil, response.Validation("No session")
	}

	sess, err := s.AuthSessions.Find(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, response.Validation("No session")
	}

	return &types.SessionExpiryResponse{
		UserID:      sess.UserID,
		ExpiresAt:   sess.ExpiresAt,
		IsValidAuth: time.Now().Before(sess.ExpiresAt),
	}, nil
}
