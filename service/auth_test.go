package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"notalx/dao/cache"
	"notalx/models"
	"notalx/pkg/encrypt"
	"notalx/pkg/response"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserFinder struct {
	users map[string]*models.User
}

func (f *fakeUserFinder) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeOtpMailer struct {
	codes []string
}

func (f *fakeOtpMailer) SendOtp(_ context.Context, _ string, code string) error {
	f.codes = append(f.codes, code)
	return nil
}

func newAuthFixture(t *testing.T, users map[string]*models.User) (*AuthService, *redis.Client, *fakeOtpMailer) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mailer := &fakeOtpMailer{}
	svc := &AuthService{
		Users:        &fakeUserFinder{users: users},
		OtpSessions:  cache.NewOtpSessionStorage(rds),
		AuthSessions: cache.NewAuthSessionStorage(rds),
		Mailer:       mailer,
	}
	return svc, rds, mailer
}

func redisKeys(t *testing.T, rds *redis.Client, pattern string) []string {
	t.Helper()
	keys, err := rds.Keys(context.Background(), pattern).Result()
	require.NoError(t, err)
	return keys
}

func TestRequestOtpUnknownEmail(t *testing.T) {
	svc, rds, mailer := newAuthFixture(t, map[string]*models.User{})

	_, err := svc.RequestOtp(context.Background(), "ghost@example.com")

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusNotFound, be.Code)

	// 不留会话、不发邮件
	assert.Empty(t, redisKeys(t, rds, "otp:session:*"))
	assert.Empty(t, mailer.codes)
}

func TestRequestOtpInvalidEmail(t *testing.T) {
	svc, rds, _ := newAuthFixture(t, map[string]*models.User{})

	_, err := svc.RequestOtp(context.Background(), "not-an-email")

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusBadRequest, be.Code)
	assert.Empty(t, redisKeys(t, rds, "otp:session:*"))
}

func TestVerifyOtpExpiredSession(t *testing.T) {
	alice := &models.User{ID: 1, Name: "alice", Email: "alice@example.com"}
	svc, rds, _ := newAuthFixture(t, map[string]*models.User{alice.Email: alice})

	// 验证码正确但会话已逻辑过期
	slug := uuid.NewString()
	require.NoError(t, svc.OtpSessions.Create(context.Background(), slug, &cache.OtpSession{
		Email:     alice.Email,
		CodeHash:  encrypt.HashPassword("123456"),
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, _, err := svc.VerifyOtp(context.Background(), slug, "123456", "10.0.0.1", "ua")

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusUnauthorized, be.Code)
	assert.Empty(t, redisKeys(t, rds, "auth:session:*"))
}

func TestVerifyOtpWrongCode(t *testing.T) {
	alice := &models.User{ID: 1, Name: "alice", Email: "alice@example.com"}
	svc, rds, _ := newAuthFixture(t, map[string]*models.User{alice.Email: alice})

	slug := uuid.NewString()
	require.NoError(t, svc.OtpSessions.Create(context.Background(), slug, &cache.OtpSession{
		Email:     alice.Email,
		CodeHash:  encrypt.HashPassword("123456"),
		ExpiresAt: time.Now().Add(cache.OtpSessionExpiry),
	}))

	_, _, err := svc.VerifyOtp(context.Background(), slug, "654321", "10.0.0.1", "ua")

	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, http.StatusUnauthorized, be.Code)
	assert.Empty(t, redisKeys(t, rds, "auth:session:*"))
}

func TestOtpLoginFlow(t *testing.T) {
	alice := &models.User{ID: 1, Name: "alice", Email: "alice@example.com"}
	svc, rds, mailer := newAuthFixture(t, map[string]*models.User{alice.Email: alice})
	ctx := context.Background()

	slug, err := svc.RequestOtp(ctx, "Alice@Example.com")
	require.NoError(t, err)
	require.Len(t, mailer.codes, 1)
	assert.Len(t, mailer.codes[0], 6)

	token, user, err := svc.VerifyOtp(ctx, slug, mailer.codes[0], "10.0.0.1", "ua")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)
	assert.NotEmpty(t, token)

	// 换发登录会话，验证码会话一次性消费
	assert.Len(t, redisKeys(t, rds, "auth:session:*"), 1)
	assert.Empty(t, redisKeys(t, rds, "otp:session:*"))

	// 会话可查、注销后消失
	info, err := svc.SessionExpiry(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, info.UserID)
	assert.True(t, info.IsValidAuth)

	require.NoError(t, svc.Logout(ctx, token))
	assert.Empty(t, redisKeys(t, rds, "auth:session:*"))
}
