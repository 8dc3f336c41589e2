package handler

import (
	"net/http"
	"time"

	"notalx/config"
	"notalx/dao/cache"
	"notalx/middleware"
	"notalx/pkg/context"
	"notalx/pkg/jwt"
	"notalx/pkg/response"
	"notalx/service"
	"notalx/types"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const otpSendWindow = time.Minute

type Otp struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (h *Otp) RegisterRouter(r gin.IRouter) {
	g := r.Group("/otp")
	g.POST("/send", middleware.OtpRateLimit(otpSendWindow), context.Wrap(h.Send))
	g.POST("/verify", context.Wrap(h.Verify))
	g.DELETE("/invalidate", context.Wrap(h.Invalidate))
	g.GET("/expiry", context.Wrap(h.Expiry))
}

// Send 发送验证码并下发 OTP 会话 Cookie。
// 限流中间件已读过请求体，这里复用缓存的字节
func (h *Otp) Send(c *gin.Context) error {
	var req types.SendOtpRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return response.Validation("Email is required")
	}

	slug, err := h.AuthService.RequestOtp(c.Request.Context(), req.Email)
	if err != nil {
		return err
	}

	if err := h.setSessionCookie(c, middleware.CookieOtpSession, slug, jwt.TypeOtp, cache.OtpSessionExpiry); err != nil {
		return response.Internal("Failed to start login")
	}

	response.Success(c, gin.H{"message": "Login code sent"})
	return nil
}

// Verify 校验验证码，换发登录会话 Cookie
func (h *Otp) Verify(c *gin.Context) error {
	var req types.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("Code is required")
	}

	slug := h.cookieToken(c, middleware.CookieOtpSession, jwt.TypeOtp)
	if slug == "" {
		return response.Unauthorized("No pending login")
	}

	token, user, err := h.AuthService.VerifyOtp(
		c.Request.Context(), slug, req.Code, c.ClientIP(), c.Request.UserAgent(),
	)
	if err != nil {
		return err
	}

	if err := h.setSessionCookie(c, middleware.CookieAuthSession, token, jwt.TypeAuth, cache.AuthSessionExpiry); err != nil {
		return response.Internal("Failed to create session")
	}
	h.clearCookie(c, middleware.CookieOtpSession)

	response.Success(c, types.VerifyOtpResponse{User: types.ToUserInfo(user)})
	return nil
}

// Invalidate 注销。无会话也返回成功
func (h *Otp) Invalidate(c *gin.Context) error {
	token := h.cookieToken(c, middleware.CookieAuthSession, jwt.TypeAuth)
	if err := h.AuthService.Logout(c.Request.Context(), token); err != nil {
		return err
	}

	h.clearCookie(c, middleware.CookieAuthSession)
	response.Success(c, gin.H{"message": "Logged out"})
	return nil
}

func (h *Otp) Expiry(c *gin.Context) error {
	token := h.cookieToken(c, middleware.CookieAuthSession, jwt.TypeAuth)

	info, err := h.AuthService.SessionExpiry(c.Request.Context(), token)
	if err != nil {
		return err
	}

	response.Success(c, info)
	return nil
}

// cookieToken 解出 Cookie 里的不透明令牌，解不出返回空串
func (h *Otp) cookieToken(c *gin.Context, name, tokenType string) string {
	raw, err := c.Cookie(name)
	if err != nil || raw == "" {
		return ""
	}
	claims, err := jwt.ParseToken([]byte(h.Config.Jwt.Secret), tokenType, raw)
	if err != nil {
		return ""
	}
	return claims.Token
}

func (h *Otp) setSessionCookie(c *gin.Context, name, opaque, tokenType string, maxAge time.Duration) error {
	signed, err := jwt.GenerateToken([]byte(h.Config.Jwt.Secret), opaque, tokenType, maxAge)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, signed, int(maxAge.Seconds()), "/", "", !h.Config.Debug(), true)
	return nil
}

func (h *Otp) clearCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(name, "", -1, "/", "", !h.Config.Debug(), true)
}
