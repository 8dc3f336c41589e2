package middleware

import (
	"net/http"
	"strings"
	"time"

	"notalx/pkg/response"
	"notalx/types"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var otpSendLog = cmap.New[time.Time]()

// OtpRateLimit 同一邮箱在窗口期内只允许发送一次验证码。
// 名额在发送成功后才占用，参数或账号错误不消耗
func OtpRateLimit(window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SendOtpRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			// 参数错误交给 handler 报
			c.Next()
			return
		}

		email := strings.TrimSpace(strings.ToLower(req.Email))
		now := time.Now()
		pruneOtpSendLog(now, window)

		if last, ok := otpSendLog.Get(email); ok && now.Sub(last) < window {
			response.Abort(c, http.StatusBadRequest, "Please wait before requesting another code")
			return
		}

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			otpSendLog.Set(email, now)
		}
	}
}

// 过期条目随访问清理，表不会无限增长
func pruneOtpSendLog(now time.Time, window time.Duration) {
	var stale []string
	otpSendLog.IterCb(func(email string, last time.Time) {
		if now.Sub(last) >= window {
			stale = append(stale, email)
		}
	})
	for _, email := range stale {
		otpSendLog.Remove(email)
	}
}
