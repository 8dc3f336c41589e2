package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"notalx/pkg/response"
	"notalx/types"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func otpTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/send", OtpRateLimit(time.Minute), handler)
	return r
}

func sendOtpReq(r *gin.Engine, ip, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = ip + ":52000"
	r.ServeHTTP(w, req)
	return w
}

func TestOtpRateLimitKeyedByEmail(t *testing.T) {
	r := otpTestRouter(func(c *gin.Context) {
		response.Success(c, gin.H{"message": "sent"})
	})

	// 同一来源不同邮箱互不影响
	assert.Equal(t, http.StatusOK, sendOtpReq(r, "10.0.0.1", `{"email":"keyed-alice@example.com"}`).Code)
	assert.Equal(t, http.StatusOK, sendOtpReq(r, "10.0.0.1", `{"email":"keyed-bob@example.com"}`).Code)

	// 同一邮箱换来源照样被限
	w := sendOtpReq(r, "10.0.0.2", `{"email":"keyed-alice@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please wait before requesting another code")

	// 大小写与空白归一
	w = sendOtpReq(r, "10.0.0.3", `{"email":" Keyed-Alice@Example.com "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOtpRateLimitConsumedOnlyOnSuccess(t *testing.T) {
	r := otpTestRouter(func(c *gin.Context) {
		var req types.SendOtpRequest
		_ = c.ShouldBindBodyWith(&req, binding.JSON)
		if req.Email == "consume-ghost@example.com" {
			response.Abort(c, http.StatusNotFound, "No account with this email")
			return
		}
		response.Success(c, gin.H{"message": "sent"})
	})

	// 发送失败不占名额，重试仍到达 handler
	w := sendOtpReq(r, "10.0.1.1", `{"email":"consume-ghost@example.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = sendOtpReq(r, "10.0.1.1", `{"email":"consume-ghost@example.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No account with this email")

	// 成功一次后同邮箱被限
	assert.Equal(t, http.StatusOK, sendOtpReq(r, "10.0.1.1", `{"email":"consume-carol@example.com"}`).Code)
	assert.Equal(t, http.StatusBadRequest, sendOtpReq(r, "10.0.1.1", `{"email":"consume-carol@example.com"}`).Code)
}

func TestOtpRateLimitPrunesStaleEntries(t *testing.T) {
	r := otpTestRouter(func(c *gin.Context) {
		response.Success(c, gin.H{"message": "sent"})
	})

	otpSendLog.Set("prune-stale@example.com", time.Now().Add(-2*time.Minute))

	// 任意一次访问都会顺手清掉窗口外的条目
	assert.Equal(t, http.StatusOK, sendOtpReq(r, "10.0.2.1", `{"email":"prune-dave@example.com"}`).Code)
	assert.False(t, otpSendLog.Has("prune-stale@example.com"))

	// 窗口外的邮箱可以重新发送
	otpSendLog.Set("prune-eve@example.com", time.Now().Add(-2*time.Minute))
	assert.Equal(t, http.StatusOK, sendOtpReq(r, "10.0.2.1", `{"email":"prune-eve@example.com"}`).Code)
}

func TestOtpRateLimitMalformedBodyPassesThrough(t *testing.T) {
	r := otpTestRouter(func(c *gin.Context) {
		var req types.SendOtpRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			response.Abort(c, http.StatusBadRequest, "Email is required")
			return
		}
		response.Success(c, gin.H{"message": "sent"})
	})

	w := sendOtpReq(r, "10.0.3.1", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email is required")
}
