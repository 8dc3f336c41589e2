package middleware

import (
	"net/http"
	"time"

	"notalx/config"
	"notalx/dao"
	"notalx/dao/cache"
	pkgctx "notalx/pkg/context"
	"notalx/pkg/jwt"
	"notalx/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// CookieAuthSession 登录会话 Cookie
	CookieAuthSession = "s-tkn"
	// CookieOtpSession 验证码会话 Cookie
	CookieOtpSession = "pp-ses"
)

// Guard 请求闸门，在 handler 之前完成会话与资源权限判定
type Guard struct {
	Config        *config.Config
	Sessions      *cache.AuthSessionStorage
	Users         *dao.UserDAO
	Notes         *dao.NoteDAO
	Tasks         *dao.TaskDAO
	Collaborators *dao.CollaboratorDAO
	Participants  *dao.TaskParticipantDAO
}

// Auth 解析登录 Cookie 并装载会话，过期惰性判定
func (g *Guard) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(CookieAuthSession)
		if err != nil || raw == "" {
			response.Abort(c, http.StatusUnauthorized, "Not logged in")
			return
		}

		claims, err := jwt.ParseToken([]byte(g.Config.Jwt.Secret), jwt.TypeAuth, raw)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid session")
			return
		}

		sess, err := g.Sessions.Find(c.Request.Context(), claims.Token)
		if err != nil {
			response.Abort(c, http.StatusInternalServerError, "Session lookup failed")
			return
		}
		if sess == nil || sess.Expired(time.Now()) {
			response.Abort(c, http.StatusUnauthorized, "Session expired")
			return
		}

		c.Set(pkgctx.CtxUserID, sess.UserID)
		c.Set(pkgctx.CtxAuthToken, claims.Token)

		c.Next()
	}
}
