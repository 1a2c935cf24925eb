package middleware

import (
	"PromptLib/pkg/context"
	"PromptLib/pkg/jwt"
	"PromptLib/pkg/log"
	"PromptLib/pkg/response"
	stdctx "context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionCookie = "session"
	LoginPath     = "/login"
)

// SessionVerifier 校验会话 token
type SessionVerifier interface {
	Verify(ctx stdctx.Context, token string) (*jwt.Claims, error)
}

// SessionRequired 页面路由，无有效会话时跳转登录页
func SessionRequired(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authorize(c, verifier) {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// APISessionRequired 接口路由，无有效会话时返回 401
func APISessionRequired(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authorize(c, verifier) {
			response.Abort(c, http.StatusUnauthorized, "未登录或会话已过期")
			return
		}
		c.Next()
	}
}

func authorize(c *gin.Context, verifier SessionVerifier) bool {
	token := Token(c)
	if token == "" {
		return false
	}
	claims, err := verifier.Verify(c.Request.Context(), token)
	if err != nil {
		log.L.Debug("session rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
		return false
	}
	c.Set(context.CtxAdminID, claims.AdminID)
	c.Set(context.CtxSessionID, claims.SessionID)
	return true
}

// Token 优先取 cookie，其次 Authorization: Bearer
func Token(c *gin.Context) string {
	if v, err := c.Cookie(SessionCookie); err == nil && v != "" {
		return v
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
