package middleware

import (
	"net/http"
	"strings"
	"time"

	"social_network/internal/pkg"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// TokenStore 会话 token 的读取与续期
type TokenStore interface {
	GetUserToken(usrID uint64) (string, error)
	ExtendUserToken(usrID uint64) error
}

// ActivityRecorder 记录用户最近一次请求时间
type ActivityRecorder interface {
	TouchLastRequest(id uint64, t time.Time) error
}

// ActivityMiddleware 挂在全局：能认出调用方就注入 user_id 并刷新活跃时间，
// 认不出就放行，不拦截任何请求。
func ActivityMiddleware(tokens TokenStore, users ActivityRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := pkg.ParseAccess(parts[1])
		if err != nil {
			c.Next()
			return
		}

		// redis 校验是否是当前有效会话的 token
		originToken, err := tokens.GetUserToken(claims.UserID)
		if err != nil || originToken != parts[1] {
			c.Next()
			return
		}

		_ = tokens.ExtendUserToken(claims.UserID)
		_ = users.TouchLastRequest(claims.UserID, time.Now())

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// AuthMiddleware 登录态守卫：要求 ActivityMiddleware 已经认出调用方
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(ContextUserIDKey); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
