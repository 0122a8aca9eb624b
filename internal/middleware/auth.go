package middleware

import (
	"net/http"
	"strings"

	"Blogicum/internal/pkg"
	"Blogicum/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
	LoginPath          = "/auth/login"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// LoginRequired 登录态校验：缺失或无效一律重定向到登录入口，再由路由处理
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		// redis校验是否是当前会话的token，单点登录
		sessionRep := &redis.SessionRepository{}
		originToken, err := sessionRep.GetUserToken(claims.UserID)
		if err != nil || originToken != tokenStr {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		// 校验通过后更新过期时间
		if err = sessionRep.ExtendUserToken(claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// OptionalAuth 匿名可过；带了有效token就注入身份（文章详情/主页需要区分作者视角）
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		sessionRep := &redis.SessionRepository{}
		originToken, err := sessionRep.GetUserToken(claims.UserID)
		if err != nil || originToken != tokenStr {
			c.Next()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}
