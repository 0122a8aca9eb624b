package handler

import (
	"Blogicum/internal/middleware"

	"github.com/gin-gonic/gin"
)

// currentUserID 匿名访问返回 0
func currentUserID(c *gin.Context) uint64 {
	if v, ok := c.Get(middleware.ContextUserIDKey); ok {
		return v.(uint64)
	}
	return 0
}

func currentUsername(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextUsernameKey); ok {
		return v.(string)
	}
	return ""
}
