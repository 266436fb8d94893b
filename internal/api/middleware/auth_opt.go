package middleware

import (
	"CreatorHub/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入用户标识，失败或缺失则为空
// 用于报告导出这类既支持登录态又支持匿名访问的接口。
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Set("user_id", "")
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := security.ValidateSession(token)
		if err != nil {
			c.Set("user_id", "")
			c.Next()
			return
		}

		c.Set("user_id", claims.Subject)
		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.Subject)
		c.Request = c.Request.WithContext(newCtx)
		c.Next()
	}
}
