package middleware

import (
	"CreatorHub/internal/pkg/consts"
	"CreatorHub/internal/pkg/redis"
	"CreatorHub/internal/pkg/response"
	"CreatorHub/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 验证托管身份服务签发的会话令牌并注入用户标识
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		// 注销名单检查
		value, err := redis.GetValue(c.Request.Context(), consts.SessionRevokedKey+signature)
		if err != nil {
			response.Fail(c, response.InternalServerError, "未知错误")
			c.Abort()
			return
		}
		if value != "" {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		claims, err := security.ValidateSession(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.Subject)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
