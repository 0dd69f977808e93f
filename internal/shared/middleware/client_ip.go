package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/shared/utils"
)

type clientIPKey struct{}

// ClientIPMiddleware extracts the client IP address and injects it into
// both the gin context and the request context.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)

		c.Set("client_ip", clientIP)
		ctx := context.WithValue(c.Request.Context(), clientIPKey{}, clientIP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetClientIP đọc IP đã extract, fallback extract lại nếu middleware chưa chạy
func GetClientIP(c *gin.Context) string {
	if ip := c.GetString("client_ip"); ip != "" {
		return ip
	}
	return utils.ExtractClientIP(c)
}

// GetClientIPFromContext retrieves the client IP from context
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}
