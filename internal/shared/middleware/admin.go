package middleware

import (
	"github.com/gin-gonic/gin"

	"foodee-backend/internal/shared"
	"foodee-backend/internal/shared/response"
)

// AdminMiddleware checks if user has ROLE_ADMIN (chạy sau AuthMiddleware)
func AdminMiddleware() gin.HandlerFunc {
	return RequireRole(shared.RoleAdmin)
}

// RequireRole - 401 nếu chưa xác thực, 403 nếu thiếu role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}

		if !p.HasRole(role) {
			response.Forbidden(c, "Access denied: "+role+" required")
			c.Abort()
			return
		}

		c.Next()
	}
}
