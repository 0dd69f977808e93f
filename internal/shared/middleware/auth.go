package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/shared"
	"foodee-backend/internal/shared/response"
	"foodee-backend/pkg/jwt"
)

const principalKey = "principal"

// TokenValidator - *jwt.Manager
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware - xác thực Bearer token và gắn Principal vào gin context
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(principalKey, shared.Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			Roles:    claims.Roles,
		})
		c.Set("userID", claims.UserID)

		c.Next()
	}
}

// GetPrincipal lấy Principal do AuthMiddleware set
func GetPrincipal(c *gin.Context) (shared.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return shared.Principal{}, false
	}
	p, ok := v.(shared.Principal)
	return p, ok
}

// MustPrincipal trả về Principal hoặc ghi 401 và return false
func MustPrincipal(c *gin.Context) (shared.Principal, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		response.HandleError(c, shared.ErrUnauthenticated)
		return shared.Principal{}, false
	}
	return p, true
}
