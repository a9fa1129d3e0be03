package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"banquethall-backend/utils"
)

const (
	ContextAdminID  = "admin_id"
	ContextUsername = "admin_username"
)

// RequireAuth guards admin routes: it expects "Authorization: Bearer <jwt>"
// and puts the admin identity into the gin context. There is no refresh or
// revocation; a stale token is simply rejected and the client logs in again.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing token"})
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid token format"})
			return
		}

		claims, err := utils.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
