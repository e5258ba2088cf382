package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pubhouse-be/internal/auth"
)

const adminCtxKey = "admin_user"

// AdminGuard protects /admin/* routes: valid token required, and admin
// responses are never cached.
func AdminGuard(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		c.Header("Pragma", "no-cache")

		token := auth.ExtractAccessToken(c.Request)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := auth.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(adminCtxKey, claims.Username)
		c.Next()
	}
}

// AdminUser returns the authenticated admin username, if any.
func AdminUser(c *gin.Context) string {
	return c.GetString(adminCtxKey)
}
