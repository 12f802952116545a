package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quickbite/utils"
)

// AuthMiddleware ตรวจ Bearer token แล้วใส่ identity ลง context
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("isAdmin", claims.IsAdmin)
		c.Next()
	}
}

// RequireAdmin denies with 403 — distinct from the 401 of a missing token.
// Workflow services re-check the capability themselves; this gate only keeps
// obvious non-admin traffic off the admin routes.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.CurrentIsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "admin privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
