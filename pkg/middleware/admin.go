package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware must run after AuthMiddleware so the role is already in the context.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
