package middleware

import (
	"github.com/gin-gonic/gin"

	"bookadmin-backend/internal/shared/response"
)

// AdminOnly checks if user has admin role (set by Auth).
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok || role != "admin" {
			response.Forbidden(c, "access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
