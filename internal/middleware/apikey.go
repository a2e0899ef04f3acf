package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyAuth rejects any request whose x-api-key header does not match the
// configured key.
func APIKeyAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-api-key")
		if key == "" || key != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
