package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// corsMiddleware sets permissive CORS headers and answers preflights.
// The gateway sits behind the platform's own auth layer, so origin
// restriction happens there, not here.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
