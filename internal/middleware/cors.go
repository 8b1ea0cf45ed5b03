package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cabeçalhos e métodos que esta API de fato usa.
const (
	corsHeaders = "Content-Type, Authorization, X-Request-ID"
	corsMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
)

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", corsHeaders)
			h.Set("Access-Control-Allow-Methods", corsMethods)
			h.Set("Access-Control-Expose-Headers", "X-Request-ID")
		}

		// 🔑 PRE-FLIGHT termina aqui
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent) // 204
			return
		}

		c.Next()
	}
}
