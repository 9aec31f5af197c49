package server

import (
	"net/http"
	"strings"
	"time"

	"rewear/internal/auth"
	"rewear/services/exchange/helpers"
	"rewear/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequired validates the bearer token and resolves the actor
// identity once per request. Handlers receive the identity through the
// request context, never from ambient state.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": "missing or invalid authorization header",
				"error":   "access token required",
			})
			return
		}

		claims, err := auth.ValidateToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": "invalid or expired token",
				"error":   err.Error(),
			})
			return
		}

		c.Set(helpers.ActorIDKey, claims.UserID)
		c.Set(helpers.ActorRoleKey, claims.Role)
		c.Next()
	}
}
