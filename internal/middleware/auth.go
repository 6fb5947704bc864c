package middleware

import (
	"net/http"

	"github.com/agecare/companion-api/internal/observability"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIKeyAuth validates the X-API-Key header against the configured key.
// An empty configured key disables the check entirely.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader("X-API-Key")
		if provided != apiKey {
			observability.Logger().Warn("rejected request with bad API key",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			return
		}

		c.Next()
	}
}
