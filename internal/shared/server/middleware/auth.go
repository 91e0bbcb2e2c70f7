package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"titleparser-backend/internal/shared/server/respond"
)

const apiKeyHeader = "X-Api-Key"

// APIKeyAuth rejects requests missing the configured API key. An empty
// configured key disables authentication entirely, matching a local
// deployment without secrets. Health, readiness and metrics endpoints are
// always reachable.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	key := []byte(strings.TrimSpace(apiKey))

	return func(c *gin.Context) {
		if len(key) == 0 {
			c.Next()
			return
		}
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		switch c.Request.URL.Path {
		case "/healthz", "/readyz", "/metrics":
			c.Next()
			return
		}

		presented := []byte(strings.TrimSpace(c.GetHeader(apiKeyHeader)))
		if len(presented) == 0 || subtle.ConstantTimeCompare(key, presented) != 1 {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Invalid API key", nil)
			return
		}
		c.Next()
	}
}
