package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"titleparser-backend/internal/parses"
	"titleparser-backend/internal/services/health"
	"titleparser-backend/internal/shared/config"
	"titleparser-backend/internal/shared/metrics"
	"titleparser-backend/internal/shared/server/middleware"
	"titleparser-backend/internal/shared/server/respond"
	"titleparser-backend/internal/submissions"
)

// Deps holds the handlers and services the router wires up.
type Deps struct {
	Parses *parses.Handler
	Recent *submissions.Handler
	Health *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.APIKeyAuth(cfg.APIKey),
		middleware.RateLimit(middleware.RateLimitRule{
			Rate:  cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		}, nil),
	)

	r.GET("/healthz", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	r.GET("/readyz", func(c *gin.Context) {
		ok, checks := deps.Health.Readiness(c.Request.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, gin.H{"ok": ok, "checks": checks})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/v1")
	deps.Parses.RegisterRoutes(api)
	api.GET("/recent", deps.Recent.Recent)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
