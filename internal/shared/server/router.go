package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/health"
	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/server/middleware"
	"resume-parser/internal/shared/telemetry"
)

const parseRateGroup = "PARSE"

// RouterDeps holds the handlers mounted by NewRouter.
type RouterDeps struct {
	Config        config.Config
	Health        *health.Service
	ResumeHandler *resumes.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// Without trusted proxies ClientIP is the socket peer, so X-Forwarded-For
	// cannot pick a rate-limit bucket.
	if err := r.SetTrustedProxies(deps.Config.TrustedProxies); err != nil {
		telemetry.Warn("router.trusted_proxies_invalid", map[string]any{"error": err})
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	if deps.Config.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(rateLimitConfig(deps.Config)))
	}

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}
	healthSvc.RegisterRoutes(r)
	r.GET("/metrics", metrics.Handler())
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(r)
	}

	return r
}

// rateLimitConfig throttles only résumé parsing; health and metrics stay open.
func rateLimitConfig(cfg config.Config) middleware.RateLimitConfig {
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			parseRateGroup: {Rate: cfg.RateLimitRPS, Burst: burst},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/resume" {
				return parseRateGroup
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
