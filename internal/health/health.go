package health

import (
	"github.com/gin-gonic/gin"

	"resume-parser/internal/shared/server/respond"
)

const greeting = "Hello World"

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Greeting returns the root liveness payload.
func (s *Service) Greeting() gin.H {
	return gin.H{"message": greeting}
}

// Status returns a simple health payload.
func (s *Service) Status() gin.H {
	return gin.H{"ok": true}
}

// RegisterRoutes attaches GET / and GET /healthz. Neither depends on other state.
func (s *Service) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/", func(c *gin.Context) {
		respond.OK(c, s.Greeting())
	})
	rg.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, s.Status())
	})
}
