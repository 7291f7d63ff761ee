package v1

import (
	"github.com/gin-gonic/gin"

	"caresma-server/internal/infrastructure/auth"
	"caresma-server/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers  *handlers.Provider
	validator *auth.Validator
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider, validator *auth.Validator) *Routes {
	return &Routes{
		handlers:  handlerProvider,
		validator: validator,
	}
}

// Register attaches all v1 routes under /v1 prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/v1")
	group.Use(r.validator.Middleware())

	registerMessageRoutes(group, r.handlers.Message)
	registerSessionRoutes(group, r.handlers.Session, r.handlers.Assessment)
	registerAssessmentRoutes(group, r.handlers.Assessment)

	// Avatar routes (optional - only when an API key is configured)
	if r.handlers.Avatar != nil {
		registerAvatarRoutes(group, r.handlers.Avatar)
	}
}
