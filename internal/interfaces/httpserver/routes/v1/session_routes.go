package v1

import (
	"github.com/gin-gonic/gin"

	"caresma-server/internal/interfaces/httpserver/handlers"
)

func registerSessionRoutes(router gin.IRoutes, handler *handlers.SessionHandler, assessmentHandler *handlers.AssessmentHandler) {
	router.POST("/sessions", handler.Create)
	router.GET("/sessions", handler.List)
	router.GET("/sessions/:session_id", handler.Get)
	router.PATCH("/sessions/:session_id", handler.Update)
	router.DELETE("/sessions/:session_id", handler.Delete)
	router.POST("/sessions/:session_id/end", handler.End)

	// Assessment listing nested under its session
	router.GET("/sessions/:session_id/assessments", assessmentHandler.ListBySession)
}
