package v1

import (
	"github.com/gin-gonic/gin"

	"caresma-server/internal/interfaces/httpserver/handlers"
)

func registerAssessmentRoutes(router gin.IRoutes, handler *handlers.AssessmentHandler) {
	router.POST("/assessments/analyze", handler.Analyze)
	router.GET("/assessments/:assessment_id", handler.Get)
	router.DELETE("/assessments/:assessment_id", handler.Delete)
}
