package v1

import (
	"github.com/gin-gonic/gin"

	"caresma-server/internal/interfaces/httpserver/handlers"
)

func registerAvatarRoutes(router gin.IRoutes, handler *handlers.AvatarHandler) {
	router.POST("/avatar/token", handler.CreateToken)
	router.GET("/avatar/sessions", handler.ListSessions)
	router.POST("/avatar/sessions/:avatar_session_id/stop", handler.StopSession)
}
