package v1

import (
	"github.com/gin-gonic/gin"

	"caresma-server/internal/interfaces/httpserver/handlers"
)

func registerMessageRoutes(router gin.IRoutes, handler *handlers.MessageHandler) {
	// Message routes nested under threads
	router.POST("/threads/:thread_id/messages", handler.Create)
	router.GET("/threads/:thread_id/messages", handler.List)
	router.GET("/threads/:thread_id/messages/count", handler.Count)
}
