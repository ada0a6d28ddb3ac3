package routes

import (
	"healthrocket-backend/handlers/chat"
	"healthrocket-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ChatRoutes(r *gin.Engine) {
	chatRoutes := r.Group("/chat")
	chatRoutes.Use(middleware.JWTAuth())
	{
		chatRoutes.GET("/messages", chat.GetRecentMessages)
		chatRoutes.POST("/messages", chat.SendMessage)
	}
}
