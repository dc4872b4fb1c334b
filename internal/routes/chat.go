package routes

import (
	"github.com/CristianV1-A/idoe-projeto/internal/handlers"
	"github.com/CristianV1-A/idoe-projeto/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(r gin.IRouter) {
	chats := r.Group("/chats")
	{
		chats.POST("", handlers.GetOrCreateChat)
		chats.GET("/user/:userId", handlers.ListChatsForUser)
	}

	messages := r.Group("/messages")
	{
		messages.POST("", middleware.MessageRateLimit(), handlers.SendMessage)
		messages.GET("/chat/:chatId", handlers.ListMessagesForChat)
	}
}
