package routes

import (
	"github.com/CristianV1-A/idoe-projeto/internal/handlers"
	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		users.POST("", handlers.RegisterUser)
		users.GET("/:email", handlers.GetUserByEmail)
	}
}
