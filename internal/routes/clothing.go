package routes

import (
	"github.com/CristianV1-A/idoe-projeto/internal/handlers"
	"github.com/gin-gonic/gin"
)

func RegisterClothingRoutes(r gin.IRouter) {
	items := r.Group("/clothing-items")
	{
		items.POST("", handlers.CreateClothingItem)
		items.GET("", handlers.ListClothingItems)
		items.GET("/:id", handlers.GetClothingItem)
	}
}
