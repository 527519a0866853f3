package routes

import (
	cartControllers "github.com/aliroohan/TagHeuer-Backend/controllers/cart"
	"github.com/aliroohan/TagHeuer-Backend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/api/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("/", cartControllers.GetUserCart(db))
		cart.POST("/", cartControllers.ReplaceCartHandler(db))
		cart.POST("/user/product", cartControllers.AddProductHandler(db))
		cart.POST("/user/product/remove", cartControllers.RemoveProductHandler(db))
		cart.POST("/user/product/decrement", cartControllers.DecrementProductHandler(db))
		cart.DELETE("/user", cartControllers.ClearCartHandler(db))
	}
}
