package routes

import (
	userControllers "github.com/aliroohan/TagHeuer-Backend/controllers/user"
	"github.com/aliroohan/TagHeuer-Backend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/api/users")
	{
		users.POST("/", userControllers.CreateUser(db))
		users.POST("/login", userControllers.LoginUser(db))
		users.POST("/adminLogin", userControllers.LoginAdmin(db))

		users.GET("/", middleware.ValidateToken, middleware.RequireAdmin, userControllers.GetAllUsers(db))
		users.GET("/:id", middleware.ValidateToken, middleware.RequireAdmin, userControllers.GetUserByID(db))
		users.PUT("/:id", middleware.ValidateToken, userControllers.UpdateUser(db))
		users.DELETE("/:id", middleware.ValidateToken, middleware.RequireAdmin, userControllers.DeleteUser(db))

		users.POST("/wishlist/:watchId", middleware.ValidateToken, userControllers.AddToWishlist(db))
		users.DELETE("/wishlist/:watchId", middleware.ValidateToken, userControllers.RemoveFromWishlist(db))
	}
}
