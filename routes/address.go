package routes

import (
	addressControllers "github.com/aliroohan/TagHeuer-Backend/controllers/address"
	"github.com/aliroohan/TagHeuer-Backend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupAddressRoutes(r *gin.Engine, db *gorm.DB) {
	address := r.Group("/api/address")
	address.Use(middleware.ValidateToken)
	{
		address.POST("/", addressControllers.CreateAddress(db))
		address.GET("/", middleware.RequireAdmin, addressControllers.GetAllAddresses(db))
		address.GET("/user", addressControllers.GetAddressesByUser(db))
		address.GET("/:id", addressControllers.GetAddressByID(db))
		address.PUT("/:id", addressControllers.UpdateAddress(db))
		address.DELETE("/:id", addressControllers.DeleteAddress(db))
	}
}
