package routes

import (
	orderControllers "github.com/aliroohan/TagHeuer-Backend/controllers/order"
	"github.com/aliroohan/TagHeuer-Backend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	{
		// websocket feed of newly placed orders
		orders.GET("/ws", orderControllers.OrderFeedHandler)

		orders.POST("/", middleware.ValidateToken, orderControllers.CheckoutHandler(db))
		orders.GET("/", middleware.ValidateToken, middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(db))
		orders.GET("/user", middleware.ValidateToken, orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:orderID", middleware.ValidateToken, orderControllers.GetOrderByIDHandler(db))
		orders.PUT("/:orderID/status", middleware.ValidateToken, middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(db))
		orders.DELETE("/:orderID", middleware.ValidateToken, middleware.RequireAdmin, orderControllers.DeleteOrderHandler(db))
	}
}
