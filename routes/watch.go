package routes

import (
	watchControllers "github.com/aliroohan/TagHeuer-Backend/controllers/watch"
	"github.com/aliroohan/TagHeuer-Backend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupWatchRoutes(r *gin.Engine, db *gorm.DB) {
	watches := r.Group("/api/watches")
	{
		watches.GET("/", watchControllers.GetAllWatches(db))
		watches.GET("/search/:val", watchControllers.SearchWatches(db))
		watches.GET("/category/:category", watchControllers.GetWatchesByCategory(db))
		watches.GET("/export", middleware.ValidateToken, middleware.RequireAdmin, watchControllers.ExportWatchesToExcel(db))
		watches.GET("/:id", watchControllers.GetWatchByID(db))

		watches.POST("/", middleware.ValidateToken, middleware.RequireAdmin, watchControllers.CreateWatch(db))
		watches.PUT("/:id", middleware.ValidateToken, middleware.RequireAdmin, watchControllers.UpdateWatch(db))
		watches.DELETE("/:id", middleware.ValidateToken, middleware.RequireAdmin, watchControllers.DeleteWatch(db))
	}
}
