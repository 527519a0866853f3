package watchControllers

import (
	"net/http"
	"strings"

	"github.com/aliroohan/TagHeuer-Backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SearchWatches finds watches whose name, reference or description
// contains the given value, case-insensitively. Plain database-level
// filtering, no ranking.
//
// GET /api/watches/search/:val
func SearchWatches(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pattern := "%" + strings.ToLower(c.Param("val")) + "%"

		var watches []models.Watch
		if err := db.
			Where("LOWER(name) LIKE ? OR LOWER(reference) LIKE ? OR LOWER(description) LIKE ?",
				pattern, pattern, pattern).
			Find(&watches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to search watches"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(watches), "data": watches})
	}
}

// GetWatchesByCategory matches the category column by case-insensitive
// substring.
//
// GET /api/watches/category/:category
func GetWatchesByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pattern := "%" + strings.ToLower(c.Param("category")) + "%"

		var watches []models.Watch
		if err := db.Where("LOWER(category) LIKE ?", pattern).Find(&watches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch watches"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(watches), "data": watches})
	}
}
