package userControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aliroohan/TagHeuer-Backend/middleware"
	"github.com/aliroohan/TagHeuer-Backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /api/users/wishlist/:watchId
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		watchID, err := strconv.Atoi(c.Param("watchId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid watch ID"})
			return
		}

		var watch models.Watch
		if err := db.First(&watch, "id = ?", watchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Watch not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch watch"})
			return
		}

		userID := middleware.UserID(c)
		item := models.WishlistItem{UserID: userID, WatchID: uint(watchID)}
		if err := db.Where(item).FirstOrCreate(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update wishlist"})
			return
		}

		var wishlist []models.WishlistItem
		if err := db.Where("user_id = ?", userID).Find(&wishlist).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": wishlist})
	}
}

// DELETE /api/users/wishlist/:watchId
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		watchID, err := strconv.Atoi(c.Param("watchId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid watch ID"})
			return
		}

		userID := middleware.UserID(c)
		result := db.Where("user_id = ? AND watch_id = ?", userID, watchID).
			Delete(&models.WishlistItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update wishlist"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Watch not in wishlist"})
			return
		}

		var wishlist []models.WishlistItem
		if err := db.Where("user_id = ?", userID).Find(&wishlist).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": wishlist})
	}
}
