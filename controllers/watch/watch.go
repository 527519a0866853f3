package watchControllers

import (
	"errors"
	"net/http"

	"github.com/aliroohan/TagHeuer-Backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WatchInput struct {
	Name        string  `json:"name"`
	Reference   string  `json:"reference"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
}

func (in WatchInput) validate() error {
	if in.Name == "" || in.Brand == "" || in.Price == 0 {
		return errors.New("missing required fields: name, brand, price")
	}
	return nil
}

// GET /api/watches
func GetAllWatches(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var watches []models.Watch
		if err := db.Find(&watches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch watches"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(watches), "data": watches})
	}
}

// GET /api/watches/:id
func GetWatchByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var watch models.Watch
		if err := db.First(&watch, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Watch not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch watch"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": watch})
	}
}

// POST /api/watches (admin)
func CreateWatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input WatchInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var existing models.Watch
		if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A watch with this name already exists"})
			return
		}

		watch := models.Watch{
			Name:        input.Name,
			Reference:   input.Reference,
			Brand:       input.Brand,
			Category:    input.Category,
			Description: input.Description,
			Price:       input.Price,
			Quantity:    input.Quantity,
			Image:       input.Image,
		}
		if err := db.Create(&watch).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create watch"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": watch})
	}
}

// PUT /api/watches/:id (admin)
func UpdateWatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input WatchInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var watch models.Watch
		if err := db.First(&watch, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Watch not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch watch"})
			return
		}

		var existing models.Watch
		if err := db.Where("name = ? AND id <> ?", input.Name, watch.ID).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A watch with this name already exists"})
			return
		}

		updates := map[string]interface{}{
			"name":        input.Name,
			"reference":   input.Reference,
			"brand":       input.Brand,
			"category":    input.Category,
			"description": input.Description,
			"price":       input.Price,
			"quantity":    input.Quantity,
			"image":       input.Image,
		}
		if err := db.Model(&watch).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update watch"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": watch})
	}
}

// DELETE /api/watches/:id (admin)
func DeleteWatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var watch models.Watch
		if err := db.First(&watch, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Watch not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch watch"})
			return
		}
		if err := db.Delete(&watch).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete watch"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"message": "Watch removed"}})
	}
}
