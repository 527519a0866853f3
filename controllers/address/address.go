package addressControllers

import (
	"errors"
	"net/http"

	"github.com/aliroohan/TagHeuer-Backend/middleware"
	"github.com/aliroohan/TagHeuer-Backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddressInput struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	Region     string `json:"region"`
	Label      string `json:"label"`
}

func (in AddressInput) validate() error {
	if in.Name == "" || in.Address == "" || in.City == "" || in.PostalCode == "" ||
		in.Country == "" || in.Phone == "" || in.Region == "" {
		return errors.New("please provide all required fields")
	}
	return nil
}

// POST /api/address
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		address := models.Address{
			UserID:     middleware.UserID(c),
			Name:       input.Name,
			Address:    input.Address,
			City:       input.City,
			PostalCode: input.PostalCode,
			Country:    input.Country,
			Phone:      input.Phone,
			Region:     input.Region,
			Label:      input.Label,
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create address"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": address})
	}
}

// GET /api/address (admin)
func GetAllAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addresses []models.Address
		if err := db.Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(addresses), "data": addresses})
	}
}

// GET /api/address/user
func GetAddressesByUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addresses []models.Address
		if err := db.Where("user_id = ?", middleware.UserID(c)).Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(addresses), "data": addresses})
	}
}

// GET /api/address/:id
func GetAddressByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var address models.Address
		if err := db.First(&address, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Address not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": address})
	}
}

// PUT /api/address/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var address models.Address
		if err := db.First(&address, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Address not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch address"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		updates := map[string]interface{}{
			"name":        input.Name,
			"address":     input.Address,
			"city":        input.City,
			"postal_code": input.PostalCode,
			"country":     input.Country,
			"phone":       input.Phone,
			"region":      input.Region,
			"label":       input.Label,
		}
		if err := db.Model(&address).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": address})
	}
}

// DELETE /api/address/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Address{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
	}
}
