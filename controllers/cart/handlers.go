package cartControllers

import (
	"errors"
	"net/http"

	"github.com/aliroohan/TagHeuer-Backend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CartLineRef struct {
	ProductID uint `json:"productId" binding:"required"`
}

type ReplaceCartInput struct {
	Products   []ReplaceLine `json:"products" binding:"required"`
	TotalPrice float64       `json:"total_price" binding:"required"`
}

// GET /api/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := LoadCart(db, middleware.UserID(c))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart not found for this user"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
	}
}

// POST /api/cart/user/product
func AddProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide productId and quantity"})
			return
		}

		cart, err := AddProduct(db, middleware.UserID(c), input.ProductID, input.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, ErrInsufficientStock):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Product does not exist"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to add item to cart"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
	}
}

// POST /api/cart/user/product/remove
func RemoveProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartLineRef
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide productId"})
			return
		}

		cart, err := RemoveProduct(db, middleware.UserID(c), input.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart not found for this user"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to remove item from cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
	}
}

// POST /api/cart/user/product/decrement
func DecrementProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartLineRef
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide productId"})
			return
		}

		cart, err := DecrementProduct(db, middleware.UserID(c), input.ProductID)
		if err != nil {
			switch {
			case errors.Is(err, ErrLineNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart not found for this user"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update cart item"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
	}
}

// DELETE /api/cart/user
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := ClearCart(db, middleware.UserID(c))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart not found for this user"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
	}
}

// POST /api/cart
func ReplaceCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReplaceCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide products and total price"})
			return
		}

		cart, err := ReplaceCart(db, middleware.UserID(c), input.Products, input.TotalPrice)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
	}
}
