package cartControllers

import (
	"errors"
	"time"

	"github.com/aliroohan/TagHeuer-Backend/models"
	"gorm.io/gorm"
)

var (
	// ErrInsufficientStock means the requested quantity exceeds the
	// watch's live quantity-on-hand.
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
	// ErrLineNotFound means the cart holds no line for the given watch.
	ErrLineNotFound = errors.New("product not found in cart")
)

// ReplaceLine is one line of a wholesale cart replacement.
type ReplaceLine struct {
	WatchID  uint    `json:"product" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"required"`
}

// LoadCart fetches a user's cart with its items in insertion order.
func LoadCart(db *gorm.DB, userID uint) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("cart_items.id")
	}).Where("user_id = ?", userID).First(&cart).Error
	return cart, err
}

// refreshTotal recomputes the cart total from its current lines and
// persists it. Invariant: total == Σ(line.price × line.quantity).
func refreshTotal(db *gorm.DB, userID uint) (models.Cart, error) {
	cart, err := LoadCart(db, userID)
	if err != nil {
		return models.Cart{}, err
	}
	cart.TotalPrice = models.CartTotal(cart.Items)
	if err := db.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
		Update("total_price", cart.TotalPrice).Error; err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// AddProduct adds quantity units of a watch to the user's cart, creating
// the cart lazily on first use. The stock check runs against the live
// catalog record, not against what the cart already holds. An existing
// line keeps the unit price captured when it was first added; only a
// brand-new line snapshots the current catalog price.
func AddProduct(db *gorm.DB, userID, watchID uint, quantity int) (models.Cart, error) {
	var watch models.Watch
	if err := db.First(&watch, "id = ?", watchID).Error; err != nil {
		return models.Cart{}, err
	}
	if quantity > watch.Quantity {
		return models.Cart{}, ErrInsufficientStock
	}

	var cart models.Cart
	if err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
		return models.Cart{}, err
	}

	var item models.CartItem
	err := db.Where("cart_id = ? AND watch_id = ?", cart.CartID, watchID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := db.Save(&item).Error; err != nil {
			return models.Cart{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			CartID:   cart.CartID,
			WatchID:  watchID,
			Quantity: quantity,
			Price:    watch.Price,
			AddedAt:  time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return models.Cart{}, err
		}
	default:
		return models.Cart{}, err
	}

	return refreshTotal(db, userID)
}

// RemoveProduct drops the line matching the watch id. Removing a watch
// that has no line is a no-op, not an error.
func RemoveProduct(db *gorm.DB, userID, watchID uint) (models.Cart, error) {
	cart, err := LoadCart(db, userID)
	if err != nil {
		return models.Cart{}, err
	}
	if err := db.Where("cart_id = ? AND watch_id = ?", cart.CartID, watchID).
		Delete(&models.CartItem{}).Error; err != nil {
		return models.Cart{}, err
	}
	return refreshTotal(db, userID)
}

// DecrementProduct lowers a line's quantity by exactly one; at zero the
// line is removed entirely.
func DecrementProduct(db *gorm.DB, userID, watchID uint) (models.Cart, error) {
	cart, err := LoadCart(db, userID)
	if err != nil {
		return models.Cart{}, err
	}

	var item models.CartItem
	if err := db.Where("cart_id = ? AND watch_id = ?", cart.CartID, watchID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{}, ErrLineNotFound
		}
		return models.Cart{}, err
	}

	item.Quantity--
	if item.Quantity <= 0 {
		if err := db.Delete(&item).Error; err != nil {
			return models.Cart{}, err
		}
	} else if err := db.Save(&item).Error; err != nil {
		return models.Cart{}, err
	}

	return refreshTotal(db, userID)
}

// ClearCart empties the cart and zeroes its total. Idempotent.
func ClearCart(db *gorm.DB, userID uint) (models.Cart, error) {
	cart, err := LoadCart(db, userID)
	if err != nil {
		return models.Cart{}, err
	}
	if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
		return models.Cart{}, err
	}
	return refreshTotal(db, userID)
}

// ReplaceCart swaps the whole line set and stores the caller-supplied
// total, creating the cart if the user has none yet.
func ReplaceCart(db *gorm.DB, userID uint, lines []ReplaceLine, totalPrice float64) (models.Cart, error) {
	var cart models.Cart
	if err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
		return models.Cart{}, err
	}
	if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
		return models.Cart{}, err
	}
	for _, line := range lines {
		item := models.CartItem{
			CartID:   cart.CartID,
			WatchID:  line.WatchID,
			Quantity: line.Quantity,
			Price:    line.Price,
			AddedAt:  time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return models.Cart{}, err
		}
	}
	if err := db.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
		Update("total_price", totalPrice).Error; err != nil {
		return models.Cart{}, err
	}
	return LoadCart(db, userID)
}
