package orderControllers

import (
	"errors"
	"time"

	"github.com/aliroohan/TagHeuer-Backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidCheckout is returned when the checkout request is missing
// the user, the line list, or the total price.
var ErrInvalidCheckout = errors.New("please provide user, products, and total price")

// CheckoutLine mirrors one submitted order line. Price is the unit
// price the client captured when the line entered the cart.
type CheckoutLine struct {
	WatchID  uint    `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CheckoutRequest is the full checkout payload plus the authenticated
// user it belongs to.
type CheckoutRequest struct {
	UserID     uint
	Lines      []CheckoutLine
	TotalPrice float64
}

// generateOrderRef builds a unique human-facing order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout turns a cart snapshot into a durable order and reconciles
// the cart and the catalog behind it. The three writes — order create,
// cart prune, stock decrement — run sequentially with no transaction
// and no rollback: a failure after step 2 leaves the created order in
// place and the later stores in whatever state the completed steps
// produced. The submitted total is trusted as-is; lines are copied
// verbatim with no re-validation against live catalog price or stock.
func Checkout(db *gorm.DB, req CheckoutRequest) (models.Order, error) {
	if req.UserID == 0 || len(req.Lines) == 0 || req.TotalPrice == 0 {
		return models.Order{}, ErrInvalidCheckout
	}

	// Step 1: persist the order with the submitted lines.
	order := models.Order{
		OrderRef:   generateOrderRef(),
		UserID:     req.UserID,
		TotalPrice: req.TotalPrice,
		Status:     models.OrderStatusPending,
		CreatedAt:  time.Now(),
	}
	for _, line := range req.Lines {
		order.Items = append(order.Items, models.OrderItem{
			WatchID:  line.WatchID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	if err := db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}

	// Step 2: prune the cart. Every line whose watch was ordered is
	// dropped wholesale, whatever quantity it held; partial-quantity
	// checkout is not supported. Users with no cart skip this step.
	orderedIDs := make([]uint, 0, len(req.Lines))
	for _, line := range req.Lines {
		orderedIDs = append(orderedIDs, line.WatchID)
	}

	var cart models.Cart
	err := db.Where("user_id = ?", req.UserID).First(&cart).Error
	switch {
	case err == nil:
		if err := db.Where("cart_id = ? AND watch_id IN ?", cart.CartID, orderedIDs).
			Delete(&models.CartItem{}).Error; err != nil {
			return models.Order{}, err
		}
		var remaining []models.CartItem
		if err := db.Where("cart_id = ?", cart.CartID).Order("id").
			Find(&remaining).Error; err != nil {
			return models.Order{}, err
		}
		if err := db.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("total_price", models.CartTotal(remaining)).Error; err != nil {
			return models.Order{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no cart, nothing to prune
	default:
		return models.Order{}, err
	}

	// Step 3: decrement stock per ordered line. Watches that vanished
	// from the catalog are skipped silently; the decrement itself is
	// unconditional and can drive quantity-on-hand negative.
	for _, line := range req.Lines {
		var watch models.Watch
		if err := db.First(&watch, "id = ?", line.WatchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return models.Order{}, err
		}
		watch.Quantity -= line.Quantity
		if err := db.Save(&watch).Error; err != nil {
			return models.Order{}, err
		}
	}

	broadcastNewOrder(order)
	return order, nil
}
