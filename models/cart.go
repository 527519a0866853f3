package models

import "time"

type Cart struct {
	CartID     uint       `gorm:"primaryKey" json:"cart_id"`
	UserID     uint       `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice float64    `json:"total_price"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CartID   uint      `gorm:"index" json:"cart_id"`
	WatchID  uint      `json:"watch_id"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"` // unit price captured when the line was first added
	AddedAt  time.Time `json:"added_at"`
}

// CartTotal sums price*quantity over the given lines. Every cart mutation
// writes the result back to TotalPrice.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
