package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by staff
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the order
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	OrderRef   string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID     uint        `gorm:"not null;index" json:"user_id"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	TotalPrice float64     `json:"total_price"`
	Status     OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OrderItem is a line frozen at checkout time; never mutated afterward.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index" json:"order_id"`
	WatchID  uint    `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
