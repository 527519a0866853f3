package models

import (
	"time"

	"gorm.io/gorm"
)

type Watch struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null;uniqueIndex" json:"name"`
	Reference   string         `gorm:"not null" json:"reference"`
	Brand       string         `gorm:"not null" json:"brand"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Quantity    int            `json:"quantity"` // stock on hand
	Image       string         `json:"image"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
