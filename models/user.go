package models

import "time"

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	FirstName   string         `gorm:"not null" json:"first_name"`
	LastName    string         `gorm:"not null" json:"last_name"`
	Email       string         `gorm:"uniqueIndex;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"` // bcrypt hash, never serialised
	IsAdmin     bool           `json:"is_admin"`
	Terms       bool           `gorm:"default:true" json:"terms"`
	News        bool           `json:"news"`
	Phone       string         `json:"phone"`
	DateOfBirth *time.Time     `json:"date_of_birth,omitempty"`
	Country     string         `json:"country"`
	Wishlist    []WishlistItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"wishlist"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type WishlistItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"index;uniqueIndex:idx_user_watch" json:"user_id"`
	WatchID uint `gorm:"uniqueIndex:idx_user_watch" json:"watch_id"`
}
