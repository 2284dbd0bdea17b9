package models

import (
	"time"
)

// Watchlist 用户关注的拍品。同一用户可以重复添加同一拍品。
type Watchlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ListingID uint      `gorm:"not null;index" json:"listing_id"`
	Listing   Listing   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"listing"`
	CreatedAt time.Time `json:"created_at"`
}
