package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeOutbid      NotificationType = "outbid"
	NotificationTypeAuctionWon  NotificationType = "auction_won"
	NotificationTypeAuctionSold NotificationType = "auction_sold"
)

type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"` // Receiver
	User      User             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ListingID uint             `gorm:"not null;index" json:"listing_id"`
	Listing   Listing          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"listing"`
	Type      NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Reason    string           `gorm:"type:text" json:"reason"`
	IsRead    bool             `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
