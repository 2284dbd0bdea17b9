package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bid struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ListingID uint            `gorm:"not null;index" json:"listing_id"`
	Listing   Listing         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	User      User            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
