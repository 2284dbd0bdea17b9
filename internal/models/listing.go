package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ListingNameMaxLen        = 60
	ListingDescriptionMaxLen = 120
)

type Listing struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	Name         string              `gorm:"size:60;not null" json:"name"`
	InitialPrice decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"initial_price"`
	SalePrice    decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"sale_price"`
	Description  string              `gorm:"size:120" json:"description"`
	Image        string              `json:"image"` // URL
	Category     Category            `gorm:"size:30;index" json:"category"`
	CreatedAt    time.Time           `json:"created_at"`
	DateSold     *time.Time          `json:"date_sold"`
	SellerID     uint                `gorm:"not null;index" json:"seller_id"`
	Seller       User                `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"seller"`
	BuyerID      *uint               `gorm:"index" json:"buyer_id"` // nil while the auction is open
	Buyer        *User               `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"buyer"`
}

// IsActive reports whether the listing is still open for bidding.
func (l *Listing) IsActive() bool {
	return l.BuyerID == nil
}
