package repository

import (
	"auctions/internal/models"
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_repository.go -package=repository auctions/internal/repository Store

// Store defines the persistence interface of the auction site.
// Lookups of missing rows return errors wrapping auctionerrors.ErrNotFound.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	CreateListing(ctx context.Context, listing *models.Listing) error
	GetListing(ctx context.Context, id uint) (*models.Listing, error)
	ListActiveListings(ctx context.Context) ([]models.Listing, error)
	ListActiveListingsByCategory(ctx context.Context, category models.Category) ([]models.Listing, error)
	ListSoldBySeller(ctx context.Context, sellerID uint) ([]models.Listing, error)
	ListPurchasedBy(ctx context.Context, buyerID uint) ([]models.Listing, error)
	CloseListing(ctx context.Context, listingID, buyerID uint, salePrice decimal.Decimal, soldAt time.Time) error

	CreateBid(ctx context.Context, bid *models.Bid) error
	ListBids(ctx context.Context, listingID uint) ([]models.Bid, error)

	CreateComment(ctx context.Context, comment *models.Comment) error
	ListComments(ctx context.Context, listingID uint) ([]models.Comment, error)

	CreateWatchlistEntry(ctx context.Context, entry *models.Watchlist) error
	FindWatchlistEntry(ctx context.Context, userID, listingID uint) (*models.Watchlist, error)
	DeleteWatchlistEntry(ctx context.Context, id uint) error
	ListWatchlist(ctx context.Context, userID uint) ([]models.Listing, error)

	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListNotifications(ctx context.Context, userID uint) ([]models.Notification, error)
	CountUnreadNotifications(ctx context.Context, userID uint) (int64, error)
	MarkNotificationRead(ctx context.Context, userID, id uint) error
	MarkAllNotificationsRead(ctx context.Context, userID uint) error
}

var (
	_ Store = (*GormStore)(nil)
	_ Store = (*MemoryStore)(nil)
	_ Store = (*MockStore)(nil)
)
