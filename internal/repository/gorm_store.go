package repository

import (
	"auctions/internal/auctionerrors"
	"auctions/internal/models"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notificationLimit caps how many notifications are loaded per user.
const notificationLimit = 50

// GormStore is the relational implementation of Store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// isDuplicateKey 判断是否为唯一约束冲突
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("create user %s: %w", user.Username, auctionerrors.ErrUsernameTaken)
		}
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}
	return nil
}

func (s *GormStore) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get user %d: %w", id, auctionerrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get user %s: %w", username, auctionerrors.ErrUserNotFound)
		}
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}
	return &user, nil
}

func (s *GormStore) CreateListing(ctx context.Context, listing *models.Listing) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(listing).Error; err != nil {
		return fmt.Errorf("create listing %q: %w", listing.Name, err)
	}
	return nil
}

func (s *GormStore) GetListing(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	err := s.db.WithContext(ctx).
		Preload("Seller").
		Preload("Buyer").
		First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get listing %d: %w", id, auctionerrors.ErrListingNotFound)
		}
		return nil, fmt.Errorf("get listing %d: %w", id, err)
	}
	return &listing, nil
}

func (s *GormStore) listListings(ctx context.Context, query string, args ...interface{}) ([]models.Listing, error) {
	var listings []models.Listing
	err := s.db.WithContext(ctx).
		Preload("Seller").
		Preload("Buyer").
		Where(query, args...).
		Order("created_at DESC, id DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *GormStore) ListActiveListings(ctx context.Context) ([]models.Listing, error) {
	listings, err := s.listListings(ctx, "buyer_id IS NULL")
	if err != nil {
		return nil, fmt.Errorf("list active listings: %w", err)
	}
	return listings, nil
}

func (s *GormStore) ListActiveListingsByCategory(ctx context.Context, category models.Category) ([]models.Listing, error) {
	listings, err := s.listListings(ctx, "buyer_id IS NULL AND category = ?", category)
	if err != nil {
		return nil, fmt.Errorf("list listings in category %q: %w", category, err)
	}
	return listings, nil
}

func (s *GormStore) ListSoldBySeller(ctx context.Context, sellerID uint) ([]models.Listing, error) {
	listings, err := s.listListings(ctx, "seller_id = ? AND buyer_id IS NOT NULL", sellerID)
	if err != nil {
		return nil, fmt.Errorf("list sales of user %d: %w", sellerID, err)
	}
	return listings, nil
}

func (s *GormStore) ListPurchasedBy(ctx context.Context, buyerID uint) ([]models.Listing, error) {
	listings, err := s.listListings(ctx, "buyer_id = ?", buyerID)
	if err != nil {
		return nil, fmt.Errorf("list purchases of user %d: %w", buyerID, err)
	}
	return listings, nil
}

// CloseListing sets the buyer only while the listing is still open, so a second close is rejected.
func (s *GormStore) CloseListing(ctx context.Context, listingID, buyerID uint, salePrice decimal.Decimal, soldAt time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ? AND buyer_id IS NULL", listingID).
		Updates(map[string]interface{}{
			"buyer_id":   buyerID,
			"sale_price": salePrice,
			"date_sold":  soldAt,
		})
	if result.Error != nil {
		return fmt.Errorf("close listing %d: %w", listingID, result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := s.GetListing(ctx, listingID); err != nil {
			return fmt.Errorf("close listing %d: %w", listingID, err)
		}
		return fmt.Errorf("close listing %d: %w", listingID, auctionerrors.ErrAuctionClosed)
	}
	return nil
}

func (s *GormStore) CreateBid(ctx context.Context, bid *models.Bid) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(bid).Error; err != nil {
		return fmt.Errorf("record bid for listing %d: %w", bid.ListingID, err)
	}
	return nil
}

func (s *GormStore) ListBids(ctx context.Context, listingID uint) ([]models.Bid, error) {
	var bids []models.Bid
	err := s.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at ASC, id ASC").
		Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("list bids for listing %d: %w", listingID, err)
	}
	return bids, nil
}

func (s *GormStore) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
		return fmt.Errorf("create comment on listing %d: %w", comment.ListingID, err)
	}
	return nil
}

func (s *GormStore) ListComments(ctx context.Context, listingID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("listing_id = ?", listingID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments for listing %d: %w", listingID, err)
	}
	return comments, nil
}

func (s *GormStore) CreateWatchlistEntry(ctx context.Context, entry *models.Watchlist) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(entry).Error; err != nil {
		return fmt.Errorf("add listing %d to watchlist of user %d: %w", entry.ListingID, entry.UserID, err)
	}
	return nil
}

func (s *GormStore) FindWatchlistEntry(ctx context.Context, userID, listingID uint) (*models.Watchlist, error) {
	var entry models.Watchlist
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Order("id ASC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find watchlist entry for listing %d: %w", listingID, auctionerrors.ErrWatchlistEntryNotFound)
		}
		return nil, fmt.Errorf("find watchlist entry for listing %d: %w", listingID, err)
	}
	return &entry, nil
}

func (s *GormStore) DeleteWatchlistEntry(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Watchlist{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete watchlist entry %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete watchlist entry %d: %w", id, auctionerrors.ErrWatchlistEntryNotFound)
	}
	return nil
}

func (s *GormStore) ListWatchlist(ctx context.Context, userID uint) ([]models.Listing, error) {
	var entries []models.Watchlist
	err := s.db.WithContext(ctx).
		Preload("Listing").
		Preload("Listing.Seller").
		Preload("Listing.Buyer").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list watchlist of user %d: %w", userID, err)
	}

	listings := make([]models.Listing, 0, len(entries))
	for _, e := range entries {
		listings = append(listings, e.Listing)
	}
	return listings, nil
}

func (s *GormStore) CreateNotification(ctx context.Context, notification *models.Notification) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(notification).Error; err != nil {
		return fmt.Errorf("create notification for user %d: %w", notification.UserID, err)
	}
	return nil
}

func (s *GormStore) ListNotifications(ctx context.Context, userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.WithContext(ctx).
		Preload("Listing").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(notificationLimit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("list notifications of user %d: %w", userID, err)
	}
	return notifications, nil
}

func (s *GormStore) CountUnreadNotifications(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count unread notifications of user %d: %w", userID, err)
	}
	return count, nil
}

func (s *GormStore) MarkNotificationRead(ctx context.Context, userID, id uint) error {
	result := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("mark notification %d read: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("mark notification %d read: %w", id, auctionerrors.ErrNotificationNotFound)
	}
	return nil
}

func (s *GormStore) MarkAllNotificationsRead(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("mark notifications of user %d read: %w", userID, err)
	}
	return nil
}
