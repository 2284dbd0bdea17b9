package repository

import (
	"auctions/internal/auctionerrors"
	"auctions/internal/models"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// MemoryStore is a concurrency-safe in-memory implementation of Store.
// It backs STORE_DRIVER=memory and the test suites.
type MemoryStore struct {
	mu            sync.RWMutex
	users         map[uint]models.User
	usernames     map[string]uint
	listings      map[uint]models.Listing
	bids          []models.Bid
	comments      []models.Comment
	watchlist     []models.Watchlist
	notifications []models.Notification
	lastID        map[string]uint
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[uint]models.User),
		usernames: make(map[string]uint),
		listings:  make(map[uint]models.Listing),
		lastID:    make(map[string]uint),
	}
}

func (s *MemoryStore) nextID(table string) uint {
	s.lastID[table]++
	return s.lastID[table]
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC()
	}
}

// withUsers fills Seller and Buyer. Callers must hold the lock.
func (s *MemoryStore) withUsers(l models.Listing) models.Listing {
	l.Seller = s.users[l.SellerID]
	if l.BuyerID != nil {
		buyer := s.users[*l.BuyerID]
		l.Buyer = &buyer
	} else {
		l.Buyer = nil
	}
	return l
}

// filterListings returns matching listings newest first. Callers must hold the lock.
func (s *MemoryStore) filterListings(match func(models.Listing) bool) []models.Listing {
	listings := make([]models.Listing, 0)
	for _, l := range s.listings {
		if match(l) {
			listings = append(listings, s.withUsers(l))
		}
	}
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].ID > listings[j].ID
		}
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return listings
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[user.Username]; taken {
		return fmt.Errorf("create user %s: %w", user.Username, auctionerrors.ErrUsernameTaken)
	}
	user.ID = s.nextID("users")
	stamp(&user.CreatedAt)
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *user
	s.usernames[user.Username] = user.ID
	return nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("get user %d: %w", id, auctionerrors.ErrUserNotFound)
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, fmt.Errorf("get user %s: %w", username, auctionerrors.ErrUserNotFound)
	}
	user := s.users[id]
	return &user, nil
}

func (s *MemoryStore) CreateListing(_ context.Context, listing *models.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[listing.SellerID]; !ok {
		return fmt.Errorf("create listing %q: %w", listing.Name, auctionerrors.ErrUserNotFound)
	}
	listing.ID = s.nextID("listings")
	stamp(&listing.CreatedAt)
	stored := *listing
	stored.Seller = models.User{}
	stored.Buyer = nil
	s.listings[listing.ID] = stored
	return nil
}

func (s *MemoryStore) GetListing(_ context.Context, id uint) (*models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[id]
	if !ok {
		return nil, fmt.Errorf("get listing %d: %w", id, auctionerrors.ErrListingNotFound)
	}
	listing = s.withUsers(listing)
	return &listing, nil
}

func (s *MemoryStore) ListActiveListings(_ context.Context) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterListings(func(l models.Listing) bool {
		return l.BuyerID == nil
	}), nil
}

func (s *MemoryStore) ListActiveListingsByCategory(_ context.Context, category models.Category) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterListings(func(l models.Listing) bool {
		return l.BuyerID == nil && l.Category == category
	}), nil
}

func (s *MemoryStore) ListSoldBySeller(_ context.Context, sellerID uint) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterListings(func(l models.Listing) bool {
		return l.SellerID == sellerID && l.BuyerID != nil
	}), nil
}

func (s *MemoryStore) ListPurchasedBy(_ context.Context, buyerID uint) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterListings(func(l models.Listing) bool {
		return l.BuyerID != nil && *l.BuyerID == buyerID
	}), nil
}

func (s *MemoryStore) CloseListing(_ context.Context, listingID, buyerID uint, salePrice decimal.Decimal, soldAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[listingID]
	if !ok {
		return fmt.Errorf("close listing %d: %w", listingID, auctionerrors.ErrListingNotFound)
	}
	if listing.BuyerID != nil {
		return fmt.Errorf("close listing %d: %w", listingID, auctionerrors.ErrAuctionClosed)
	}
	if _, ok := s.users[buyerID]; !ok {
		return fmt.Errorf("close listing %d: %w", listingID, auctionerrors.ErrUserNotFound)
	}

	listing.BuyerID = &buyerID
	listing.SalePrice = decimal.NewNullDecimal(salePrice)
	listing.DateSold = &soldAt
	s.listings[listingID] = listing
	return nil
}

func (s *MemoryStore) CreateBid(_ context.Context, bid *models.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[bid.ListingID]; !ok {
		return fmt.Errorf("record bid for listing %d: %w", bid.ListingID, auctionerrors.ErrListingNotFound)
	}
	bid.ID = s.nextID("bids")
	stamp(&bid.CreatedAt)
	s.bids = append(s.bids, *bid)
	return nil
}

func (s *MemoryStore) ListBids(_ context.Context, listingID uint) ([]models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := make([]models.Bid, 0)
	for _, b := range s.bids {
		if b.ListingID == listingID {
			bids = append(bids, b)
		}
	}
	return bids, nil
}

func (s *MemoryStore) CreateComment(_ context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[comment.ListingID]; !ok {
		return fmt.Errorf("create comment on listing %d: %w", comment.ListingID, auctionerrors.ErrListingNotFound)
	}
	comment.ID = s.nextID("comments")
	stamp(&comment.CreatedAt)
	stored := *comment
	stored.User = models.User{}
	s.comments = append(s.comments, stored)
	return nil
}

func (s *MemoryStore) ListComments(_ context.Context, listingID uint) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.ListingID == listingID {
			c.User = s.users[c.UserID]
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (s *MemoryStore) CreateWatchlistEntry(_ context.Context, entry *models.Watchlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[entry.ListingID]; !ok {
		return fmt.Errorf("add listing %d to watchlist of user %d: %w", entry.ListingID, entry.UserID, auctionerrors.ErrListingNotFound)
	}
	entry.ID = s.nextID("watchlists")
	stamp(&entry.CreatedAt)
	stored := *entry
	stored.Listing = models.Listing{}
	s.watchlist = append(s.watchlist, stored)
	return nil
}

func (s *MemoryStore) FindWatchlistEntry(_ context.Context, userID, listingID uint) (*models.Watchlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.watchlist {
		if e.UserID == userID && e.ListingID == listingID {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("find watchlist entry for listing %d: %w", listingID, auctionerrors.ErrWatchlistEntryNotFound)
}

func (s *MemoryStore) DeleteWatchlistEntry(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.watchlist {
		if e.ID == id {
			s.watchlist = append(s.watchlist[:i], s.watchlist[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete watchlist entry %d: %w", id, auctionerrors.ErrWatchlistEntryNotFound)
}

func (s *MemoryStore) ListWatchlist(_ context.Context, userID uint) ([]models.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]models.Listing, 0)
	for _, e := range s.watchlist {
		if e.UserID != userID {
			continue
		}
		if l, ok := s.listings[e.ListingID]; ok {
			listings = append(listings, s.withUsers(l))
		}
	}
	return listings, nil
}

func (s *MemoryStore) CreateNotification(_ context.Context, notification *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification.ID = s.nextID("notifications")
	stamp(&notification.CreatedAt)
	stored := *notification
	stored.Listing = models.Listing{}
	s.notifications = append(s.notifications, stored)
	return nil
}

func (s *MemoryStore) ListNotifications(_ context.Context, userID uint) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications := make([]models.Notification, 0)
	for i := len(s.notifications) - 1; i >= 0 && len(notifications) < notificationLimit; i-- {
		n := s.notifications[i]
		if n.UserID == userID {
			n.Listing = s.listings[n.ListingID]
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

func (s *MemoryStore) CountUnreadNotifications(_ context.Context, userID uint) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) MarkNotificationRead(_ context.Context, userID, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id && s.notifications[i].UserID == userID {
			s.notifications[i].IsRead = true
			return nil
		}
	}
	return fmt.Errorf("mark notification %d read: %w", id, auctionerrors.ErrNotificationNotFound)
}

func (s *MemoryStore) MarkAllNotificationsRead(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].UserID == userID {
			s.notifications[i].IsRead = true
		}
	}
	return nil
}
