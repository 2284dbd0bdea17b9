package services

import (
	"auctions/internal/models"
	"context"
	"fmt"
)

// AddToWatchlist adds listing to user's watchlist. Repeated calls add repeated entries.
func (s *AuctionService) AddToWatchlist(ctx context.Context, user *models.User, listingID uint) error {
	if err := requireCaller(user); err != nil {
		return err
	}
	if _, err := s.store.GetListing(ctx, listingID); err != nil {
		return fmt.Errorf("service: watch listing %d: %w", listingID, err)
	}

	entry := models.Watchlist{
		UserID:    user.ID,
		ListingID: listingID,
		CreatedAt: s.now(),
	}
	if err := s.store.CreateWatchlistEntry(ctx, &entry); err != nil {
		return fmt.Errorf("service: watch listing %d: %w", listingID, err)
	}
	return nil
}

// RemoveFromWatchlist deletes the oldest entry matching user and listing.
func (s *AuctionService) RemoveFromWatchlist(ctx context.Context, user *models.User, listingID uint) error {
	if err := requireCaller(user); err != nil {
		return err
	}
	entry, err := s.store.FindWatchlistEntry(ctx, user.ID, listingID)
	if err != nil {
		return fmt.Errorf("service: unwatch listing %d: %w", listingID, err)
	}
	if err := s.store.DeleteWatchlistEntry(ctx, entry.ID); err != nil {
		return fmt.Errorf("service: unwatch listing %d: %w", listingID, err)
	}
	return nil
}

// ListWatchlist returns the listings on user's watchlist in the order they were added.
func (s *AuctionService) ListWatchlist(ctx context.Context, user *models.User) ([]models.Listing, error) {
	if err := requireCaller(user); err != nil {
		return nil, err
	}
	listings, err := s.store.ListWatchlist(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return listings, nil
}
