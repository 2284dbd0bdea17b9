package services

import (
	"auctions/internal/auctionerrors"
	"auctions/internal/models"
	"auctions/internal/utils"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// highestBid picks the winning bid: largest amount, then earliest CreatedAt, then lowest ID.
func highestBid(bids []models.Bid) *models.Bid {
	var best *models.Bid
	for i := range bids {
		b := &bids[i]
		switch {
		case best == nil:
			best = b
		case b.Amount.GreaterThan(best.Amount):
			best = b
		case b.Amount.Equal(best.Amount):
			if b.CreatedAt.Before(best.CreatedAt) || (b.CreatedAt.Equal(best.CreatedAt) && b.ID < best.ID) {
				best = b
			}
		}
	}
	return best
}

func minNextBid(listing *models.Listing, top *models.Bid) decimal.Decimal {
	if top != nil {
		return top.Amount.Add(MinIncrement)
	}
	return listing.InitialPrice.Add(MinIncrement)
}

// PlaceBid records a bid that beats the current price by at least MinIncrement.
// A bid equal to the minimum is accepted.
func (s *AuctionService) PlaceBid(ctx context.Context, bidder *models.User, listingID uint, amount decimal.Decimal) (*models.Bid, error) {
	if err := requireCaller(bidder); err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(listingID)
	defer unlock()

	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: bid on listing %d: %w", listingID, err)
	}
	if !listing.IsActive() {
		return nil, fmt.Errorf("service: bid on listing %d: %w", listingID, auctionerrors.ErrAuctionClosed)
	}

	bids, err := s.store.ListBids(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: list bids for listing %d: %w", listingID, err)
	}
	top := highestBid(bids)
	minimum := minNextBid(listing, top)
	if amount.LessThan(minimum) {
		return nil, fmt.Errorf("service: bid %s below minimum %s: %w", amount.StringFixed(2), minimum.StringFixed(2), auctionerrors.ErrBidTooLow)
	}

	bid := models.Bid{
		ListingID: listingID,
		UserID:    bidder.ID,
		Amount:    amount,
		CreatedAt: s.now(),
	}
	if err := s.store.CreateBid(ctx, &bid); err != nil {
		return nil, fmt.Errorf("service: record bid on listing %d by user %d: %w", listingID, bidder.ID, err)
	}
	bid.User = *bidder

	if top != nil && top.UserID != bidder.ID {
		s.notify(ctx, models.Notification{
			UserID:    top.UserID,
			ListingID: listingID,
			Type:      models.NotificationTypeOutbid,
			Reason:    fmt.Sprintf("Your bid of $%s on %q was outbid at $%s.", top.Amount.StringFixed(2), listing.Name, amount.StringFixed(2)),
		})
	}

	utils.Info("bid placed", map[string]any{
		"listing_id": listingID,
		"user_id":    bidder.ID,
		"amount":     amount.StringFixed(2),
	})
	return &bid, nil
}

// EndAuction closes a listing, selling it to the highest bidder.
func (s *AuctionService) EndAuction(ctx context.Context, caller *models.User, listingID uint) (*models.Listing, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(listingID)
	defer unlock()

	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: close listing %d: %w", listingID, err)
	}
	if s.sellerOnlyClose && listing.SellerID != caller.ID {
		return nil, fmt.Errorf("service: close listing %d by user %d: %w", listingID, caller.ID, auctionerrors.ErrNotSeller)
	}
	if !listing.IsActive() {
		return nil, fmt.Errorf("service: close listing %d: %w", listingID, auctionerrors.ErrAuctionClosed)
	}

	bids, err := s.store.ListBids(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: list bids for listing %d: %w", listingID, err)
	}
	winner := highestBid(bids)
	if winner == nil {
		return nil, fmt.Errorf("service: close listing %d: %w", listingID, auctionerrors.ErrAuctionHasNoBids)
	}

	soldAt := s.now()
	if err := s.store.CloseListing(ctx, listingID, winner.UserID, winner.Amount, soldAt); err != nil {
		return nil, fmt.Errorf("service: close listing %d: %w", listingID, err)
	}

	price := winner.Amount.StringFixed(2)
	s.notify(ctx, models.Notification{
		UserID:    winner.UserID,
		ListingID: listingID,
		Type:      models.NotificationTypeAuctionWon,
		Reason:    fmt.Sprintf("You won %q for $%s.", listing.Name, price),
	})
	s.notify(ctx, models.Notification{
		UserID:    listing.SellerID,
		ListingID: listingID,
		Type:      models.NotificationTypeAuctionSold,
		Reason:    fmt.Sprintf("%q sold for $%s.", listing.Name, price),
	})

	utils.Info("auction closed", map[string]any{
		"listing_id": listingID,
		"closed_by":  caller.ID,
		"buyer_id":   winner.UserID,
		"sale_price": price,
	})

	buyerID := winner.UserID
	listing.BuyerID = &buyerID
	listing.SalePrice = decimal.NewNullDecimal(winner.Amount)
	listing.DateSold = &soldAt
	return listing, nil
}

// CanClose reports whether user may end the auction on listing.
func (s *AuctionService) CanClose(user *models.User, listing *models.Listing) bool {
	if user == nil || !listing.IsActive() {
		return false
	}
	return !s.sellerOnlyClose || listing.SellerID == user.ID
}
