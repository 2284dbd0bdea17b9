package services

import (
	"auctions/internal/auctionerrors"
	"auctions/internal/models"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ListingInput 创建拍品表单
type ListingInput struct {
	Name         string
	InitialPrice decimal.Decimal
	Description  string
	Image        string
	Category     models.Category
}

// ListingDetail is everything the listing page shows.
type ListingDetail struct {
	Listing    *models.Listing
	Comments   []models.Comment
	Watching   bool
	HighestBid *models.Bid
	BidCount   int
	MinNextBid decimal.Decimal
}

// CurrentPrice is the highest bid, or the initial price when nobody has bid.
func (d *ListingDetail) CurrentPrice() decimal.Decimal {
	if d.HighestBid != nil {
		return d.HighestBid.Amount
	}
	return d.Listing.InitialPrice
}

func validateListing(in *ListingInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = strings.TrimSpace(in.Image)

	if in.Name == "" {
		return fmt.Errorf("name is required: %w", auctionerrors.ErrInvalidListing)
	}
	if utf8.RuneCountInString(in.Name) > models.ListingNameMaxLen {
		return fmt.Errorf("name longer than %d characters: %w", models.ListingNameMaxLen, auctionerrors.ErrInvalidListing)
	}
	if utf8.RuneCountInString(in.Description) > models.ListingDescriptionMaxLen {
		return fmt.Errorf("description longer than %d characters: %w", models.ListingDescriptionMaxLen, auctionerrors.ErrInvalidListing)
	}
	if in.Image != "" {
		u, err := url.ParseRequestURI(in.Image)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("image must be an http(s) URL: %w", auctionerrors.ErrInvalidListing)
		}
	}
	if !in.Category.IsValid() {
		return fmt.Errorf("category %q: %w", in.Category, auctionerrors.ErrInvalidCategory)
	}
	return validateAmount(in.InitialPrice)
}

// CreateListing persists a new open listing owned by seller.
func (s *AuctionService) CreateListing(ctx context.Context, seller *models.User, in ListingInput) (*models.Listing, error) {
	if err := requireCaller(seller); err != nil {
		return nil, err
	}
	if err := validateListing(&in); err != nil {
		return nil, err
	}

	listing := models.Listing{
		Name:         in.Name,
		InitialPrice: in.InitialPrice,
		Description:  in.Description,
		Image:        in.Image,
		Category:     in.Category,
		CreatedAt:    s.now(),
		SellerID:     seller.ID,
	}
	if err := s.store.CreateListing(ctx, &listing); err != nil {
		return nil, fmt.Errorf("service: create listing for user %d: %w", seller.ID, err)
	}
	listing.Seller = *seller
	return &listing, nil
}

// GetListingDetail loads a listing with its comments, bid summary and the viewer's watch state.
// viewer may be nil.
func (s *AuctionService) GetListingDetail(ctx context.Context, viewer *models.User, listingID uint) (*ListingDetail, error) {
	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: get listing %d: %w", listingID, err)
	}

	comments, err := s.store.ListComments(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: list comments for listing %d: %w", listingID, err)
	}

	bids, err := s.store.ListBids(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: list bids for listing %d: %w", listingID, err)
	}

	detail := &ListingDetail{
		Listing:    listing,
		Comments:   comments,
		HighestBid: highestBid(bids),
		BidCount:   len(bids),
	}
	detail.MinNextBid = minNextBid(listing, detail.HighestBid)

	if viewer != nil {
		_, err := s.store.FindWatchlistEntry(ctx, viewer.ID, listingID)
		switch {
		case err == nil:
			detail.Watching = true
		case !errors.Is(err, auctionerrors.ErrNotFound):
			return nil, fmt.Errorf("service: check watchlist for listing %d: %w", listingID, err)
		}
	}
	return detail, nil
}

// ListActiveListings returns every listing that has no buyer yet.
func (s *AuctionService) ListActiveListings(ctx context.Context) ([]models.Listing, error) {
	listings, err := s.store.ListActiveListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return listings, nil
}

// ListByCategory returns active listings whose category matches exactly.
func (s *AuctionService) ListByCategory(ctx context.Context, category models.Category) ([]models.Listing, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("service: category %q: %w", category, auctionerrors.ErrInvalidCategory)
	}
	listings, err := s.store.ListActiveListingsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return listings, nil
}

// ListSales returns closed listings sold by user.
func (s *AuctionService) ListSales(ctx context.Context, user *models.User) ([]models.Listing, error) {
	if err := requireCaller(user); err != nil {
		return nil, err
	}
	listings, err := s.store.ListSoldBySeller(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return listings, nil
}

// ListPurchases returns listings won by user.
func (s *AuctionService) ListPurchases(ctx context.Context, user *models.User) ([]models.Listing, error) {
	if err := requireCaller(user); err != nil {
		return nil, err
	}
	listings, err := s.store.ListPurchasedBy(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return listings, nil
}
