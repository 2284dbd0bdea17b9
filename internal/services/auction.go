package services

import (
	"auctions/internal/auctionerrors"
	"auctions/internal/models"
	"auctions/internal/repository"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MinIncrement is the smallest step above the current price a new bid must reach.
var MinIncrement = decimal.New(1, -2)

// AuctionService implements every workflow of the auction site on top of a repository.Store.
// The caller identity is always passed explicitly; nil means anonymous.
type AuctionService struct {
	store           repository.Store
	locker          Locker
	sellerOnlyClose bool
	now             func() time.Time
}

// Option configures an AuctionService.
type Option func(*AuctionService)

// WithLocker serialises PlaceBid and EndAuction per listing.
func WithLocker(l Locker) Option {
	return func(s *AuctionService) {
		s.locker = l
	}
}

// WithSellerOnlyClose restricts EndAuction to the listing's seller.
func WithSellerOnlyClose(enabled bool) Option {
	return func(s *AuctionService) {
		s.sellerOnlyClose = enabled
	}
}

// WithClock overrides the time source used for CreatedAt and DateSold.
func WithClock(now func() time.Time) Option {
	return func(s *AuctionService) {
		s.now = now
	}
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.Store, opts ...Option) *AuctionService {
	s := &AuctionService{
		store:  store,
		locker: NoopLocker{},
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func requireCaller(caller *models.User) error {
	if caller == nil || caller.ID == 0 {
		return auctionerrors.ErrLoginRequired
	}
	return nil
}

// MaxAmount is the largest price a decimal(12,2) column holds.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// amountPattern is the accepted form syntax: up to 10 integer digits and 2 decimals, no sign or exponent.
var amountPattern = regexp.MustCompile(`^\d{1,10}(\.\d{1,2})?$`)

// validateAmount accepts positive amounts up to MaxAmount with at most two fractional digits.
// The exponent is bounded first so later comparisons never rescale huge coefficients.
func validateAmount(amount decimal.Decimal) error {
	if exp := amount.Exponent(); exp < -12 || exp > 10 {
		return fmt.Errorf("amount out of range: %w", auctionerrors.ErrInvalidAmount)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", auctionerrors.ErrInvalidAmount)
	}
	if amount.GreaterThan(MaxAmount) {
		return fmt.Errorf("amount above %s: %w", MaxAmount.StringFixed(2), auctionerrors.ErrInvalidAmount)
	}
	if !amount.Equal(amount.Truncate(2)) {
		return fmt.Errorf("amount has more than two decimal places: %w", auctionerrors.ErrInvalidAmount)
	}
	return nil
}

// ParseAmount parses a form value such as "12.50" into a validated amount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if !amountPattern.MatchString(raw) {
		return decimal.Decimal{}, fmt.Errorf("parse amount: %w", auctionerrors.ErrInvalidAmount)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount: %w", auctionerrors.ErrInvalidAmount)
	}
	if err := validateAmount(amount); err != nil {
		return decimal.Decimal{}, err
	}
	return amount, nil
}
