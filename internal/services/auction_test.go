package services

import (
	"auctions/internal/auctionerrors"
	"auctions/internal/models"
	"auctions/internal/repository"
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// tickingClock returns strictly increasing timestamps so ordering is deterministic.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func newTestService(t *testing.T, opts ...Option) (*AuctionService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	opts = append([]Option{WithClock(tickingClock())}, opts...)
	return NewAuctionService(store, opts...), store
}

func register(t *testing.T, svc *AuctionService, username string) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), RegisterInput{
		Username:     username,
		Email:        username + "@example.com",
		Password:     "pw-" + username,
		Confirmation: "pw-" + username,
	})
	require.NoError(t, err)
	return user
}

func createListing(t *testing.T, svc *AuctionService, seller *models.User, name, price string) *models.Listing {
	t.Helper()
	listing, err := svc.CreateListing(context.Background(), seller, ListingInput{
		Name:         name,
		InitialPrice: dec(price),
	})
	require.NoError(t, err)
	return listing
}

func TestAuctionService_Register(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		input         RegisterInput
		expectedError error
	}{
		{name: "valid", input: RegisterInput{Username: "alice", Password: "pw", Confirmation: "pw"}},
		{name: "duplicate_username", input: RegisterInput{Username: "alice", Password: "pw", Confirmation: "pw"}, expectedError: auctionerrors.ErrConflict},
		{name: "password_mismatch", input: RegisterInput{Username: "bob", Password: "pw", Confirmation: "other"}, expectedError: auctionerrors.ErrPasswordMismatch},
		{name: "empty_username", input: RegisterInput{Username: "  ", Password: "pw", Confirmation: "pw"}, expectedError: auctionerrors.ErrMissingCredentials},
		{name: "empty_password", input: RegisterInput{Username: "carol"}, expectedError: auctionerrors.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := svc.Register(ctx, tc.input)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				require.Nil(t, user)
				return
			}
			require.NoError(t, err)
			require.NotZero(t, user.ID)
			require.NotEqual(t, tc.input.Password, user.Password)
		})
	}
}

func TestAuctionService_Login(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := register(t, svc, "alice")

	user, err := svc.Login(ctx, "alice", "pw-alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, user.ID)

	user, err = svc.Login(ctx, "  alice ", "pw-alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, user.ID)

	_, err = svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "pw-alice")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidCredentials)
	require.ErrorIs(t, err, auctionerrors.ErrAuthentication)
}

func TestAuctionService_CreateListing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	seller := register(t, svc, "seller")

	long := make([]rune, models.ListingNameMaxLen+1)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		name          string
		caller        *models.User
		input         ListingInput
		expectedError error
	}{
		{name: "valid", caller: seller, input: ListingInput{Name: "Chair", InitialPrice: dec("10.00"), Category: models.CategoryHomeKitchen, Image: "https://example.com/c.png"}},
		{name: "anonymous", caller: nil, input: ListingInput{Name: "Chair", InitialPrice: dec("10.00")}, expectedError: auctionerrors.ErrAuthorization},
		{name: "bad_category", caller: seller, input: ListingInput{Name: "Chair", InitialPrice: dec("10.00"), Category: "Books"}, expectedError: auctionerrors.ErrInvalidCategory},
		{name: "missing_name", caller: seller, input: ListingInput{Name: " ", InitialPrice: dec("10.00")}, expectedError: auctionerrors.ErrValidation},
		{name: "name_too_long", caller: seller, input: ListingInput{Name: string(long), InitialPrice: dec("10.00")}, expectedError: auctionerrors.ErrValidation},
		{name: "zero_price", caller: seller, input: ListingInput{Name: "Chair", InitialPrice: decimal.Zero}, expectedError: auctionerrors.ErrInvalidAmount},
		{name: "three_decimals", caller: seller, input: ListingInput{Name: "Chair", InitialPrice: dec("1.005")}, expectedError: auctionerrors.ErrInvalidAmount},
		{name: "bad_image", caller: seller, input: ListingInput{Name: "Chair", InitialPrice: dec("1.00"), Image: "javascript:alert(1)"}, expectedError: auctionerrors.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			listing, err := svc.CreateListing(ctx, tc.caller, tc.input)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.NotZero(t, listing.ID)
			require.True(t, listing.IsActive())
			require.Equal(t, seller.ID, listing.SellerID)
		})
	}
}

func TestAuctionService_MinNextBid(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	seller := register(t, svc, "seller")
	bidder := register(t, svc, "bidder")
	listing := createListing(t, svc, seller, "Lamp", "5.00")

	detail, err := svc.GetListingDetail(ctx, nil, listing.ID)
	require.NoError(t, err)
	require.Nil(t, detail.HighestBid)
	require.Zero(t, detail.BidCount)
	require.True(t, detail.MinNextBid.Equal(dec("5.01")))
	require.True(t, detail.CurrentPrice().Equal(dec("5.00")))

	for _, amount := range []string{"5.01", "7.50", "9.99"} {
		_, err := svc.PlaceBid(ctx, bidder, listing.ID, dec(amount))
		require.NoError(t, err)
	}

	detail, err = svc.GetListingDetail(ctx, bidder, listing.ID)
	require.NoError(t, err)
	require.Equal(t, 3, detail.BidCount)
	require.True(t, detail.HighestBid.Amount.Equal(dec("9.99")))
	require.True(t, detail.MinNextBid.Equal(dec("10.00")))
	require.False(t, detail.Watching)

	_, err = svc.GetListingDetail(ctx, nil, 999)
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}

func TestAuctionService_PlaceBid(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	seller := register(t, svc, "seller")
	bidder := register(t, svc, "bidder")
	listing := createListing(t, svc, seller, "Chair", "10.00")

	tests := []struct {
		name          string
		caller        *models.User
		listingID     uint
		amount        string
		expectedError error
	}{
		{name: "anonymous", caller: nil, listingID: listing.ID, amount: "11.00", expectedError: auctionerrors.ErrLoginRequired},
		{name: "equal_to_initial", caller: bidder, listingID: listing.ID, amount: "10.00", expectedError: auctionerrors.ErrBidTooLow},
		{name: "exact_minimum", caller: bidder, listingID: listing.ID, amount: "10.01"},
		{name: "repeat_same_amount", caller: bidder, listingID: listing.ID, amount: "10.01", expectedError: auctionerrors.ErrBidTooLow},
		{name: "one_cent_short", caller: seller, listingID: listing.ID, amount: "10.01", expectedError: auctionerrors.ErrValidation},
		{name: "next_minimum", caller: seller, listingID: listing.ID, amount: "10.02"},
		{name: "negative", caller: bidder, listingID: listing.ID, amount: "-1.00", expectedError: auctionerrors.ErrInvalidAmount},
		{name: "missing_listing", caller: bidder, listingID: 404, amount: "50.00", expectedError: auctionerrors.ErrListingNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bid, err := svc.PlaceBid(ctx, tc.caller, tc.listingID, dec(tc.amount))
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				require.Nil(t, bid)
				return
			}
			require.NoError(t, err)
			require.True(t, bid.Amount.Equal(dec(tc.amount)))
		})
	}
}

func TestAuctionService_OutbidNotification(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	seller := register(t, svc, "seller")
	alice := register(t, svc, "alice")
	bob := register(t, svc, "bob")
	listing := createListing(t, svc, seller, "Kite", "1.00")

	_, err := svc.PlaceBid(ctx, alice, listing.ID, dec("2.00"))
	require.NoError(t, err)
	_, err = svc.PlaceBid(ctx, alice, listing.ID, dec("3.00"))
	require.NoError(t, err)

	count, err := svc.UnreadCount(ctx, alice)
	require.NoError(t, err)
	require.Zero(t, count, "raising your own bid is not an outbid")

	_, err = svc.PlaceBid(ctx, bob, listing.ID, dec("4.00"))
	require.NoError(t, err)

	notifications, err := svc.ListNotifications(ctx, alice)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, models.NotificationTypeOutbid, notifications[0].Type)
	require.Contains(t, notifications[0].Reason, "4.00")

	require.NoError(t, svc.MarkNotificationRead(ctx, alice, notifications[0].ID))
	count, err = svc.UnreadCount(ctx, alice)
	require.NoError(t, err)
	require.Zero(t, count)

	require.ErrorIs(t, svc.MarkNotificationRead(ctx, bob, notifications[0].ID), auctionerrors.ErrNotFound)
}

func TestAuctionService_EndAuction(t *testing.T) {
	ctx := context.Background()

	t.Run("no_bids_leaves_listing_untouched", func(t *testing.T) {
		svc, _ := newTestService(t)
		seller := register(t, svc, "seller")
		listing := createListing(t, svc, seller, "Desk", "20.00")

		_, err := svc.EndAuction(ctx, seller, listing.ID)
		require.ErrorIs(t, err, auctionerrors.ErrNoBids)

		detail, err := svc.GetListingDetail(ctx, seller, listing.ID)
		require.NoError(t, err)
		require.True(t, detail.Listing.IsActive())
		require.False(t, detail.Listing.SalePrice.Valid)
		require.Nil(t, detail.Listing.DateSold)
	})

	t.Run("highest_bid_wins", func(t *testing.T) {
		svc, _ := newTestService(t)
		seller := register(t, svc, "seller")
		alice := register(t, svc, "alice")
		bob := register(t, svc, "bob")
		listing := createListing(t, svc, seller, "Desk", "20.00")

		_, err := svc.PlaceBid(ctx, alice, listing.ID, dec("21.00"))
		require.NoError(t, err)
		_, err = svc.PlaceBid(ctx, bob, listing.ID, dec("25.50"))
		require.NoError(t, err)

		closed, err := svc.EndAuction(ctx, alice, listing.ID)
		require.NoError(t, err)
		require.Equal(t, bob.ID, *closed.BuyerID)
		require.True(t, closed.SalePrice.Decimal.Equal(dec("25.50")))
		require.NotNil(t, closed.DateSold)

		_, err = svc.EndAuction(ctx, seller, listing.ID)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionClosed)

		_, err = svc.PlaceBid(ctx, alice, listing.ID, dec("30.00"))
		require.ErrorIs(t, err, auctionerrors.ErrAuctionClosed)

		_, err = svc.AddComment(ctx, alice, listing.ID, "too late")
		require.ErrorIs(t, err, auctionerrors.ErrAuctionClosed)

		won, err := svc.ListNotifications(ctx, bob)
		require.NoError(t, err)
		require.Equal(t, models.NotificationTypeAuctionWon, won[0].Type)

		sold, err := svc.ListNotifications(ctx, seller)
		require.NoError(t, err)
		require.Len(t, sold, 1)
		require.Equal(t, models.NotificationTypeAuctionSold, sold[0].Type)
	})

	t.Run("missing_listing", func(t *testing.T) {
		svc, _ := newTestService(t)
		user := register(t, svc, "user")
		_, err := svc.EndAuction(ctx, user, 12)
		require.ErrorIs(t, err, auctionerrors.ErrNotFound)

		_, err = svc.EndAuction(ctx, nil, 12)
		require.ErrorIs(t, err, auctionerrors.ErrLoginRequired)
	})

	t.Run("seller_only_close", func(t *testing.T) {
		svc, _ := newTestService(t, WithSellerOnlyClose(true))
		seller := register(t, svc, "seller")
		bidder := register(t, svc, "bidder")
		listing := createListing(t, svc, seller, "Desk", "20.00")
		_, err := svc.PlaceBid(ctx, bidder, listing.ID, dec("20.01"))
		require.NoError(t, err)

		_, err = svc.EndAuction(ctx, bidder, listing.ID)
		require.ErrorIs(t, err, auctionerrors.ErrNotSeller)
		require.ErrorIs(t, err, auctionerrors.ErrAuthorization)

		closed, err := svc.EndAuction(ctx, seller, listing.ID)
		require.NoError(t, err)
		require.Equal(t, bidder.ID, *closed.BuyerID)
	})
}

func TestHighestBidTieBreak(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		bids   []models.Bid
		wantID uint
	}{
		{name: "empty", bids: nil},
		{
			name: "largest_amount",
			bids: []models.Bid{
				{ID: 1, Amount: dec("5.00"), CreatedAt: base},
				{ID: 2, Amount: dec("7.00"), CreatedAt: base.Add(time.Minute)},
			},
			wantID: 2,
		},
		{
			name: "earliest_of_equal_amounts",
			bids: []models.Bid{
				{ID: 3, Amount: dec("7.00"), CreatedAt: base.Add(2 * time.Minute)},
				{ID: 4, Amount: dec("7.00"), CreatedAt: base.Add(time.Minute)},
			},
			wantID: 4,
		},
		{
			name: "lowest_id_on_same_timestamp",
			bids: []models.Bid{
				{ID: 9, Amount: dec("7.00"), CreatedAt: base},
				{ID: 8, Amount: dec("7.00"), CreatedAt: base},
			},
			wantID: 8,
		},
		{
			name: "decimal_equality_ignores_scale",
			bids: []models.Bid{
				{ID: 1, Amount: dec("7.0"), CreatedAt: base},
				{ID: 2, Amount: dec("7.00"), CreatedAt: base.Add(time.Second)},
			},
			wantID: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := highestBid(tc.bids)
			if tc.wantID == 0 {
				require.Nil(t, got)
				return
			}
			require.Equal(t, tc.wantID, got.ID)
		})
	}
}

func TestAuctionService_Comments(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	seller := register(t, svc, "seller")
	listing := createListing(t, svc, seller, "Book", "3.00")

	_, err := svc.AddComment(ctx, seller, listing.ID, "   ")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidComment)

	tooLong := make([]byte, models.CommentMaxLen+1)
	for i := range tooLong {
		tooLong[i] = 'a'
	}
	_, err = svc.AddComment(ctx, seller, listing.ID, string(tooLong))
	require.ErrorIs(t, err, auctionerrors.ErrValidation)

	_, err = svc.AddComment(ctx, nil, listing.ID, "hi")
	require.ErrorIs(t, err, auctionerrors.ErrLoginRequired)

	_, err = svc.AddComment(ctx, seller, 77, "hi")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.AddComment(ctx, seller, listing.ID, content)
		require.NoError(t, err)
	}

	detail, err := svc.GetListingDetail(ctx, nil, listing.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 3)
	require.Equal(t, "first", detail.Comments[0].Content)
	require.Equal(t, "third", detail.Comments[2].Content)
}

func TestAuctionService_Watchlist(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	user := register(t, svc, "watcher")
	listing := createListing(t, svc, user, "Radio", "15.00")

	err := svc.RemoveFromWatchlist(ctx, user, listing.ID)
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	require.NoError(t, svc.AddToWatchlist(ctx, user, listing.ID))
	require.NoError(t, svc.AddToWatchlist(ctx, user, listing.ID))
	require.ErrorIs(t, svc.AddToWatchlist(ctx, user, 500), auctionerrors.ErrNotFound)

	watched, err := svc.ListWatchlist(ctx, user)
	require.NoError(t, err)
	require.Len(t, watched, 2, "adding twice creates two entries")

	detail, err := svc.GetListingDetail(ctx, user, listing.ID)
	require.NoError(t, err)
	require.True(t, detail.Watching)

	require.NoError(t, svc.RemoveFromWatchlist(ctx, user, listing.ID))
	watched, err = svc.ListWatchlist(ctx, user)
	require.NoError(t, err)
	require.Len(t, watched, 1)

	require.NoError(t, svc.RemoveFromWatchlist(ctx, user, listing.ID))
	require.ErrorIs(t, svc.RemoveFromWatchlist(ctx, user, listing.ID), auctionerrors.ErrWatchlistEntryNotFound)

	_, err = svc.ListWatchlist(ctx, nil)
	require.ErrorIs(t, err, auctionerrors.ErrLoginRequired)
}

func TestAuctionService_ListingsAndHistory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	seller := register(t, svc, "seller")
	buyer := register(t, svc, "buyer")

	sold := createListing(t, svc, seller, "Sold", "1.00")
	_, err := svc.CreateListing(ctx, seller, ListingInput{Name: "Open book", InitialPrice: dec("2.00"), Category: models.CategoryBooks})
	require.NoError(t, err)

	_, err = svc.PlaceBid(ctx, buyer, sold.ID, dec("1.50"))
	require.NoError(t, err)
	_, err = svc.EndAuction(ctx, buyer, sold.ID)
	require.NoError(t, err)

	active, err := svc.ListActiveListings(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	for _, l := range active {
		require.Nil(t, l.BuyerID)
	}

	books, err := svc.ListByCategory(ctx, models.CategoryBooks)
	require.NoError(t, err)
	require.Len(t, books, 1)

	uncategorised, err := svc.ListByCategory(ctx, models.CategoryNone)
	require.NoError(t, err)
	require.Empty(t, uncategorised, "the sold listing is no longer active")

	_, err = svc.ListByCategory(ctx, "BOOKS")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidCategory)

	sales, err := svc.ListSales(ctx, seller)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.NotNil(t, sales[0].BuyerID)

	purchases, err := svc.ListPurchases(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	require.Equal(t, sold.ID, purchases[0].ID)

	none, err := svc.ListPurchases(ctx, seller)
	require.NoError(t, err)
	require.Empty(t, none)
}

// End-to-end flow: two users, one listing, a rejected repeat bid, then the close.
func TestAuctionService_ChairScenario(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a := register(t, svc, "a")
	b := register(t, svc, "b")
	chair := createListing(t, svc, a, "Chair", "10.00")

	_, err := svc.PlaceBid(ctx, b, chair.ID, dec("10.01"))
	require.NoError(t, err)

	_, err = svc.PlaceBid(ctx, b, chair.ID, dec("10.01"))
	require.ErrorIs(t, err, auctionerrors.ErrValidation)

	detail, err := svc.GetListingDetail(ctx, a, chair.ID)
	require.NoError(t, err)
	require.True(t, detail.MinNextBid.Equal(dec("10.02")))

	closed, err := svc.EndAuction(ctx, a, chair.ID)
	require.NoError(t, err)
	require.Equal(t, b.ID, *closed.BuyerID)
	require.Equal(t, "10.01", closed.SalePrice.Decimal.StringFixed(2))
}

func TestAuctionService_ConcurrentBidsWithLocking(t *testing.T) {
	svc, _ := newTestService(t, WithLocker(NewKeyedLocker()))
	ctx := context.Background()
	seller := register(t, svc, "seller")
	listing := createListing(t, svc, seller, "Vase", "1.00")

	const bidders = 20
	users := make([]*models.User, bidders)
	for i := range users {
		users[i] = register(t, svc, "bidder"+strconv.Itoa(i))
	}

	var wg sync.WaitGroup
	errs := make(chan error, bidders)
	for _, u := range users {
		wg.Add(1)
		go func(u *models.User) {
			defer wg.Done()
			_, err := svc.PlaceBid(ctx, u, listing.ID, dec("1.01"))
			errs <- err
		}(u)
	}
	wg.Wait()
	close(errs)

	accepted := 0
	for err := range errs {
		if err == nil {
			accepted++
			continue
		}
		require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)
	}
	require.Equal(t, 1, accepted, "only one bid may claim the same minimum")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "10", want: "10.00"},
		{raw: "10.5", want: "10.50"},
		{raw: "10.01", want: "10.01"},
		{raw: " 12.34 ", want: "12.34"},
		{raw: "9999999999.99", want: "9999999999.99"},
		{raw: "10.010", wantErr: true},
		{raw: "10.001", wantErr: true},
		{raw: "1e1", wantErr: true},
		{raw: "1e-20000000", wantErr: true},
		{raw: "1e20000000", wantErr: true},
		{raw: "99999999999", wantErr: true},
		{raw: "+5", wantErr: true},
		{raw: ".5", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "-5", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseAmount(tc.raw)
		if tc.wantErr {
			require.ErrorIs(t, err, auctionerrors.ErrInvalidAmount, tc.raw)
			continue
		}
		require.NoError(t, err, tc.raw)
		require.Equal(t, tc.want, got.StringFixed(2))
	}
}

func TestParseAmount_ErrorStaysShort(t *testing.T) {
	start := time.Now()
	_, err := ParseAmount("1e-20000000")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidAmount)
	require.Less(t, len(err.Error()), 100)
	require.Less(t, time.Since(start), time.Second)
}

func TestValidateAmountBounds(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{name: "max", amount: MaxAmount},
		{name: "trailing_zeros", amount: decimal.New(1000, -3)},
		{name: "above_max", amount: MaxAmount.Add(MinIncrement), wantErr: true},
		{name: "huge_exponent", amount: decimal.New(1, 20000000), wantErr: true},
		{name: "tiny_exponent", amount: decimal.New(1, -20000000), wantErr: true},
		{name: "zero_huge_exponent", amount: decimal.New(0, 20000000), wantErr: true},
	}

	for _, tc := range tests {
		err := validateAmount(tc.amount)
		if tc.wantErr {
			require.ErrorIs(t, err, auctionerrors.ErrInvalidAmount, tc.name)
			continue
		}
		require.NoError(t, err, tc.name)
	}
}
