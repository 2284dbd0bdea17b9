package auctionerrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the store and service layers wraps exactly one of these.
var (
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication error")
	ErrAuthorization  = errors.New("authorization error")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrNoBids         = errors.New("no bids")
)

// Repository-level errors
var (
	ErrUserNotFound           = fmt.Errorf("user %w", ErrNotFound)
	ErrListingNotFound        = fmt.Errorf("listing %w", ErrNotFound)
	ErrWatchlistEntryNotFound = fmt.Errorf("watchlist entry %w", ErrNotFound)
	ErrNotificationNotFound   = fmt.Errorf("notification %w", ErrNotFound)
	ErrUsernameTaken          = fmt.Errorf("username already taken: %w", ErrConflict)
)

// business logic errors
var (
	ErrPasswordMismatch   = fmt.Errorf("passwords must match: %w", ErrValidation)
	ErrMissingCredentials = fmt.Errorf("username and password are required: %w", ErrValidation)
	ErrPasswordTooLong    = fmt.Errorf("password must be at most 72 bytes: %w", ErrValidation)
	ErrInvalidCredentials = fmt.Errorf("invalid username and/or password: %w", ErrAuthentication)
	ErrLoginRequired      = fmt.Errorf("login required: %w", ErrAuthorization)
	ErrNotSeller          = fmt.Errorf("only the seller may close this auction: %w", ErrAuthorization)
	ErrInvalidCategory    = fmt.Errorf("invalid category: %w", ErrValidation)
	ErrInvalidListing     = fmt.Errorf("invalid listing: %w", ErrValidation)
	ErrInvalidAmount      = fmt.Errorf("invalid amount: %w", ErrValidation)
	ErrBidTooLow          = fmt.Errorf("insufficient bid amount: %w", ErrValidation)
	ErrInvalidComment     = fmt.Errorf("invalid comment: %w", ErrValidation)
	ErrAuctionClosed      = fmt.Errorf("auction already closed: %w", ErrValidation)
	ErrAuctionHasNoBids   = fmt.Errorf("cannot close an auction without bids: %w", ErrNoBids)
)
