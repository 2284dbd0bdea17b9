package services

import (
	"auctions/internal/auctionerrors"
	"auctions/internal/models"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// AddComment appends a comment to an open listing.
func (s *AuctionService) AddComment(ctx context.Context, author *models.User, listingID uint, content string) (*models.Comment, error) {
	if err := requireCaller(author); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("comment is empty: %w", auctionerrors.ErrInvalidComment)
	}
	if utf8.RuneCountInString(content) > models.CommentMaxLen {
		return nil, fmt.Errorf("comment longer than %d characters: %w", models.CommentMaxLen, auctionerrors.ErrInvalidComment)
	}

	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: comment on listing %d: %w", listingID, err)
	}
	if !listing.IsActive() {
		return nil, fmt.Errorf("service: comment on listing %d: %w", listingID, auctionerrors.ErrAuctionClosed)
	}

	comment := models.Comment{
		ListingID: listingID,
		UserID:    author.ID,
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.store.CreateComment(ctx, &comment); err != nil {
		return nil, fmt.Errorf("service: comment on listing %d by user %d: %w", listingID, author.ID, err)
	}
	comment.User = *author
	return &comment, nil
}
