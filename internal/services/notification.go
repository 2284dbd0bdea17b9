package services

import (
	"auctions/internal/models"
	"auctions/internal/utils"
	"context"
	"fmt"
)

// notify stores a notification. A failure is logged and does not undo the bid or sale
// that triggered it.
func (s *AuctionService) notify(ctx context.Context, n models.Notification) {
	n.CreatedAt = s.now()
	if err := s.store.CreateNotification(ctx, &n); err != nil {
		utils.Error("failed to create notification", map[string]any{
			"user_id":    n.UserID,
			"listing_id": n.ListingID,
			"type":       n.Type,
			"error":      err.Error(),
		})
	}
}

// ListNotifications returns the newest notifications of user.
func (s *AuctionService) ListNotifications(ctx context.Context, user *models.User) ([]models.Notification, error) {
	if err := requireCaller(user); err != nil {
		return nil, err
	}
	notifications, err := s.store.ListNotifications(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return notifications, nil
}

// UnreadCount 未读通知数
func (s *AuctionService) UnreadCount(ctx context.Context, user *models.User) (int64, error) {
	if err := requireCaller(user); err != nil {
		return 0, err
	}
	count, err := s.store.CountUnreadNotifications(ctx, user.ID)
	if err != nil {
		return 0, fmt.Errorf("service: %w", err)
	}
	return count, nil
}

// MarkNotificationRead marks one of user's notifications as read.
func (s *AuctionService) MarkNotificationRead(ctx context.Context, user *models.User, id uint) error {
	if err := requireCaller(user); err != nil {
		return err
	}
	if err := s.store.MarkNotificationRead(ctx, user.ID, id); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}

// MarkAllNotificationsRead 全部标记已读
func (s *AuctionService) MarkAllNotificationsRead(ctx context.Context, user *models.User) error {
	if err := requireCaller(user); err != nil {
		return err
	}
	if err := s.store.MarkAllNotificationsRead(ctx, user.ID); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}
