package services

import (
	"auctions/internal/auctionerrors"
	"auctions/internal/models"
	"auctions/internal/utils"
	"context"
	"errors"
	"fmt"
	"strings"
)

// bcrypt ignores everything past 72 bytes
const maxPasswordBytes = 72

// RegisterInput 注册表单
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	Confirmation string
}

// Register creates a new account. The password is stored as a bcrypt hash.
func (s *AuctionService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if in.Password != in.Confirmation {
		return nil, auctionerrors.ErrPasswordMismatch
	}
	if username == "" || in.Password == "" {
		return nil, auctionerrors.ErrMissingCredentials
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, auctionerrors.ErrPasswordTooLong
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("service: hash password for %s: %w", username, err)
	}

	user := models.User{
		Username: username,
		Email:    strings.TrimSpace(in.Email),
		Password: hash,
	}
	if err := s.store.CreateUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("service: register %s: %w", username, err)
	}

	utils.Info("user registered", map[string]any{"user_id": user.ID, "username": user.Username})
	return &user, nil
}

// Login checks credentials. Unknown users and wrong passwords yield the same error.
func (s *AuctionService) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNotFound) {
			return nil, auctionerrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service: login %s: %w", username, err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, auctionerrors.ErrInvalidCredentials
	}
	return user, nil
}
