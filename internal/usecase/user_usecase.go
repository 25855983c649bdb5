// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"recyclemart/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new customer.
type SignupInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
}

// ChangePasswordInput defines the data required to rotate the caller's password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// UserUsecase defines the interface for account and profile operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*entity.User, error)
	GetProfile(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, update entity.ProfileUpdate) (*entity.User, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	VerifyPassword(ctx context.Context, email, candidate string) (bool, error)
	AwardPoints(ctx context.Context, email string, delta int) (int, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	ListNotifications(ctx context.Context) ([]*entity.Notification, error)
	MarkNotificationsRead(ctx context.Context) (int, error)
}
