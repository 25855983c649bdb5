// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no account has the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when creating an account whose email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by an exact, case-sensitive email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns every user ordered by email.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update replaces the stored record of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdateProfile merges the non-nil fields of update into the stored profile.
	UpdateProfile(ctx context.Context, email string, update entity.ProfileUpdate) (*entity.User, error)

	// AwardPoints adds delta to the user's points, clamped at zero, and returns the new total.
	AwardPoints(ctx context.Context, email string, delta int) (int, error)
}
