package repository

import (
	"context"

	"recyclemart/internal/domain/entity"
)

// SessionFlags mirrors the stored login flags.
type SessionFlags struct {
	LoggedIn bool
	Email    string
	Role     entity.Role
}

// SessionRepository reads and writes the session flags.
type SessionRepository interface {
	// Load returns the stored flags; an absent session yields zero flags, not an error.
	Load(ctx context.Context) (*SessionFlags, error)

	// Save writes all flags.
	Save(ctx context.Context, flags *SessionFlags) error

	// Clear removes all flags.
	Clear(ctx context.Context) error
}
