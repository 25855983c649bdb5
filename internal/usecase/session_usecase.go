package usecase

import (
	"context"

	"recyclemart/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SessionUsecase is the gate every role-scoped operation consults.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.User, error)
	Logout(ctx context.Context) error
	// Current resolves the acting user; ErrUnauthenticated when nobody is logged in.
	Current(ctx context.Context) (*entity.Actor, error)
	// Require resolves the acting user and checks the role; ErrForbidden on mismatch.
	Require(ctx context.Context, roles ...entity.Role) (*entity.Actor, error)
}
