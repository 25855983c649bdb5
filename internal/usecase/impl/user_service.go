package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/domain/service"
	"recyclemart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	gate             usecase.SessionUsecase
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	txManager        repository.TransactionManager
	hasher           service.PasswordHasher
	validate         *validator.Validate
	logger           *slog.Logger
	now              func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Gate             usecase.SessionUsecase
	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	TxManager        repository.TransactionManager
	Hasher           service.PasswordHasher
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		gate:             params.Gate,
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		txManager:        params.TxManager,
		hasher:           params.Hasher,
		validate:         validator.New(),
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return loggerFrom(ctx, srv.logger)
}

// Signup registers a new customer account.
func (srv *userService) Signup(ctx context.Context, input usecase.SignupInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	if err := srv.validate.Var(email, "required,email"); err != nil {
		return nil, validationError("a valid email is required")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.WithStack(domainerrors.ErrPasswordStrength.WithDetails(err.Error()))
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		Profile: entity.Profile{
			FirstName:   strings.TrimSpace(input.FirstName),
			LastName:    strings.TrimSpace(input.LastName),
			PhoneNumber: strings.TrimSpace(input.PhoneNumber),
			Address:     strings.TrimSpace(input.Address),
		},
		CreatedAt: srv.now(),
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, mapRepoError(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.String("email", user.Email))

	return user, nil
}

// GetProfile returns an account. Customers and companies may only read their own.
func (srv *userService) GetProfile(ctx context.Context, email string) (*entity.User, error) {
	actor, err := srv.gate.Require(ctx)
	if err != nil {
		return nil, err
	}
	if email == "" {
		email = actor.Email
	}
	if email != actor.Email && actor.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot read another user's profile")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapRepoError(err, "failed to get profile")
	}

	return user, nil
}

// UpdateProfile merges a partial profile into the caller's account.
func (srv *userService) UpdateProfile(ctx context.Context, update entity.ProfileUpdate) (*entity.User, error) {
	actor, err := srv.gate.Require(ctx)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.UpdateProfile(ctx, actor.Email, update)
	if err != nil {
		return nil, mapRepoError(err, "failed to update profile")
	}

	return user, nil
}

// ChangePassword rotates the caller's password after checking the current one.
func (srv *userService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	actor, err := srv.gate.Require(ctx)
	if err != nil {
		return err
	}

	user, err := srv.userRepo.FindByEmail(ctx, actor.Email)
	if err != nil {
		return mapRepoError(err, "failed to load user")
	}
	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password does not match")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.WithStack(domainerrors.ErrPasswordStrength.WithDetails(err.Error()))
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return mapRepoError(err, "failed to store password")
	}

	srv.log(ctx).Info("Password changed", slog.String("email", user.Email))

	return nil
}

// VerifyPassword reports whether candidate matches the stored hash. Unknown users never match.
func (srv *userService) VerifyPassword(ctx context.Context, email, candidate string) (bool, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to load user")
	}

	return srv.hasher.Check(candidate, user.PasswordHash), nil
}

// AwardPoints adjusts a user's balance and notifies them. Admin only.
func (srv *userService) AwardPoints(ctx context.Context, email string, delta int) (int, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleAdmin); err != nil {
		return 0, err
	}

	var total int
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		var err error
		total, err = txRepoFactory.UserRepo().AwardPoints(ctx, email, delta)
		if err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}

		return txRepoFactory.NotificationRepo().Append(ctx, email, newNotification(
			entity.NotificationPointsAwarded,
			fmt.Sprintf("Your points balance changed by %+d, it is now %d", delta, total),
			srv.now(),
		))
	})
	if err != nil {
		return 0, mapRepoError(err, "failed to award points")
	}

	srv.log(ctx).Info("Points awarded", slog.String("email", email), slog.Int("delta", delta), slog.Int("total", total))

	return total, nil
}

// ListUsers returns every account. Admin only.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	if _, err := srv.gate.Require(ctx, entity.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// ListNotifications returns the caller's notifications.
func (srv *userService) ListNotifications(ctx context.Context) ([]*entity.Notification, error) {
	actor, err := srv.gate.Require(ctx)
	if err != nil {
		return nil, err
	}

	notifications, err := srv.notificationRepo.ListByOwner(ctx, actor.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkNotificationsRead flags every notification of the caller as read.
func (srv *userService) MarkNotificationsRead(ctx context.Context) (int, error) {
	actor, err := srv.gate.Require(ctx)
	if err != nil {
		return 0, err
	}

	changed, err := srv.notificationRepo.MarkAllRead(ctx, actor.Email)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	return changed, nil
}
