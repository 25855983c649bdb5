package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/domain/service"
	"recyclemart/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface on the stored session flags.
type sessionService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
	now         func() time.Time
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return loggerFrom(ctx, srv.logger)
}

// Login verifies the credentials, stamps lastLogin and writes the session flags.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, validationError("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	now := srv.now()
	user.LastLogin = &now
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, mapRepoError(err, "failed to record last login")
	}

	if err := srv.sessionRepo.Save(ctx, &repository.SessionFlags{
		LoggedIn: true,
		Email:    user.Email,
		Role:     user.Role,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to write session")
	}

	srv.log(ctx).Info("User logged in", slog.String("email", user.Email), slog.String("role", user.Role.String()))

	return user, nil
}

// Logout removes the session flags.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessionRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}

// Current resolves the acting user. The role always comes from the user record.
func (srv *sessionService) Current(ctx context.Context) (*entity.Actor, error) {
	flags, err := srv.sessionRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}
	if !flags.LoggedIn || flags.Email == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	user, err := srv.userRepo.FindByEmail(ctx, flags.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Session refers to a missing user", slog.String("email", flags.Email))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session user")
	}

	if flags.Role != user.Role {
		srv.log(ctx).Warn("Stored session role does not match the account, rewriting",
			slog.String("email", user.Email),
			slog.String("storedRole", flags.Role.String()),
			slog.String("role", user.Role.String()),
		)
		flags.Role = user.Role
		if err := srv.sessionRepo.Save(ctx, flags); err != nil {
			return nil, errors.Wrap(err, "failed to rewrite session role")
		}
	}

	return &entity.Actor{Email: user.Email, Role: user.Role}, nil
}

// Require resolves the acting user and checks it holds one of roles.
func (srv *sessionService) Require(ctx context.Context, roles ...entity.Role) (*entity.Actor, error) {
	actor, err := srv.Current(ctx)
	if err != nil {
		return nil, err
	}

	if len(roles) > 0 && !actor.Is(roles...) {
		return nil, domainerrors.ErrForbidden.WrapMessage("requires role " + strings.Join(entity.Roles(roles).ToStrings(), " or "))
	}

	return actor, nil
}
