package local

import (
	"context"
	"log/slog"
	"sort"

	"recyclemart/internal/domain/entity"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/infra/persistence/kv"
	"recyclemart/internal/infra/persistence/model"
)

// userRepository implements repository.UserRepository on the "users" map.
type userRepository struct {
	collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store kv.Store, logger *slog.Logger) repository.UserRepository {
	return &userRepository{collection{store: store, logger: logger}}
}

func (repo *userRepository) loadAll(ctx context.Context) (map[string]*model.UserRecord, error) {
	users := make(map[string]*model.UserRecord)
	if err := repo.load(ctx, KeyUsers, &users); err != nil {
		return nil, err
	}

	for email, rec := range users {
		if rec == nil {
			delete(users, email)
		}
	}

	return users, nil
}

// FindByEmail retrieves a single user by exact email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := repo.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return model.ToUserDomain(email, rec), nil
}

// List returns every user ordered by email.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	users, err := repo.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(users))
	for email := range users {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	result := make([]*entity.User, 0, len(emails))
	for _, email := range emails {
		result = append(result, model.ToUserDomain(email, users[email]))
	}

	return result, nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	users, err := repo.loadAll(ctx)
	if err != nil {
		return err
	}

	if _, exists := users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	users[user.Email] = model.FromUserDomain(user)

	return repo.save(ctx, KeyUsers, users)
}

// Update replaces the stored record of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	users, err := repo.loadAll(ctx)
	if err != nil {
		return err
	}

	if _, exists := users[user.Email]; !exists {
		return repository.ErrUserNotFound
	}
	users[user.Email] = model.FromUserDomain(user)

	return repo.save(ctx, KeyUsers, users)
}

// UpdateProfile merges the provided profile fields.
func (repo *userRepository) UpdateProfile(ctx context.Context, email string, update entity.ProfileUpdate) (*entity.User, error) {
	users, err := repo.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	user := model.ToUserDomain(email, rec)
	update.Apply(&user.Profile)
	users[email] = model.FromUserDomain(user)

	if err := repo.save(ctx, KeyUsers, users); err != nil {
		return nil, err
	}

	return user, nil
}

// AwardPoints adds delta to the user's points, never going below zero.
func (repo *userRepository) AwardPoints(ctx context.Context, email string, delta int) (int, error) {
	users, err := repo.loadAll(ctx)
	if err != nil {
		return 0, err
	}

	rec, ok := users[email]
	if !ok {
		return 0, repository.ErrUserNotFound
	}

	user := model.ToUserDomain(email, rec)
	user.Profile.Points = user.Profile.AddPoints(delta)
	users[email] = model.FromUserDomain(user)

	if err := repo.save(ctx, KeyUsers, users); err != nil {
		return 0, err
	}

	return user.Profile.Points, nil
}
