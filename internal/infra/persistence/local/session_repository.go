package local

import (
	"context"

	"recyclemart/internal/domain/entity"
	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/infra/persistence/kv"
)

const loggedInFlag = "true"

// sessionRepository implements repository.SessionRepository with three plain-string flags.
type sessionRepository struct {
	store kv.Store
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(store kv.Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

// Load reads the flags; missing flags stay zero.
func (repo *sessionRepository) Load(ctx context.Context) (*repository.SessionFlags, error) {
	flags := &repository.SessionFlags{}

	loggedIn, _, err := repo.store.Get(ctx, KeyIsLoggedIn)
	if err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "read session")
	}
	email, _, err := repo.store.Get(ctx, KeyUserEmail)
	if err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "read session")
	}
	role, _, err := repo.store.Get(ctx, KeyUserRole)
	if err != nil {
		return nil, domainerrors.NewStorageExecuteError(err, "read session")
	}

	flags.LoggedIn = loggedIn == loggedInFlag
	flags.Email = email
	flags.Role = entity.Role(role)

	return flags, nil
}

// Save writes all three flags in one batch.
func (repo *sessionRepository) Save(ctx context.Context, flags *repository.SessionFlags) error {
	mutations := []kv.Mutation{
		kv.Put(KeyUserEmail, flags.Email),
		kv.Put(KeyUserRole, string(flags.Role)),
	}
	if flags.LoggedIn {
		mutations = append(mutations, kv.Put(KeyIsLoggedIn, loggedInFlag))
	} else {
		mutations = append(mutations, kv.Delete(KeyIsLoggedIn))
	}

	if err := repo.store.Apply(ctx, mutations); err != nil {
		return domainerrors.NewStorageExecuteError(err, "write session")
	}

	return nil
}

// Clear removes every flag.
func (repo *sessionRepository) Clear(ctx context.Context) error {
	err := repo.store.Apply(ctx, []kv.Mutation{
		kv.Delete(KeyIsLoggedIn),
		kv.Delete(KeyUserEmail),
		kv.Delete(KeyUserRole),
	})
	if err != nil {
		return domainerrors.NewStorageExecuteError(err, "clear session")
	}

	return nil
}
