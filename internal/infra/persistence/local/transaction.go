package local

import (
	"context"
	"log/slog"
	"sync"

	domainerrors "recyclemart/internal/domain/errors"
	"recyclemart/internal/domain/repository"
	"recyclemart/internal/infra/persistence/kv"
)

// stagedTransactionManager implements the domain's TransactionManager with a kv write set.
type stagedTransactionManager struct {
	store  kv.Store
	logger *slog.Logger

	// Serializes transactions so two read-modify-write batches never interleave in one process.
	mu sync.Mutex
}

// stagedRepositoryFactory builds repositories that read and write through one write set.
type stagedRepositoryFactory struct {
	store  kv.Store
	logger *slog.Logger
}

// UserRepo returns a user repository bound to the transaction.
func (f *stagedRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.store, f.logger)
}

// RequestRepo returns a recycle request repository bound to the transaction.
func (f *stagedRepositoryFactory) RequestRepo() repository.RecycleRequestRepository {
	return NewRecycleRequestRepository(f.store, f.logger)
}

// NotificationRepo returns a notification repository bound to the transaction.
func (f *stagedRepositoryFactory) NotificationRepo() repository.NotificationRepository {
	return NewNotificationRepository(f.store, f.logger)
}

// InventoryRepo returns an inventory repository bound to the transaction.
func (f *stagedRepositoryFactory) InventoryRepo() repository.InventoryRepository {
	return NewInventoryRepository(f.store, f.logger)
}

// CartRepo returns a cart repository bound to the transaction.
func (f *stagedRepositoryFactory) CartRepo() repository.CartRepository {
	return NewCartRepository(f.store, f.logger)
}

// OrderRepo returns an order repository bound to the transaction.
func (f *stagedRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.store, f.logger)
}

// NewTransactionManager is the constructor for stagedTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(store kv.Store, logger *slog.Logger) repository.TransactionManager {
	return &stagedTransactionManager{store: store, logger: logger}
}

// Execute runs fn against a fresh write set and commits it with one batch when fn succeeds.
func (tm *stagedTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	staged := kv.NewStaged(tm.store)
	factory := &stagedRepositoryFactory{store: staged, logger: tm.logger}

	if err := fn(factory); err != nil {
		// Nothing was written; dropping the write set is the rollback.
		return err
	}

	if err := staged.Commit(ctx); err != nil {
		return domainerrors.NewStorageExecuteError(err, "commit transaction")
	}

	return nil
}
