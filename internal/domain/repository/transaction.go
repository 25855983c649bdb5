package repository

import "context"

// TransactionManager defines the interface for running several repository writes atomically.
// This allows the use case layer to stage cross-collection changes without depending on a storage backend.
type TransactionManager interface {
	// Execute runs a function against repositories that read through a staged write set.
	// If the function returns an error, nothing is written. Otherwise all staged writes are applied at once.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one staged transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the transaction.
	UserRepo() UserRepository

	// RequestRepo returns a RecycleRequestRepository bound to the transaction.
	RequestRepo() RecycleRequestRepository

	// NotificationRepo returns a NotificationRepository bound to the transaction.
	NotificationRepo() NotificationRepository

	// InventoryRepo returns an InventoryRepository bound to the transaction.
	InventoryRepo() InventoryRepository

	// CartRepo returns a CartRepository bound to the transaction.
	CartRepo() CartRepository

	// OrderRepo returns an OrderRepository bound to the transaction.
	OrderRepo() OrderRepository
}
