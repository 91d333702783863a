package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// It lets the usecase layer group writes atomically without depending on a
// specific DB driver.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the
	// function returns an error the transaction is rolled back, otherwise
	// it is committed. All repositories obtained from the factory share
	// the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// WarrantyRepo returns a WarrantyRepository bound to the current transaction.
	WarrantyRepo() WarrantyRepository

	// RefreshTokenRepo returns a RefreshTokenRepository bound to the current transaction.
	RefreshTokenRepo() RefreshTokenRepository
}
