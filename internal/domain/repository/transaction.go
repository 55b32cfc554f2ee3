package repository

import "context"

// TransactionManager runs work inside a single database transaction.
// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	ProfileRepo() ProfileRepository
}
