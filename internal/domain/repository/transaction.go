// Package repository defines the persistence contracts of the domain layer.
// Concrete implementations live under internal/infra/persistence.
package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
type RepositoryFactory interface {
	CategoryRepo() CategoryRepository
	ProductRepo() ProductRepository
	WishlistRepo() WishlistRepository
	UserRepo() UserRepository
	CartRepo() CartRepository
	AddressRepo() AddressRepository
}

// TransactionManager runs a unit of work atomically: every repository obtained
// from the factory shares one transaction, and either all writes commit or
// none do.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
