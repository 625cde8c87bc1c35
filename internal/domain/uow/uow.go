package uow

import (
	"context"

	"loan-application-api/internal/domain/application"
	"loan-application-api/internal/domain/customer"
)

// Repos are bound to one transaction.
type Repos struct {
	Applications application.Repository
	Customers    customer.Repository
}

type UnitOfWork interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	// A transaction that cannot begin yields application.ErrStoreUnavailable.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
