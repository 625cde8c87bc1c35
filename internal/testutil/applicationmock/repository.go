package applicationmock

import (
	"context"

	domain "loan-application-api/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// With no CreateFn set, Create hands out sequential IDs starting at 1.
type Repo struct {
	CreateFn func(ctx context.Context, a *domain.NewApplication) error

	next uint64
}

func (m *Repo) Create(ctx context.Context, a *domain.NewApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	m.next++
	a.ID = m.next
	return nil
}
