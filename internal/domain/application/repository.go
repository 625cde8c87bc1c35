package application

import "context"

type Repository interface {
	// Create inserts the root row and sets a.ID to the generated key.
	Create(ctx context.Context, a *NewApplication) error
}
