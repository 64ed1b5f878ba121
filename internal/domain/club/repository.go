package club

import "context"

// Repository persists the whole aggregate as one snapshot under a fixed key.
// Load reports false when nothing has been saved yet.
type Repository interface {
	Load(ctx context.Context) (State, bool, error)
	Save(ctx context.Context, state State) error
}
