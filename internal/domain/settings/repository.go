package settings

import "context"

type Repository interface {
	// Get returns the parameters row, ErrNotInitialized when missing.
	Get(ctx context.Context) (*Parameters, error)
	Save(ctx context.Context, p *Parameters) error
	// EnsureSeeded inserts the default row if none exists yet.
	EnsureSeeded(ctx context.Context) error
}
