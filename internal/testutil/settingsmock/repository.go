package settingsmock

import (
	"context"

	domain "github.com/cpspk/Caluracoin-NFT/internal/domain/settings"
)

// Repo satisfies settings.Repository; unset functions return the seed row so
// most tests don't need to care about global configuration.
type Repo struct {
	GetFn          func(ctx context.Context) (*domain.Parameters, error)
	SaveFn         func(ctx context.Context, p *domain.Parameters) error
	EnsureSeededFn func(ctx context.Context) error
}

func (m *Repo) Get(ctx context.Context) (*domain.Parameters, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return domain.Seed(), nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Parameters) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) EnsureSeeded(ctx context.Context) error {
	if m.EnsureSeededFn != nil {
		return m.EnsureSeededFn(ctx)
	}
	return nil
}
