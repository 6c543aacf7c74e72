// Package admin mutates the global lending parameters. Only the configured
// administrator account may call these; every change is persisted inside a
// transaction and announced to observers.
package admin

import (
	"context"

	"github.com/cpspk/Caluracoin-NFT/internal/domain/loan"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/settings"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/uow"
	"github.com/cpspk/Caluracoin-NFT/internal/notifier"
)

type Usecase struct {
	uow    uow.UnitOfWork
	admin  string
	notify notifier.Notifier
}

func NewUsecase(tx uow.UnitOfWork, admin string, n notifier.Notifier) *Usecase {
	if n == nil {
		n = notifier.Noop{}
	}
	return &Usecase{uow: tx, admin: admin, notify: n}
}

func (u *Usecase) set(ctx context.Context, caller, op string, apply func(p *settings.Parameters)) error {
	if caller != u.admin {
		return loan.ErrUnauthorized
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Settings.Get(ctx)
		if err != nil {
			return err
		}
		apply(p)
		return r.Settings.Save(ctx, p)
	})
	if err != nil {
		return err
	}
	u.notify.Emit(ctx, notifier.New(op, 0, caller, 0, nil))
	return nil
}

func (u *Usecase) SetLTV(ctx context.Context, caller string, value uint64) error {
	return u.set(ctx, caller, "set_ltv", func(p *settings.Parameters) { p.LTV = value })
}

func (u *Usecase) SetInterestRateToCompany(ctx context.Context, caller string, value uint64) error {
	if value > 100 {
		return loan.ErrInvalidTerms
	}
	return u.set(ctx, caller, "set_interest_rate_to_company", func(p *settings.Parameters) { p.InterestRateToCompany = value })
}

func (u *Usecase) SetInterestRateToLender(ctx context.Context, caller string, value uint64) error {
	if value > 100 {
		return loan.ErrInvalidTerms
	}
	return u.set(ctx, caller, "set_interest_rate_to_lender", func(p *settings.Parameters) { p.InterestRateToLender = value })
}

// Parameters returns the current global configuration.
func (u *Usecase) Parameters(ctx context.Context) (*settings.Parameters, error) {
	var out *settings.Parameters
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Settings.Get(ctx)
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	return out, err
}
