package custodymock

import (
	"context"

	"github.com/cpspk/Caluracoin-NFT/internal/domain/custody"
)

// CollateralMove records one TransferCollateral call.
type CollateralMove struct {
	From, To string
	Assets   []custody.Asset
}

// FundsMove records one TransferFunds call.
type FundsMove struct {
	Currency, From, To string
	Amount             uint64
}

// Gateway satisfies custody.Gateway and records every call. Override the
// Fn fields to inject failures.
type Gateway struct {
	TransferCollateralFn func(ctx context.Context, from, to string, assets []custody.Asset) error
	TransferFundsFn      func(ctx context.Context, currency, from, to string, amount uint64) error

	CollateralMoves []CollateralMove
	FundsMoves      []FundsMove
}

func (m *Gateway) TransferCollateral(ctx context.Context, from, to string, assets []custody.Asset) error {
	if m.TransferCollateralFn != nil {
		if err := m.TransferCollateralFn(ctx, from, to, assets); err != nil {
			return err
		}
	}
	m.CollateralMoves = append(m.CollateralMoves, CollateralMove{From: from, To: to, Assets: assets})
	return nil
}

func (m *Gateway) TransferFunds(ctx context.Context, currency, from, to string, amount uint64) error {
	if m.TransferFundsFn != nil {
		if err := m.TransferFundsFn(ctx, currency, from, to, amount); err != nil {
			return err
		}
	}
	m.FundsMoves = append(m.FundsMoves, FundsMove{Currency: currency, From: from, To: to, Amount: amount})
	return nil
}
