package uow

import (
	"context"

	"github.com/cpspk/Caluracoin-NFT/internal/domain/custody"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/loan"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/settings"
)

// Repos bundles everything a lifecycle transition touches. Custody is part
// of the bundle so that ledger moves share the transaction: a failed
// transfer rolls back the loan mutation and vice versa.
type Repos struct {
	Loans    loan.Repository
	Settings settings.Repository
	Custody  custody.Gateway
}

type UnitOfWork interface {
	// WithinTx runs fn inside one transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. This is the
	// serialization point for all per-loan mutations: two operations on the
	// same loan never interleave.
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
