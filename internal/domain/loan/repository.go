package loan

import "context"

type Repository interface {
	// Create appends a new loan (with its collateral rows) and assigns the id.
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	// GetByIDForUpdate locks the loan row for the duration of the enclosing
	// transaction; every lifecycle mutation goes through this.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
}
