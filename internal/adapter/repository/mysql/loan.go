package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "github.com/cpspk/Caluracoin-NFT/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Preload("Collateral", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&out, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

// GetByIDForUpdate takes a row lock so the caller's transaction serializes
// against every other mutation of the same loan.
func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := lockForUpdate(r.db.WithContext(ctx)).
		Preload("Collateral", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&out, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

// lockForUpdate adds FOR UPDATE where the dialect has it. sqlite (tests)
// does not, and serializes writers on its own.
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
