package uowmock

import (
	"context"
	"errors"
	"sync"

	"github.com/cpspk/Caluracoin-NFT/internal/domain/loan"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/uow"
)

// Ensure compile-time compliance
var (
	_ uow.UnitOfWork = (*UoW)(nil)
	_ uow.UnitOfWork = (*Memory)(nil)
)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinLoanTx(fn func(context.Context, uint64, func(uow.Repos, *loan.Loan) error) error) *UoW {
	m.WithinLoanTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinLoanTx(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}

// Memory is a serialized in-memory unit of work over a loan map. A single
// mutex plays the role of the registry-wide transaction boundary, which is
// what makes it usable for racing-caller tests: units never interleave, and
// the loan handed to fn is a copy that only lands in the store on success.
type Memory struct {
	mu     sync.Mutex
	nextID uint64
	loans  map[uint64]*loan.Loan
	Repos  uow.Repos
}

func NewMemory(repos uow.Repos) *Memory {
	m := &Memory{loans: map[uint64]*loan.Loan{}, Repos: repos}
	if m.Repos.Loans == nil {
		m.Repos.Loans = (*memoryLoans)(m)
	}
	return m
}

// Put seeds a loan directly, assigning the next id when unset.
func (m *Memory) Put(l *loan.Loan) *loan.Loan {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l.ID == 0 {
		m.nextID++
		l.ID = m.nextID
	} else if l.ID > m.nextID {
		m.nextID = l.ID
	}
	cp := *l
	m.loans[l.ID] = &cp
	return l
}

// Loan returns a snapshot of the stored loan.
func (m *Memory) Loan(id uint64) (*loan.Loan, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.loans[id]
	if !ok {
		return nil, false
	}
	cp := *l
	return &cp, true
}

func (m *Memory) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.Repos)
}

func (m *Memory) WithinLoanTx(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.loans[loanID]
	if !ok {
		return loan.ErrNotFound
	}
	cp := *stored
	return fn(m.Repos, &cp)
}

// memoryLoans backs Repos.Loans when no mock is supplied. Callers already
// hold the Memory mutex when these run.
type memoryLoans Memory

func (r *memoryLoans) Create(_ context.Context, l *loan.Loan) error {
	m := (*Memory)(r)
	m.nextID++
	l.ID = m.nextID
	cp := *l
	m.loans[l.ID] = &cp
	return nil
}

func (r *memoryLoans) GetByID(_ context.Context, id uint64) (*loan.Loan, error) {
	m := (*Memory)(r)
	l, ok := m.loans[id]
	if !ok {
		return nil, loan.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *memoryLoans) GetByIDForUpdate(ctx context.Context, id uint64) (*loan.Loan, error) {
	return r.GetByID(ctx, id)
}

func (r *memoryLoans) Save(_ context.Context, l *loan.Loan) error {
	m := (*Memory)(r)
	cp := *l
	m.loans[l.ID] = &cp
	return nil
}
