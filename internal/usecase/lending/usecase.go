// Package lending is the lifecycle engine: every loan mutation enters here,
// runs inside one unit of work with the loan row locked, and either commits
// fully or leaves no trace.
package lending

import (
	"context"
	"time"

	"github.com/cpspk/Caluracoin-NFT/internal/accounting"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/custody"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/loan"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/uow"
	"github.com/cpspk/Caluracoin-NFT/internal/notifier"
)

// LTV percentages carry three implied decimals (600 = 60.0%).
const ltvPrecision = 3

type Usecase struct {
	repo      loan.Repository
	uow       uow.UnitOfWork
	custodian string // ledger account holding pledged collateral
	operator  string // protocol operator's fee account
	notify    notifier.Notifier
}

func NewUsecase(repo loan.Repository, tx uow.UnitOfWork, custodian, operator string, n notifier.Notifier) *Usecase {
	if n == nil {
		n = notifier.Noop{}
	}
	return &Usecase{repo: repo, uow: tx, custodian: custodian, operator: operator, notify: n}
}

func nowUTC() time.Time { return time.Now().UTC() }

func days(n uint64) time.Duration { return time.Duration(n) * 24 * time.Hour }

func collateralAssets(rows []loan.CollateralAsset) []custody.Asset {
	out := make([]custody.Asset, 0, len(rows))
	for _, r := range rows {
		out = append(out, custody.Asset{ContractAddress: r.ContractAddress, TokenID: r.TokenID})
	}
	return out
}

// Create pledges the collateral and appends a new Open loan. The collateral
// moves borrower → custodian inside the same transaction that persists the
// record: if any single asset transfer fails, nothing is persisted.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.NrOfInstallments == 0 || in.LoanAmount == 0 || len(in.Collateral) == 0 {
		return nil, loan.ErrInvalidTerms
	}
	// Checked up front so the LTV ratio never divides by zero.
	if in.AssetsValue == 0 {
		return nil, loan.ErrInvalidTerms
	}
	if in.Currency == "" {
		in.Currency = loan.CurrencyNative
	}

	var l *loan.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Settings.Get(ctx)
		if err != nil {
			return err
		}
		ltv, err := accounting.Percentage(in.LoanAmount, in.AssetsValue, ltvPrecision)
		if err != nil {
			return loan.ErrInvalidTerms
		}
		if ltv > p.LTV {
			return loan.ErrInvalidTerms
		}

		rows := make([]loan.CollateralAsset, 0, len(in.Collateral))
		for i, c := range in.Collateral {
			rows = append(rows, loan.CollateralAsset{
				Position:        i,
				ContractAddress: c.ContractAddress,
				TokenID:         c.TokenID,
			})
		}
		if err := r.Custody.TransferCollateral(ctx, in.Borrower, u.custodian, collateralAssets(rows)); err != nil {
			return err
		}

		l = &loan.Loan{
			Borrower:             in.Borrower,
			Currency:             in.Currency,
			LoanAmount:           in.LoanAmount,
			AssetsValue:          in.AssetsValue,
			InterestRate:         in.InterestRate,
			InstallmentFrequency: in.InstallmentFrequency,
			NrOfInstallments:     in.NrOfInstallments,
			NrOfPayments:         0,
			Status:               loan.StatusOpen,
			Collateral:           rows,
			StatusUpdatedAt:      nowUTC(),
		}
		return r.Loans.Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	u.notify.Emit(ctx, notifier.New("create_loan", l.ID, in.Borrower, l.Status, map[string]any{
		"loan_amount":  l.LoanAmount,
		"assets_value": l.AssetsValue,
		"collateral":   len(l.Collateral),
	}))
	return toDTO(l), nil
}

type ApproveInput struct {
	LoanID    uint64
	Caller    string
	FundsSent uint64
}

// Approve funds an Open loan. The row lock taken by WithinLoanTx is what
// decides the race between competing lenders: exactly one wins, the rest
// observe a set lender and fail with ErrAlreadyFunded.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) error {
	var status loan.Status
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Lender != "" {
			return loan.ErrAlreadyFunded
		}
		if l.NrOfPayments != 0 || l.Status != loan.StatusOpen {
			return loan.ErrWrongPhase
		}
		// Exact funding only: no partial, no excess.
		if in.FundsSent < l.LoanAmount {
			return loan.ErrInsufficientFunds
		}
		if in.FundsSent > l.LoanAmount {
			return loan.ErrOverFunds
		}

		p, err := r.Settings.Get(ctx)
		if err != nil {
			return err
		}
		toBorrower, toOperator := accounting.FundingSplit(l.LoanAmount, p.LoanFee)
		if err := r.Custody.TransferFunds(ctx, l.Currency, in.Caller, l.Borrower, toBorrower); err != nil {
			return err
		}
		if toOperator > 0 {
			if err := r.Custody.TransferFunds(ctx, l.Currency, in.Caller, u.operator, toOperator); err != nil {
				return err
			}
		}

		now := nowUTC()
		l.Lender = in.Caller
		l.LoanEnd = now.Add(days(l.NrOfInstallments * l.InstallmentFrequency))
		l.Status = loan.StatusFunded
		l.StatusUpdatedAt = now
		status = l.Status
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		return err
	}

	u.notify.Emit(ctx, notifier.New("approve_loan", in.LoanID, in.Caller, status, map[string]any{
		"funds_sent": in.FundsSent,
	}))
	return nil
}

// Cancel lets the borrower back out before anyone funds the loan. No funds
// move; collateral stays custodied until Withdraw.
func (u *Usecase) Cancel(ctx context.Context, loanID uint64, caller string) error {
	var status loan.Status
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Borrower != caller {
			return loan.ErrUnauthorized
		}
		if l.Lender != "" {
			return loan.ErrAlreadyFunded
		}
		if l.Status != loan.StatusOpen {
			return loan.ErrWrongPhase
		}
		now := nowUTC()
		l.LoanEnd = now
		l.Status = loan.StatusCancelled
		l.StatusUpdatedAt = now
		status = l.Status
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		return err
	}

	u.notify.Emit(ctx, notifier.New("cancel_loan", loanID, caller, status, nil))
	return nil
}

type PayInput struct {
	LoanID    uint64
	Caller    string
	FundsSent uint64
}

// Pay credits one or more installments. fundsSent must be an exact multiple
// of the installment amount; a lump sum covering several installments is
// accepted, any remainder is rejected outright rather than partially
// credited.
func (u *Usecase) Pay(ctx context.Context, in PayInput) error {
	var (
		status loan.Status
		paid   uint64
	)
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Borrower != in.Caller {
			return loan.ErrUnauthorized
		}
		if l.Status == loan.StatusOpen {
			return loan.ErrNotYetFunded
		}
		if l.Status >= loan.StatusPaidOff {
			return loan.ErrWrongPhase
		}
		now := nowUTC()
		if now.After(l.LoanEnd) {
			return loan.ErrExpired
		}
		if l.NrOfPayments >= l.NrOfInstallments {
			return loan.ErrWrongPhase
		}

		installment := accounting.InstallmentAmount(l.LoanAmount, l.InterestRate, l.NrOfInstallments)
		if installment == 0 {
			return loan.ErrInvalidTerms
		}
		if in.FundsSent < installment {
			return loan.ErrInsufficientFunds
		}
		totalPayments := in.FundsSent / installment
		if totalPayments > l.NrOfInstallments-l.NrOfPayments {
			return loan.ErrOverFunds
		}
		if totalPayments*installment != in.FundsSent {
			return loan.ErrImpreciseFunds
		}

		p, err := r.Settings.Get(ctx)
		if err != nil {
			return err
		}
		toLender, toOperator := accounting.InstallmentSplit(installment, totalPayments, p.InterestRateToCompany)
		if toLender > 0 {
			if err := r.Custody.TransferFunds(ctx, l.Currency, in.Caller, l.Lender, toLender); err != nil {
				return err
			}
		}
		if toOperator > 0 {
			if err := r.Custody.TransferFunds(ctx, l.Currency, in.Caller, u.operator, toOperator); err != nil {
				return err
			}
		}

		l.NrOfPayments += totalPayments
		if l.FullyPaid() {
			l.Status = loan.StatusPaidOff
			l.StatusUpdatedAt = now
		}
		status = l.Status
		paid = totalPayments
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		return err
	}

	u.notify.Emit(ctx, notifier.New("pay_loan", in.LoanID, in.Caller, status, map[string]any{
		"funds_sent":   in.FundsSent,
		"installments": paid,
	}))
	return nil
}

// Extend pushes the deadline out by nrOfWeeks days while crediting the same
// number of installments as paid. Forgiving payments while extending is how
// the protocol's grace mechanism works; both counters and the deadline move
// together.
func (u *Usecase) Extend(ctx context.Context, loanID uint64, caller string, nrOfWeeks uint64) error {
	if nrOfWeeks == 0 {
		return loan.ErrInvalidTerms
	}
	var status loan.Status
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Lender == "" {
			return loan.ErrNotYetFunded
		}
		if l.Lender != caller {
			return loan.ErrUnauthorized
		}
		if l.Status >= loan.StatusPaidOff {
			return loan.ErrWrongPhase
		}
		if l.NrOfPayments >= l.NrOfInstallments {
			return loan.ErrWrongPhase
		}
		if nowUTC().After(l.LoanEnd) {
			return loan.ErrExpired
		}

		l.LoanEnd = l.LoanEnd.Add(days(nrOfWeeks))
		l.NrOfPayments += nrOfWeeks
		l.NrOfInstallments += nrOfWeeks
		status = l.Status
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		return err
	}

	u.notify.Emit(ctx, notifier.New("extend_loan", loanID, caller, status, map[string]any{
		"nr_of_weeks": nrOfWeeks,
	}))
	return nil
}

// Withdraw releases the custodied collateral exactly once: to the borrower
// when the loan is fully paid or was cancelled, to the lender when the
// deadline ran out with installments still owing.
func (u *Usecase) Withdraw(ctx context.Context, loanID uint64, caller string) error {
	var (
		status    loan.Status
		recipient string
	)
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if caller != l.Borrower && caller != l.Lender {
			return loan.ErrUnauthorized
		}
		if l.Status == loan.StatusReleased {
			return loan.ErrAlreadyReleased
		}
		now := nowUTC()
		switch l.Status {
		case loan.StatusPaidOff, loan.StatusCancelled:
			// eligible
		case loan.StatusFunded:
			if !l.Expired(now) {
				return loan.ErrWrongPhase
			}
		default:
			return loan.ErrWrongPhase
		}

		recipient = l.Lender
		if l.FullyPaid() || l.Status == loan.StatusCancelled {
			recipient = l.Borrower
		}
		if err := r.Custody.TransferCollateral(ctx, u.custodian, recipient, collateralAssets(l.Collateral)); err != nil {
			return err
		}

		l.Status = loan.StatusReleased
		l.StatusUpdatedAt = now
		status = l.Status
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		return err
	}

	u.notify.Emit(ctx, notifier.New("withdraw_items", loanID, caller, status, map[string]any{
		"recipient": recipient,
	}))
	return nil
}

// Get returns a read-only snapshot of a loan.
func (u *Usecase) Get(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) NrOfPayments(ctx context.Context, loanID uint64) (uint64, error) {
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		return 0, err
	}
	return l.NrOfPayments, nil
}

func (u *Usecase) Status(ctx context.Context, loanID uint64) (loan.Status, error) {
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		return 0, err
	}
	return l.Status, nil
}

func toDTO(l *loan.Loan) *LoanDTO {
	col := make([]CollateralInput, 0, len(l.Collateral))
	for _, c := range l.Collateral {
		col = append(col, CollateralInput{ContractAddress: c.ContractAddress, TokenID: c.TokenID})
	}
	return &LoanDTO{
		LoanID:               l.ID,
		Borrower:             l.Borrower,
		Lender:               l.Lender,
		Currency:             l.Currency,
		LoanAmount:           l.LoanAmount,
		AssetsValue:          l.AssetsValue,
		InterestRate:         l.InterestRate,
		InstallmentFrequency: l.InstallmentFrequency,
		NrOfInstallments:     l.NrOfInstallments,
		NrOfPayments:         l.NrOfPayments,
		InstallmentAmount:    accounting.InstallmentAmount(l.LoanAmount, l.InterestRate, l.NrOfInstallments),
		LoanEnd:              l.LoanEnd,
		Status:               l.Status,
		StatusName:           l.Status.String(),
		Collateral:           col,
		CreatedAt:            l.CreatedAt,
	}
}
