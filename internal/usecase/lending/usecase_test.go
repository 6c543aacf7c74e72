package lending

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cpspk/Caluracoin-NFT/internal/domain/custody"
	domain "github.com/cpspk/Caluracoin-NFT/internal/domain/loan"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/uow"
	"github.com/cpspk/Caluracoin-NFT/internal/testutil/custodymock"
	"github.com/cpspk/Caluracoin-NFT/internal/testutil/loanmock"
	"github.com/cpspk/Caluracoin-NFT/internal/testutil/settingsmock"
	"github.com/cpspk/Caluracoin-NFT/internal/testutil/uowmock"
)

const (
	borrower  = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	lender    = "1111111111111111111111111111111a"
	stranger  = "cccccccccccccccccccccccccccccccc"
	custodian = "00000000000000000000000000000000"
	operator  = "ffffffffffffffffffffffffffffffff"
)

type fixture struct {
	uc      *Usecase
	store   *uowmock.Memory
	gateway *custodymock.Gateway
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gw := &custodymock.Gateway{}
	store := uowmock.NewMemory(uow.Repos{
		Settings: &settingsmock.Repo{},
		Custody:  gw,
	})
	uc := NewUsecase(store.Repos.Loans, store, custodian, operator, nil)
	return &fixture{uc: uc, store: store, gateway: gw}
}

func validCreate() CreateLoanInput {
	return CreateLoanInput{
		Borrower:             borrower,
		Currency:             domain.CurrencyNative,
		LoanAmount:           1000,
		AssetsValue:          2000,
		InterestRate:         0,
		InstallmentFrequency: 7,
		NrOfInstallments:     5,
		Collateral: []CollateralInput{
			{ContractAddress: "0xabc", TokenID: "1"},
			{ContractAddress: "0xabc", TokenID: "2"},
		},
	}
}

// fundedLoan seeds a Funded loan directly into the store.
func fundedLoan(f *fixture, amount, interest, installments, payments uint64, end time.Time) *domain.Loan {
	l := &domain.Loan{
		Borrower:             borrower,
		Lender:               lender,
		Currency:             domain.CurrencyNative,
		LoanAmount:           amount,
		AssetsValue:          amount * 2,
		InterestRate:         interest,
		InstallmentFrequency: 7,
		NrOfInstallments:     installments,
		NrOfPayments:         payments,
		LoanEnd:              end,
		Status:               domain.StatusFunded,
		Collateral: []domain.CollateralAsset{
			{Position: 0, ContractAddress: "0xabc", TokenID: "1"},
		},
	}
	return f.store.Put(l)
}

// ----- create -----

func TestCreate_Success(t *testing.T) {
	f := newFixture(t)

	dto, err := f.uc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.LoanID == 0 {
		t.Fatalf("loan id not assigned")
	}
	if dto.Status != domain.StatusOpen {
		t.Fatalf("status=%d want Open", dto.Status)
	}
	if dto.Lender != "" {
		t.Fatalf("lender must be unset at creation")
	}
	if dto.NrOfPayments != 0 {
		t.Fatalf("nrOfPayments=%d want 0", dto.NrOfPayments)
	}

	if len(f.gateway.CollateralMoves) != 1 {
		t.Fatalf("collateral moves=%d want 1", len(f.gateway.CollateralMoves))
	}
	move := f.gateway.CollateralMoves[0]
	if move.From != borrower || move.To != custodian {
		t.Fatalf("collateral moved %s→%s, want borrower→custodian", move.From, move.To)
	}
	if len(move.Assets) != 2 {
		t.Fatalf("moved %d assets, want 2", len(move.Assets))
	}
}

func TestCreate_MonotonicIDs(t *testing.T) {
	f := newFixture(t)
	first, err := f.uc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := f.uc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.LoanID <= first.LoanID {
		t.Fatalf("ids not monotonic: %d then %d", first.LoanID, second.LoanID)
	}
}

func TestCreate_RejectsLTVAboveCeiling(t *testing.T) {
	f := newFixture(t)

	in := validCreate()
	in.LoanAmount = 1500 // 750 per mille against assetsValue 2000, ceiling 600
	_, err := f.uc.Create(context.Background(), in)
	if !errors.Is(err, domain.ErrInvalidTerms) {
		t.Fatalf("want ErrInvalidTerms, got %v", err)
	}
	if len(f.gateway.CollateralMoves) != 0 {
		t.Fatalf("no collateral may move on a rejected create")
	}
}

func TestCreate_RejectsDegenerateTerms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []func(*CreateLoanInput){
		func(in *CreateLoanInput) { in.LoanAmount = 0 },
		func(in *CreateLoanInput) { in.NrOfInstallments = 0 },
		func(in *CreateLoanInput) { in.AssetsValue = 0 },
		func(in *CreateLoanInput) { in.Collateral = nil },
	}
	for i, mutate := range cases {
		in := validCreate()
		mutate(&in)
		if _, err := f.uc.Create(ctx, in); !errors.Is(err, domain.ErrInvalidTerms) {
			t.Fatalf("case %d: want ErrInvalidTerms, got %v", i, err)
		}
	}
	if len(f.gateway.CollateralMoves) != 0 {
		t.Fatalf("no collateral may move on rejected creates")
	}
}

func TestCreate_GatewayFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.gateway.TransferCollateralFn = func(context.Context, string, string, []custody.Asset) error {
		return custody.ErrNotAssetOwner
	}

	_, err := f.uc.Create(context.Background(), validCreate())
	if !errors.Is(err, custody.ErrNotAssetOwner) {
		t.Fatalf("want gateway error, got %v", err)
	}
	if _, ok := f.store.Loan(1); ok {
		t.Fatalf("loan must not be persisted when the gateway fails")
	}
}

// ----- approve -----

func TestApprove_Success(t *testing.T) {
	f := newFixture(t)
	dto, err := f.uc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	before := time.Now().UTC()
	if err := f.uc.Approve(context.Background(), ApproveInput{LoanID: dto.LoanID, Caller: lender, FundsSent: 1000}); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	l, _ := f.store.Loan(dto.LoanID)
	if l.Status != domain.StatusFunded {
		t.Fatalf("status=%d want Funded", l.Status)
	}
	if l.Lender != lender {
		t.Fatalf("lender=%q", l.Lender)
	}
	wantEnd := before.Add(5 * 7 * 24 * time.Hour)
	if l.LoanEnd.Before(wantEnd) || l.LoanEnd.After(wantEnd.Add(time.Minute)) {
		t.Fatalf("loanEnd=%v want ≈%v", l.LoanEnd, wantEnd)
	}

	// Borrower receives the full principal; operator the 1% surcharge.
	if len(f.gateway.FundsMoves) != 2 {
		t.Fatalf("funds moves=%d want 2", len(f.gateway.FundsMoves))
	}
	if m := f.gateway.FundsMoves[0]; m.From != lender || m.To != borrower || m.Amount != 1000 {
		t.Fatalf("principal move %+v", m)
	}
	if m := f.gateway.FundsMoves[1]; m.From != lender || m.To != operator || m.Amount != 10 {
		t.Fatalf("fee move %+v", m)
	}
}

func TestApprove_RejectsInexactFunding(t *testing.T) {
	f := newFixture(t)
	dto, err := f.uc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := f.uc.Approve(context.Background(), ApproveInput{LoanID: dto.LoanID, Caller: lender, FundsSent: 999}); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("partial funding: want ErrInsufficientFunds, got %v", err)
	}
	if err := f.uc.Approve(context.Background(), ApproveInput{LoanID: dto.LoanID, Caller: lender, FundsSent: 1001}); !errors.Is(err, domain.ErrOverFunds) {
		t.Fatalf("excess funding: want ErrOverFunds, got %v", err)
	}

	l, _ := f.store.Loan(dto.LoanID)
	if l.Status != domain.StatusOpen || l.Lender != "" {
		t.Fatalf("rejected approve must leave the loan untouched: %+v", l)
	}
	if len(f.gateway.FundsMoves) != 0 {
		t.Fatalf("no funds may move on a rejected approve")
	}
}

func TestApprove_ExactlyOneWinner(t *testing.T) {
	f := newFixture(t)
	dto, err := f.uc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	competitors := []string{
		"1111111111111111111111111111111a",
		"2222222222222222222222222222222a",
		"3333333333333333333333333333333a",
		"4444444444444444444444444444444a",
	}
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		won  []string
		lost int
	)
	for _, c := range competitors {
		wg.Add(1)
		go func(caller string) {
			defer wg.Done()
			err := f.uc.Approve(context.Background(), ApproveInput{LoanID: dto.LoanID, Caller: caller, FundsSent: 1000})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				won = append(won, caller)
			case errors.Is(err, domain.ErrAlreadyFunded):
				lost++
			default:
				t.Errorf("competitor %s: unexpected error %v", caller, err)
			}
		}(c)
	}
	wg.Wait()

	if len(won) != 1 {
		t.Fatalf("winners=%d want exactly 1", len(won))
	}
	if lost != len(competitors)-1 {
		t.Fatalf("losers=%d want %d", lost, len(competitors)-1)
	}
	l, _ := f.store.Loan(dto.LoanID)
	if l.Lender != won[0] {
		t.Fatalf("lender=%q winner=%q", l.Lender, won[0])
	}
}

// ----- cancel -----

func TestCancel_BeforeFunding(t *testing.T) {
	f := newFixture(t)
	dto, err := f.uc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := f.uc.Cancel(context.Background(), dto.LoanID, borrower); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	l, _ := f.store.Loan(dto.LoanID)
	if l.Status != domain.StatusCancelled {
		t.Fatalf("status=%d want Cancelled", l.Status)
	}
	if l.LoanEnd.IsZero() || l.LoanEnd.After(time.Now().UTC().Add(time.Minute)) {
		t.Fatalf("loanEnd must be set to now on cancel, got %v", l.LoanEnd)
	}
	if len(f.gateway.FundsMoves)+len(f.gateway.CollateralMoves) != 1 {
		// only the create-time collateral move
		t.Fatalf("cancel must not move funds or collateral")
	}
}

func TestCancel_Guards(t *testing.T) {
	f := newFixture(t)
	dto, err := f.uc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := f.uc.Cancel(context.Background(), dto.LoanID, stranger); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("stranger cancel: want ErrUnauthorized, got %v", err)
	}

	if err := f.uc.Approve(context.Background(), ApproveInput{LoanID: dto.LoanID, Caller: lender, FundsSent: 1000}); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if err := f.uc.Cancel(context.Background(), dto.LoanID, borrower); !errors.Is(err, domain.ErrAlreadyFunded) {
		t.Fatalf("cancel after funding: want ErrAlreadyFunded, got %v", err)
	}
}

// ----- pay -----

func TestPay_ExactMultiplesOnly(t *testing.T) {
	f := newFixture(t)
	// installment = 500/5 = 100; three already paid, two remaining.
	l := fundedLoan(f, 500, 0, 5, 3, time.Now().UTC().Add(14*24*time.Hour))
	ctx := context.Background()

	if err := f.uc.Pay(ctx, PayInput{LoanID: l.ID, Caller: borrower, FundsSent: 250}); !errors.Is(err, domain.ErrImpreciseFunds) {
		t.Fatalf("250: want ErrImpreciseFunds, got %v", err)
	}
	if err := f.uc.Pay(ctx, PayInput{LoanID: l.ID, Caller: borrower, FundsSent: 300}); !errors.Is(err, domain.ErrOverFunds) {
		t.Fatalf("300 with 2 remaining: want ErrOverFunds, got %v", err)
	}
	if err := f.uc.Pay(ctx, PayInput{LoanID: l.ID, Caller: borrower, FundsSent: 50}); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("50: want ErrInsufficientFunds, got %v", err)
	}

	cur, _ := f.store.Loan(l.ID)
	if cur.NrOfPayments != 3 {
		t.Fatalf("rejected payments must not advance the counter: %d", cur.NrOfPayments)
	}

	if err := f.uc.Pay(ctx, PayInput{LoanID: l.ID, Caller: borrower, FundsSent: 200}); err != nil {
		t.Fatalf("200: %v", err)
	}
	cur, _ = f.store.Loan(l.ID)
	if cur.NrOfPayments != 5 {
		t.Fatalf("nrOfPayments=%d want 5", cur.NrOfPayments)
	}
	if cur.Status != domain.StatusPaidOff {
		t.Fatalf("status=%d want PaidOff", cur.Status)
	}

	// Fee split: gross 200, company cut 40% → lender 120, operator 80.
	if len(f.gateway.FundsMoves) != 2 {
		t.Fatalf("funds moves=%d want 2", len(f.gateway.FundsMoves))
	}
	if m := f.gateway.FundsMoves[0]; m.To != lender || m.Amount != 120 {
		t.Fatalf("lender share %+v", m)
	}
	if m := f.gateway.FundsMoves[1]; m.To != operator || m.Amount != 80 {
		t.Fatalf("operator share %+v", m)
	}
}

func TestPay_Guards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	expired := fundedLoan(f, 500, 0, 5, 0, time.Now().UTC().Add(-time.Hour))
	if err := f.uc.Pay(ctx, PayInput{LoanID: expired.ID, Caller: borrower, FundsSent: 100}); !errors.Is(err, domain.ErrExpired) {
		t.Fatalf("expired: want ErrExpired, got %v", err)
	}

	live := fundedLoan(f, 500, 0, 5, 0, time.Now().UTC().Add(24*time.Hour))
	if err := f.uc.Pay(ctx, PayInput{LoanID: live.ID, Caller: stranger, FundsSent: 100}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("stranger: want ErrUnauthorized, got %v", err)
	}

	open := f.store.Put(&domain.Loan{
		Borrower: borrower, Currency: domain.CurrencyNative,
		LoanAmount: 500, AssetsValue: 1000, NrOfInstallments: 5,
		Status: domain.StatusOpen,
	})
	if err := f.uc.Pay(ctx, PayInput{LoanID: open.ID, Caller: borrower, FundsSent: 100}); !errors.Is(err, domain.ErrNotYetFunded) {
		t.Fatalf("unfunded: want ErrNotYetFunded, got %v", err)
	}

	paidOff := fundedLoan(f, 500, 0, 5, 5, time.Now().UTC().Add(24*time.Hour))
	paidOff.Status = domain.StatusPaidOff
	f.store.Put(paidOff)
	if err := f.uc.Pay(ctx, PayInput{LoanID: paidOff.ID, Caller: borrower, FundsSent: 100}); !errors.Is(err, domain.ErrWrongPhase) {
		t.Fatalf("paid off: want ErrWrongPhase, got %v", err)
	}
}

func TestPay_MonotonicCounter(t *testing.T) {
	f := newFixture(t)
	l := fundedLoan(f, 500, 0, 5, 0, time.Now().UTC().Add(30*24*time.Hour))
	ctx := context.Background()

	var last uint64
	for i := 0; i < 5; i++ {
		if err := f.uc.Pay(ctx, PayInput{LoanID: l.ID, Caller: borrower, FundsSent: 100}); err != nil {
			t.Fatalf("installment %d: %v", i+1, err)
		}
		cur, _ := f.store.Loan(l.ID)
		if cur.NrOfPayments <= last && i > 0 {
			t.Fatalf("counter not monotone: %d then %d", last, cur.NrOfPayments)
		}
		if cur.NrOfPayments > cur.NrOfInstallments {
			t.Fatalf("nrOfPayments %d exceeds nrOfInstallments %d", cur.NrOfPayments, cur.NrOfInstallments)
		}
		last = cur.NrOfPayments
	}
	if err := f.uc.Pay(ctx, PayInput{LoanID: l.ID, Caller: borrower, FundsSent: 100}); !errors.Is(err, domain.ErrWrongPhase) {
		t.Fatalf("sixth payment: want ErrWrongPhase, got %v", err)
	}
}

// ----- extend -----

func TestExtend_MovesAllThreeTogether(t *testing.T) {
	f := newFixture(t)
	end := time.Now().UTC().Add(7 * 24 * time.Hour)
	l := fundedLoan(f, 500, 0, 5, 1, end)

	if err := f.uc.Extend(context.Background(), l.ID, lender, 2); err != nil {
		t.Fatalf("Extend: %v", err)
	}
	cur, _ := f.store.Loan(l.ID)
	if got := cur.LoanEnd.Sub(end); got != 2*24*time.Hour {
		t.Fatalf("loanEnd moved by %v want 48h", got)
	}
	if cur.NrOfPayments != 3 {
		t.Fatalf("nrOfPayments=%d want 3 (grace credited)", cur.NrOfPayments)
	}
	if cur.NrOfInstallments != 7 {
		t.Fatalf("nrOfInstallments=%d want 7", cur.NrOfInstallments)
	}
	if len(f.gateway.FundsMoves) != 0 {
		t.Fatalf("extend must not move funds")
	}
}

func TestExtend_Guards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := fundedLoan(f, 500, 0, 5, 1, time.Now().UTC().Add(24*time.Hour))

	if err := f.uc.Extend(ctx, l.ID, borrower, 1); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("borrower extend: want ErrUnauthorized, got %v", err)
	}
	if err := f.uc.Extend(ctx, l.ID, lender, 0); !errors.Is(err, domain.ErrInvalidTerms) {
		t.Fatalf("zero weeks: want ErrInvalidTerms, got %v", err)
	}

	expired := fundedLoan(f, 500, 0, 5, 1, time.Now().UTC().Add(-time.Hour))
	if err := f.uc.Extend(ctx, expired.ID, lender, 1); !errors.Is(err, domain.ErrExpired) {
		t.Fatalf("expired extend: want ErrExpired, got %v", err)
	}
}

// ----- withdraw -----

func TestWithdraw_FullyPaidReturnsToBorrower(t *testing.T) {
	f := newFixture(t)
	l := fundedLoan(f, 500, 0, 5, 5, time.Now().UTC().Add(24*time.Hour))
	l.Status = domain.StatusPaidOff
	f.store.Put(l)

	if err := f.uc.Withdraw(context.Background(), l.ID, borrower); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	cur, _ := f.store.Loan(l.ID)
	if cur.Status != domain.StatusReleased {
		t.Fatalf("status=%d want Released", cur.Status)
	}
	if len(f.gateway.CollateralMoves) != 1 {
		t.Fatalf("collateral moves=%d want 1", len(f.gateway.CollateralMoves))
	}
	if m := f.gateway.CollateralMoves[0]; m.From != custodian || m.To != borrower {
		t.Fatalf("collateral moved %s→%s want custodian→borrower", m.From, m.To)
	}

	if err := f.uc.Withdraw(context.Background(), l.ID, borrower); !errors.Is(err, domain.ErrAlreadyReleased) {
		t.Fatalf("second withdraw: want ErrAlreadyReleased, got %v", err)
	}
	if len(f.gateway.CollateralMoves) != 1 {
		t.Fatalf("collateral must move exactly once")
	}
}

func TestWithdraw_ExpiredUnpaidGoesToLender(t *testing.T) {
	f := newFixture(t)
	l := fundedLoan(f, 500, 0, 5, 2, time.Now().UTC().Add(-time.Hour))

	if err := f.uc.Withdraw(context.Background(), l.ID, lender); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	if m := f.gateway.CollateralMoves[0]; m.To != lender {
		t.Fatalf("collateral went to %s, want lender", m.To)
	}
	cur, _ := f.store.Loan(l.ID)
	if cur.Status != domain.StatusReleased {
		t.Fatalf("status=%d want Released", cur.Status)
	}
}

func TestWithdraw_AfterCancelReturnsToBorrower(t *testing.T) {
	f := newFixture(t)
	dto, err := f.uc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := f.uc.Cancel(context.Background(), dto.LoanID, borrower); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if err := f.uc.Withdraw(context.Background(), dto.LoanID, borrower); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	// moves[0] is the create-time pledge
	if m := f.gateway.CollateralMoves[1]; m.From != custodian || m.To != borrower {
		t.Fatalf("collateral moved %s→%s want custodian→borrower", m.From, m.To)
	}
	cur, _ := f.store.Loan(dto.LoanID)
	if cur.Status != domain.StatusReleased {
		t.Fatalf("status=%d want Released", cur.Status)
	}
}

func TestWithdraw_Guards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	live := fundedLoan(f, 500, 0, 5, 2, time.Now().UTC().Add(24*time.Hour))
	if err := f.uc.Withdraw(ctx, live.ID, borrower); !errors.Is(err, domain.ErrWrongPhase) {
		t.Fatalf("live loan: want ErrWrongPhase, got %v", err)
	}
	if err := f.uc.Withdraw(ctx, live.ID, stranger); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("stranger: want ErrUnauthorized, got %v", err)
	}

	dto, err := f.uc.Create(ctx, validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := f.uc.Withdraw(ctx, dto.LoanID, borrower); !errors.Is(err, domain.ErrWrongPhase) {
		t.Fatalf("open loan: want ErrWrongPhase, got %v", err)
	}
}

// ----- getters -----

func TestGetters(t *testing.T) {
	f := newFixture(t)
	l := fundedLoan(f, 500, 0, 5, 2, time.Now().UTC().Add(24*time.Hour))
	ctx := context.Background()

	n, err := f.uc.NrOfPayments(ctx, l.ID)
	if err != nil || n != 2 {
		t.Fatalf("NrOfPayments=%d err=%v", n, err)
	}
	st, err := f.uc.Status(ctx, l.ID)
	if err != nil || st != domain.StatusFunded {
		t.Fatalf("Status=%d err=%v", st, err)
	}
	if _, err := f.uc.Get(ctx, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing loan: want ErrNotFound, got %v", err)
	}
}

func TestGetters_PropagateStorageErrors(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &loanmock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Loan, error) { return nil, boom },
	}
	uc := NewUsecase(repo, uowmock.New(), custodian, operator, nil)
	ctx := context.Background()

	if _, err := uc.Get(ctx, 1); !errors.Is(err, boom) {
		t.Fatalf("Get: want storage error, got %v", err)
	}
	if _, err := uc.Status(ctx, 1); !errors.Is(err, boom) {
		t.Fatalf("Status: want storage error, got %v", err)
	}
	if _, err := uc.NrOfPayments(ctx, 1); !errors.Is(err, boom) {
		t.Fatalf("NrOfPayments: want storage error, got %v", err)
	}
}
