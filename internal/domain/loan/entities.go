package loan

import (
	"time"
)

// Status is the authoritative phase of a loan. The numeric codes are part of
// the public contract (exposed by the status endpoint) and are never reused.
type Status uint16

const (
	StatusOpen      Status = 10
	StatusFunded    Status = 11
	StatusPaidOff   Status = 199
	StatusReleased  Status = 200
	StatusCancelled Status = 404
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusFunded:
		return "funded"
	case StatusPaidOff:
		return "paid_off"
	case StatusReleased:
		return "released"
	case StatusCancelled:
		return "cancelled"
	}
	return "unknown"
}

// transitions is the full state machine. Released is terminal.
var transitions = map[Status][]Status{
	StatusOpen:      {StatusFunded, StatusCancelled},
	StatusFunded:    {StatusPaidOff, StatusReleased},
	StatusPaidOff:   {StatusReleased},
	StatusCancelled: {StatusReleased},
	StatusReleased:  {},
}

// CanTransition reports whether moving from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// CurrencyNative is the sentinel denoting the ledger's native asset.
const CurrencyNative = "native"

// CollateralAsset is one pledged NFT. Rows are fixed at loan creation and
// ordered by Position.
type CollateralAsset struct {
	ID              uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID          uint64 `gorm:"column:loan_id;not null;index" json:"-"`
	Position        int    `gorm:"column:position;not null" json:"-"`
	ContractAddress string `gorm:"column:contract_address;size:64;not null" json:"contract_address"`
	TokenID         string `gorm:"column:token_id;size:78;not null" json:"token_id"`
}

func (CollateralAsset) TableName() string { return "collateral_assets" }

// Loan is the source-of-truth record. The autoincrement ID is the public
// loan id: monotonically increasing, assigned at creation, never reused.
// Rows are never deleted; terminal states are retained for audit.
type Loan struct {
	ID                   uint64            `gorm:"primaryKey;column:id" json:"loan_id"`
	Borrower             string            `gorm:"column:borrower;size:32;not null;index" json:"borrower"`
	Lender               string            `gorm:"column:lender;size:32" json:"lender,omitempty"`
	Currency             string            `gorm:"column:currency;size:64;not null" json:"currency"`
	LoanAmount           uint64            `gorm:"column:loan_amount;not null" json:"loan_amount"`
	AssetsValue          uint64            `gorm:"column:assets_value;not null" json:"assets_value"`
	InterestRate         uint64            `gorm:"column:interest_rate;not null" json:"interest_rate"`
	InstallmentFrequency uint64            `gorm:"column:installment_frequency;not null" json:"installment_frequency"`
	NrOfInstallments     uint64            `gorm:"column:nr_of_installments;not null" json:"nr_of_installments"`
	NrOfPayments         uint64            `gorm:"column:nr_of_payments;not null;default:0" json:"nr_of_payments"`
	LoanEnd              time.Time         `gorm:"column:loan_end" json:"loan_end"`
	Status               Status            `gorm:"column:status;not null" json:"status"`
	Collateral           []CollateralAsset `gorm:"foreignKey:LoanID" json:"collateral"`
	StatusUpdatedAt      time.Time         `gorm:"column:status_updated_at" json:"status_updated_at"`
	CreatedAt            time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// FullyPaid reports whether every installment has been paid.
func (l *Loan) FullyPaid() bool { return l.NrOfPayments == l.NrOfInstallments }

// Expired reports whether the deadline has passed relative to now.
// A zero LoanEnd (never funded) never counts as expired.
func (l *Loan) Expired(now time.Time) bool {
	return !l.LoanEnd.IsZero() && !now.Before(l.LoanEnd)
}
