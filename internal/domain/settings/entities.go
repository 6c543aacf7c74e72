package settings

import (
	"errors"
	"time"
)

var ErrNotInitialized = errors.New("global parameters not initialized")

// Defaults applied when the parameters row is first seeded.
const (
	DefaultLTV                   = 600
	DefaultLoanFee               = 1
	DefaultInterestRateToCompany = 40
	DefaultInterestRateToLender  = 60
)

// Parameters is the single-row global configuration shared by every loan.
// It is initialized at system start and mutated only through the admin
// operations; every lifecycle transition reads it inside its own transaction.
type Parameters struct {
	ID                    uint64    `gorm:"primaryKey;column:id"`
	LTV                   uint64    `gorm:"column:ltv;not null"`
	LoanFee               uint64    `gorm:"column:loan_fee;not null"`
	InterestRateToCompany uint64    `gorm:"column:interest_rate_to_company;not null"`
	InterestRateToLender  uint64    `gorm:"column:interest_rate_to_lender;not null"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Parameters) TableName() string { return "parameters" }

// Seed returns the boot-time parameter set.
func Seed() *Parameters {
	return &Parameters{
		ID:                    1,
		LTV:                   DefaultLTV,
		LoanFee:               DefaultLoanFee,
		InterestRateToCompany: DefaultInterestRateToCompany,
		InterestRateToLender:  DefaultInterestRateToLender,
	}
}
