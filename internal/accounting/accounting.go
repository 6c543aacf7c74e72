// Package accounting holds the pure numeric helpers behind the lending
// engine. Everything is unsigned integer arithmetic; where a quotient is
// truncated that truncation is intentional and must not be "improved".
package accounting

import "errors"

var ErrZeroDenominator = errors.New("percentage: zero denominator")

// Percentage returns numerator/denominator as a fixed-point percentage with
// the given number of implied decimals, rounded half-up. A zero denominator
// is an input error, caught before any division.
func Percentage(numerator, denominator uint64, precision uint) (uint64, error) {
	if denominator == 0 {
		return 0, ErrZeroDenominator
	}
	scale := uint64(1)
	for i := uint(0); i < precision+1; i++ {
		scale *= 10
	}
	return (numerator*scale/denominator + 5) / 10, nil
}

// InstallmentAmount is the per-installment obligation:
// (loanAmount + interestRate) / nrOfInstallments, truncating. The remainder
// accrues to no one.
func InstallmentAmount(loanAmount, interestRate, nrOfInstallments uint64) uint64 {
	return (loanAmount + interestRate) / nrOfInstallments
}

// FundingSplit computes the payout on loan approval. The borrower receives
// the full principal; the operator additionally receives the loanFee percent
// surcharge carved out of the same budget.
func FundingSplit(loanAmount, loanFee uint64) (toBorrower, toOperator uint64) {
	toBorrower = loanAmount
	toOperator = loanAmount - loanAmount/100*(100-loanFee)
	return toBorrower, toOperator
}

// InstallmentSplit divides a gross installment payment between the lender
// and the operator. gross must equal installmentAmount*totalPayments.
func InstallmentSplit(installmentAmount, totalPayments, interestRateToCompany uint64) (toLender, toOperator uint64) {
	gross := installmentAmount * totalPayments
	toLender = gross / 100 * (100 - interestRateToCompany)
	toOperator = gross - toLender
	return toLender, toOperator
}
