package lending

import (
	"time"

	"github.com/cpspk/Caluracoin-NFT/internal/domain/loan"
)

type CollateralInput struct {
	ContractAddress string `json:"contract_address"`
	TokenID         string `json:"token_id"`
}

type CreateLoanInput struct {
	Borrower             string            `json:"borrower"`
	Currency             string            `json:"currency"`
	LoanAmount           uint64            `json:"loan_amount"`
	AssetsValue          uint64            `json:"assets_value"`
	InterestRate         uint64            `json:"interest_rate"`
	InstallmentFrequency uint64            `json:"installment_frequency"`
	NrOfInstallments     uint64            `json:"nr_of_installments"`
	Collateral           []CollateralInput `json:"collateral"`
}

type LoanDTO struct {
	LoanID               uint64            `json:"loan_id"`
	Borrower             string            `json:"borrower"`
	Lender               string            `json:"lender,omitempty"`
	Currency             string            `json:"currency"`
	LoanAmount           uint64            `json:"loan_amount"`
	AssetsValue          uint64            `json:"assets_value"`
	InterestRate         uint64            `json:"interest_rate"`
	InstallmentFrequency uint64            `json:"installment_frequency"`
	NrOfInstallments     uint64            `json:"nr_of_installments"`
	NrOfPayments         uint64            `json:"nr_of_payments"`
	InstallmentAmount    uint64            `json:"installment_amount"`
	LoanEnd              time.Time         `json:"loan_end"`
	Status               loan.Status       `json:"status"`
	StatusName           string            `json:"status_name"`
	Collateral           []CollateralInput `json:"collateral"`
	CreatedAt            time.Time         `json:"created_at"`
}
