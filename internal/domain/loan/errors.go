package loan

import "errors"

// Precondition failures. Every one of these aborts the whole operation with
// no partial state change; callers correct input and reissue.
var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTerms      = errors.New("invalid loan terms")
	ErrAlreadyFunded     = errors.New("loan already funded")
	ErrNotYetFunded      = errors.New("loan not yet funded")
	ErrUnauthorized      = errors.New("caller is not a party to this loan")
	ErrWrongPhase        = errors.New("loan status does not permit this operation")
	ErrInsufficientFunds = errors.New("funds sent are below one installment")
	ErrOverFunds         = errors.New("funds sent exceed the remaining installments")
	ErrImpreciseFunds    = errors.New("funds sent are not an exact multiple of the installment amount")
	ErrExpired           = errors.New("loan deadline has passed")
	ErrAlreadyReleased   = errors.New("collateral already released")
)
