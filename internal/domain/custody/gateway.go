package custody

import (
	"context"
	"errors"
)

var (
	ErrInsufficientBalance = errors.New("insufficient fungible balance")
	ErrNotAssetOwner       = errors.New("asset is not held by the transferor")
)

// Asset identifies one non-fungible item on the ledger.
type Asset struct {
	ContractAddress string
	TokenID         string
}

// Gateway is the custody/ledger collaborator. Both primitives are atomic:
// either the whole transfer happens or none of it does, and a failure must
// unwind the caller's enclosing unit of work.
type Gateway interface {
	// TransferCollateral moves every asset from one holder to another. If any
	// single asset cannot move, no asset moves.
	TransferCollateral(ctx context.Context, from, to string, assets []Asset) error
	// TransferFunds moves amount of currency between accounts.
	TransferFunds(ctx context.Context, currency, from, to string, amount uint64) error
}
