package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cpspk/Caluracoin-NFT/internal/domain/custody"
)

// Balance is one account's holding of one currency.
type Balance struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	Account   string    `gorm:"column:account;size:32;not null;uniqueIndex:ux_balances_account_currency"`
	Currency  string    `gorm:"column:currency;size:64;not null;uniqueIndex:ux_balances_account_currency"`
	Amount    uint64    `gorm:"column:amount;not null;default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Balance) TableName() string { return "balances" }

// Holding records the current owner of one NFT.
type Holding struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	ContractAddress string    `gorm:"column:contract_address;size:64;not null;uniqueIndex:ux_holdings_asset"`
	TokenID         string    `gorm:"column:token_id;size:78;not null;uniqueIndex:ux_holdings_asset"`
	Owner           string    `gorm:"column:owner;size:32;not null;index"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Holding) TableName() string { return "holdings" }

// Ledger is the custody gateway backed by the same database as the loan
// registry. Bound to the unit-of-work transaction it is all-or-nothing by
// construction: a failed transfer (or a later failure in the same unit)
// rolls everything back.
type Ledger struct{ db *gorm.DB }

func NewLedger(db *gorm.DB) *Ledger { return &Ledger{db: db} }

func (g *Ledger) TransferCollateral(ctx context.Context, from, to string, assets []custody.Asset) error {
	tx := g.db.WithContext(ctx)
	for _, a := range assets {
		var h Holding
		res := lockForUpdate(tx).
			Where("contract_address = ? AND token_id = ?", a.ContractAddress, a.TokenID).
			First(&h)
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return custody.ErrNotAssetOwner
		}
		if res.Error != nil {
			return res.Error
		}
		if h.Owner != from {
			return custody.ErrNotAssetOwner
		}
		h.Owner = to
		if err := tx.Save(&h).Error; err != nil {
			return err
		}
	}
	return nil
}

func (g *Ledger) TransferFunds(ctx context.Context, currency, from, to string, amount uint64) error {
	if amount == 0 {
		return nil
	}
	tx := g.db.WithContext(ctx)

	var src Balance
	res := lockForUpdate(tx).
		Where("account = ? AND currency = ?", from, currency).
		First(&src)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return custody.ErrInsufficientBalance
	}
	if res.Error != nil {
		return res.Error
	}
	if src.Amount < amount {
		return custody.ErrInsufficientBalance
	}
	src.Amount -= amount
	if err := tx.Save(&src).Error; err != nil {
		return err
	}

	var dst Balance
	res = lockForUpdate(tx).
		Where("account = ? AND currency = ?", to, currency).
		First(&dst)
	switch {
	case errors.Is(res.Error, gorm.ErrRecordNotFound):
		dst = Balance{Account: to, Currency: currency, Amount: amount}
		return tx.Create(&dst).Error
	case res.Error != nil:
		return res.Error
	}
	dst.Amount += amount
	return tx.Save(&dst).Error
}

// Mint credits an account out of thin air; used by bootstrap tooling and
// tests to seed balances and holdings.
func (g *Ledger) Mint(ctx context.Context, currency, account string, amount uint64) error {
	tx := g.db.WithContext(ctx)
	var b Balance
	res := tx.Where("account = ? AND currency = ?", account, currency).First(&b)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return tx.Create(&Balance{Account: account, Currency: currency, Amount: amount}).Error
	}
	if res.Error != nil {
		return res.Error
	}
	b.Amount += amount
	return tx.Save(&b).Error
}

// MintAsset registers an NFT with its initial owner.
func (g *Ledger) MintAsset(ctx context.Context, a custody.Asset, owner string) error {
	return g.db.WithContext(ctx).Create(&Holding{
		ContractAddress: a.ContractAddress,
		TokenID:         a.TokenID,
		Owner:           owner,
	}).Error
}
