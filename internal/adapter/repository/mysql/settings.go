package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cpspk/Caluracoin-NFT/internal/domain/settings"
)

type SettingsRepository struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{db: db} }

func (r *SettingsRepository) Get(ctx context.Context) (*settings.Parameters, error) {
	var out settings.Parameters
	res := r.db.WithContext(ctx).First(&out, 1)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, settings.ErrNotInitialized
	}
	return &out, res.Error
}

func (r *SettingsRepository) Save(ctx context.Context, p *settings.Parameters) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *SettingsRepository) EnsureSeeded(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(settings.Seed()).Error
}
