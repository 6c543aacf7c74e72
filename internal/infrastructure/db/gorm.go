package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	repo "github.com/cpspk/Caluracoin-NFT/internal/adapter/repository/mysql"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/loan"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/settings"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	db, err := gorm.Open(mysql.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates the registry, parameter, and ledger tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&loan.Loan{},
		&loan.CollateralAsset{},
		&settings.Parameters{},
		&repo.Balance{},
		&repo.Holding{},
	)
}
