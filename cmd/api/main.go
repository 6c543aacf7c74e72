package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "github.com/cpspk/Caluracoin-NFT/internal/adapter/http"
	axmw "github.com/cpspk/Caluracoin-NFT/internal/adapter/middleware"
	repo "github.com/cpspk/Caluracoin-NFT/internal/adapter/repository/mysql"
	"github.com/cpspk/Caluracoin-NFT/internal/config"
	"github.com/cpspk/Caluracoin-NFT/internal/infrastructure/cache"
	"github.com/cpspk/Caluracoin-NFT/internal/infrastructure/db"
	"github.com/cpspk/Caluracoin-NFT/internal/notifier"
	"github.com/cpspk/Caluracoin-NFT/internal/usecase/admin"
	"github.com/cpspk/Caluracoin-NFT/internal/usecase/lending"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.NewSettingsRepository(gdb).EnsureSeeded(ctx); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	var events notifier.Notifier = notifier.LogNotifier{}
	if cfg.EventChannel != "" {
		events = notifier.NewRedisNotifier(rdb, cfg.EventChannel)
	}
	loans := repo.NewLoanRepository(gdb)
	tx := repo.NewGormUoW(gdb)

	lendingUC := lending.NewUsecase(loans, tx, cfg.CustodianID, cfg.OperatorID, events)
	adminUC := admin.NewUsecase(tx, cfg.AdminID, events)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(lendingUC)
	ah := httpadp.NewAdminHandler(adminUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// routes
	e.GET("/health", h.Health)

	idem := axmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	loansG := e.Group("/loans", idem)
	loansG.POST("", lh.CreateLoan)
	loansG.POST("/:loan_id/approve", lh.ApproveLoan)
	loansG.POST("/:loan_id/cancel", lh.CancelLoan)
	loansG.POST("/:loan_id/pay", lh.PayLoan)
	loansG.POST("/:loan_id/extend", lh.ExtendLoan)
	loansG.POST("/:loan_id/withdraw", lh.WithdrawItems)
	loansG.GET("/:loan_id", lh.GetLoan)
	loansG.GET("/:loan_id/status", lh.GetStatus)
	loansG.GET("/:loan_id/payments", lh.GetNrOfPayments)

	adminG := e.Group("/admin", idem)
	adminG.PUT("/ltv", ah.SetLTV)
	adminG.PUT("/interest-to-company", ah.SetInterestRateToCompany)
	adminG.PUT("/interest-to-lender", ah.SetInterestRateToLender)
	adminG.GET("/parameters", ah.GetParameters)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
