package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "lendbook/internal/adapter/http"
	appmw "lendbook/internal/adapter/middleware"
	"lendbook/internal/adapter/repository/mysql"
	"lendbook/internal/config"
	"lendbook/internal/infrastructure/cache"
	"lendbook/internal/infrastructure/db"
	clientuc "lendbook/internal/usecase/client"
	loanuc "lendbook/internal/usecase/loan"
	partneruc "lendbook/internal/usecase/partner"
	paymentuc "lendbook/internal/usecase/payment"
	reportuc "lendbook/internal/usecase/report"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	partnerRepo := mysql.NewPartnerRepository(gdb)
	clientRepo := mysql.NewClientRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	partnerUC := partneruc.NewUsecase(partnerRepo)
	clientUC := clientuc.NewUsecase(clientRepo)
	loanUC := loanuc.NewUsecase(loanRepo, clientRepo, txm)
	paymentUC := paymentuc.NewUsecase(txm)
	reportUC := reportuc.NewUsecase(loanRepo, partnerRepo)

	h := httpadp.NewHandler()
	partnerH := httpadp.NewPartnerHandler(partnerUC)
	clientH := httpadp.NewClientHandler(clientUC)
	loanH := httpadp.NewLoanHandler(loanUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC)
	reportH := httpadp.NewReportHandler(reportUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.POST("/partners", partnerH.CreatePartner, idemp)
	e.GET("/partners", partnerH.ListPartners)
	e.GET("/partners/:partner_id", partnerH.GetPartner)
	e.POST("/partners/:partner_id/topups", partnerH.TopUp, idemp)

	e.POST("/clients", clientH.RegisterClient, idemp)
	e.GET("/clients", clientH.ListClients)
	e.GET("/clients/:client_id", clientH.GetClient)

	e.POST("/loans", loanH.CreateLoan, idemp)
	e.GET("/loans", loanH.ListLoans)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.POST("/loans/:loan_id/payments", paymentH.CreatePayment, idemp)

	e.GET("/reports/partners/:partner_id/monthly", reportH.Monthly)
	e.GET("/reports/partners/:partner_id/funded", reportH.TotalFunded)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
