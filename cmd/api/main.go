package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"library-lending/config"
	_ "library-lending/docs" // Swagger docs
	auditRepo "library-lending/internal/audit/repository/postgre"
	"library-lending/internal/httpserver"
	"library-lending/internal/lending"
	lendingRepo "library-lending/internal/lending/repository/postgre"
	lendingUC "library-lending/internal/lending/usecase"
	memberRepo "library-lending/internal/member/repository/postgre"
	"library-lending/internal/otp"
	"library-lending/internal/session"
	"library-lending/pkg/log"
	"library-lending/pkg/notify"
)

// @title       Library Lending API
// @description OTP-verified library lending: catalog, loan requests, approvals, returns and audit.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting library lending service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres: %v", err)
		return
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		logger.Fatalf(ctx, "Failed to reach postgres: %v", err)
		return
	}
	cancel()

	// 4. Shared infrastructure
	sessions := session.NewStore(cfg.OTP.SessionCacheSize, cfg.OTP.SessionTTL)

	var notifier notify.Sender
	if cfg.Notify.GatewayURL != "" {
		notifier = notify.NewClient(cfg.Notify.GatewayURL, cfg.Notify.APIKey, cfg.Notify.Sender)
	} else {
		logger.Warn(ctx, "No notification gateway configured, codes and notices will not be delivered")
	}

	lendingConfig := lending.Config{
		PendingHoldTTL:      cfg.Lending.PendingHoldTTL,
		DigitalWeeklyLimit:  cfg.Lending.DigitalWeeklyLimit,
		DigitalMonthlyLimit: cfg.Lending.DigitalMonthlyLimit,
	}

	// 5. Background sweeper over its own lending engine instance
	sweepUC := lendingUC.New(
		lendingRepo.New(db, logger),
		memberRepo.New(db, logger),
		auditRepo.New(db, logger),
		sessions,
		notifier,
		lendingConfig,
		logger,
	)
	sweeper := lending.NewSweeper(sweepUC, cfg.Sweep.Interval, logger)
	go sweeper.Run(ctx)

	// 6. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Sessions:    sessions,
		Notifier:    notifier,
		OTP: otp.Config{
			CodeTTL:         cfg.OTP.CodeTTL,
			IssuesPerMinute: cfg.OTP.IssuesPerMinute,
		},
		Lending:  lendingConfig,
		StaffKey: cfg.Admin.StaffKey,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
