package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"clash-arena/internal/config"
	"clash-arena/internal/database"
	"clash-arena/internal/gateway"
	"clash-arena/internal/handler"
	"clash-arena/internal/logger"
	"clash-arena/internal/notify"
	"clash-arena/internal/repository/postgres"
	"clash-arena/internal/service"
	"clash-arena/internal/worker"

	"github.com/joho/godotenv"

	_ "clash-arena/docs"
)

// @title Clash Arena API
// @version 1.0
// @description Wallet ledger and tournament lifecycle API for the card-game arena
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Setup logger
	log := logger.New(true)

	// Optional .env for local development; the environment wins
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	transactionRepo := postgres.NewTransactionRepository(dbPool)
	paymentRepo := postgres.NewPaymentRepository(dbPool)
	withdrawalRepo := postgres.NewWithdrawalRepository(dbPool)
	couponRepo := postgres.NewCouponRepository(dbPool)
	tournamentRepo := postgres.NewTournamentRepository(dbPool)
	participantRepo := postgres.NewParticipantRepository(dbPool)
	invitationRepo := postgres.NewInvitationRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTxManager(dbPool)

	// Payment gateway selected by configuration
	provider, err := gateway.New(cfg.Gateway)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build payment gateway")
	}

	// Notifications go to the structured log until a delivery pipeline exists
	sink := notify.NewLogSink(log)

	// Services
	ledgerService := service.NewLedgerService(userRepo, transactionRepo, log)
	paymentService := service.NewPaymentService(
		paymentRepo, participantRepo, tournamentRepo,
		ledgerService, txManager, provider, sink,
		cfg.Payment, cfg.Gateway.Bank.CallbackURL, log,
	)
	withdrawalService, err := service.NewWithdrawalService(
		withdrawalRepo, paymentRepo, userRepo,
		ledgerService, txManager, sink, cfg.Payment, log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build withdrawal service")
	}
	couponService := service.NewCouponService(couponRepo, paymentRepo, txManager, log)
	tournamentService := service.NewTournamentService(
		tournamentRepo, participantRepo, invitationRepo, paymentRepo,
		paymentService, couponService, ledgerService, txManager, sink, log,
	)
	matchService := service.NewMatchService(matchRepo, participantRepo, tournamentRepo, txManager, sink, log)
	maintenanceService := service.NewMaintenanceService(paymentRepo, couponRepo, invitationRepo, log)
	verificationService := service.NewVerificationService(paymentRepo, paymentService, provider, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background gateway verification
	verificationWorker := worker.NewVerificationWorker(verificationService, cfg.Worker.VerifyInterval, log)
	verificationWorker.Start(ctx)
	defer verificationWorker.Stop()

	// Expiry sweeps
	sweeper, err := worker.NewSweeper(maintenanceService, cfg.Worker.SweepInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build sweeper")
	}
	if err := sweeper.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start sweeper")
	}
	defer sweeper.Stop()

	// http handler
	h := handler.NewHandler(
		ledgerService, paymentService, withdrawalService,
		couponService, tournamentService, matchService, log,
	)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
