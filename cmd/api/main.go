package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-ledger-core/config"
	httpHandler "bank-ledger-core/internal/adapter/http/handler"
	"bank-ledger-core/internal/adapter/storage/memory"
	"bank-ledger-core/internal/exchange"
	"bank-ledger-core/internal/seed"
	"bank-ledger-core/internal/service"
	"bank-ledger-core/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting ledger core")

	// Conversion table, validated before first use
	specs := make([]exchange.RateSpec, 0, len(cfg.Rates))
	for _, r := range cfg.Rates {
		specs = append(specs, exchange.RateSpec{From: r.From, To: r.To, Rate: r.Rate})
	}
	rates, err := exchange.FromSpecs(specs)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid rate configuration")
	}

	// In-memory account store, seeded once for the process lifetime
	store := memory.NewAccountStore()
	openedAt := time.Now().UTC()
	if err := seed.Load(store, openedAt); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed accounts")
	}
	log.Info().Int("accounts", len(store.GetAll())).Msg("Accounts seeded")

	txnSvc := service.NewTransactionService(store, rates, log)
	savingsSvc := service.NewSavingsService(store, openedAt, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TxnSvc:     txnSvc,
		SavingsSvc: savingsSvc,
		Logger:     log,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
