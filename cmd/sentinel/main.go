package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/sentinel/internal/api"
	"github.com/AlexZinkM/sentinel/internal/client"
	"github.com/AlexZinkM/sentinel/internal/config"
	"github.com/AlexZinkM/sentinel/internal/handler"
	"github.com/AlexZinkM/sentinel/internal/logger"
	"github.com/AlexZinkM/sentinel/internal/store"
	"github.com/AlexZinkM/sentinel/solana"

	"go.uber.org/zap"
)

// @title        Sentinel API
// @version      1.0
// @description  Local custody of Solana wallet keys
// @BasePath     /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.NewSQLiteStore(ctx, cfg.DatabasePath, log)
	if err != nil {
		return err
	}
	defer db.Close()

	manager, err := unlock(ctx, db)
	if err != nil {
		return err
	}
	defer manager.Close()
	log.Info("wallet store unlocked", zap.String("database", cfg.DatabasePath))

	rpc := client.NewSolanaClient(cfg)
	router := api.SetupRouter(handler.NewWalletHandler(manager, db, rpc, cfg, log))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
	}
	return nil
}

// unlock prompts for the master password and derives the master key from it.
func unlock(ctx context.Context, params store.ParamsStore) (*solana.WalletManager, error) {
	password, err := config.PromptForPassword("Master password: ")
	if err != nil {
		return nil, err
	}
	defer clear(password)

	return solana.Unlock(ctx, params, password)
}
