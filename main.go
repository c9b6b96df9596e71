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

	"github.com/akash4797/secure-encryption-decyrption-app/internal/auth"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/config"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/fieldcipher"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/handlers"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/logging"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/profile"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/store/sqlstore"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.GenerateKeys {
		pub, priv, err := fieldcipher.GenerateKeyPEM(2048)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(pub)
		fmt.Print(priv)
		return
	}

	logger := logging.NewJSON(os.Stdout, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	cipher, err := fieldcipher.LoadKeys(cfg.PublicKey, cfg.PrivateKey)
	if err != nil {
		return err
	}
	tokens, err := auth.NewTokenService(cfg.SecretKey)
	if err != nil {
		return err
	}

	// Initialize Database
	store, err := sqlstore.New(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer store.Close()

	profiles := profile.NewService(store, auth.NewHasher(cfg.BcryptCost), cipher, tokens, logger)
	router := handlers.NewRouter(handlers.RouterConfig{
		Profiles:  profiles,
		Verifier:  tokens,
		Logger:    logger,
		StaticDir: cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting server", "addr", cfg.Addr, "driver", cfg.DatabaseDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
