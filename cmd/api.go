package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/CameronXie/store-api/internal/api/rest"
	"github.com/CameronXie/store-api/internal/api/rest/handlers"
	"github.com/CameronXie/store-api/internal/api/rest/middlewares"
	"github.com/CameronXie/store-api/internal/config"
	"github.com/CameronXie/store-api/internal/repository/gormstore"
	"github.com/CameronXie/store-api/internal/version"
)

const ConfigPathEnv = "STORE_CONFIG"

func main() {
	configPath := flag.String("config", os.Getenv(ConfigPathEnv), "path to the YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("api_failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stdout, &cfg.Logging).With(
		slog.String("version", version.Version),
	)
	logger.Info("api_starting", "driver", cfg.Database.Driver)

	db, err := gormstore.Open(cfg.Database.StoreConfig())
	if err != nil {
		return fmt.Errorf("open_store: %w", err)
	}
	defer func() {
		if err := gormstore.Close(db); err != nil {
			logger.Error("store_close_failed", "error", err)
		}
	}()

	mux := rest.NewMuxWithHandlers(
		&rest.RouterConfig{
			CustomerHandler: handlers.NewCustomerHandler(gormstore.NewCustomerRepository(db), logger),
			ProductHandler:  handlers.NewProductHandler(gormstore.NewProductRepository(db), logger),
			OrderHandler:    handlers.NewOrderHandler(gormstore.NewOrderRepository(db), logger),
			Middlewares: []middlewares.Middleware{
				middlewares.NewRequestLoggingMiddleware(logger),
				middlewares.NewRecoveryMiddleware(logger),
			},
		},
	)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("api_listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("api_shutting_down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newLogger builds the process logger in the configured format and level.
func newLogger(w io.Writer, cfg *config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	if cfg.Format == config.FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}
