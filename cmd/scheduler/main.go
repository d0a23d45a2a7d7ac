package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/campus-scheduler/internal/application"
	"github.com/example/campus-scheduler/internal/config"
	httptransport "github.com/example/campus-scheduler/internal/http"
	"github.com/example/campus-scheduler/internal/persistence/sqlite"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo catalog data and exit")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	storage, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := storage.Migrate(context.Background()); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	if *seed {
		if err := seedDemoData(ctx, storage, logger); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
		logger.Info("demo data seeded")
		return
	}

	now := time.Now

	assignmentService := application.NewAssignmentService(storage, now, logger)
	requestService := application.NewRequestService(storage, now, logger)
	catalogService := application.NewCatalogService(storage, logger)
	blackoutService := application.NewBlackoutService(storage, now, logger)

	authenticator, err := application.NewStaticAuthenticator(cfg.AdminPassword, cfg.SecretaryPassword)
	if err != nil {
		logger.Error("failed to initialize authenticator", "error", err)
		os.Exit(1)
	}

	handler := httptransport.NewRouter(httptransport.RouterConfig{
		Assignments: httptransport.NewAssignmentHandler(assignmentService, logger),
		Requests:    httptransport.NewRequestHandler(requestService, logger),
		Catalog:     httptransport.NewCatalogHandler(catalogService, logger),
		Blackouts:   httptransport.NewBlackoutHandler(blackoutService, logger),
		Auth:        httptransport.NewAuthHandler(authenticator, logger),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("scheduler API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}
