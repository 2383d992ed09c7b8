// Command backbeat-server starts the rhythm game HTTP API server.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/beatforge/backbeat/internal/config"
	"github.com/beatforge/backbeat/internal/repository/memory"
	"github.com/beatforge/backbeat/internal/server/httpapi"
	"github.com/beatforge/backbeat/internal/service"
	"github.com/beatforge/backbeat/internal/store"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, wires the store through repositories and
// services, and runs the HTTP server until a shutdown signal arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Flags override environment for local runs.
	addr := flag.String("addr", cfg.Addr, "listen address")
	dev := flag.Bool("dev", cfg.Dev, "development logging")
	flag.Parse()

	var logger *zap.Logger
	if *dev {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", *addr),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The store lives for the whole process; everything downstream gets it
	// injected. All state is lost on restart.
	st := store.New()

	// Repositories
	userRepo := memory.NewUserRepo(st)
	songRepo := memory.NewSongRepo(st)
	sessionRepo := memory.NewSessionRepo(st)
	perfRepo := memory.NewPerformanceRepo(st)
	purchaseRepo := memory.NewPurchaseRepo(st)
	adminRepo := memory.NewAdminRepo(st)
	entitlementRepo := memory.NewEntitlementRepo(st)

	// Services
	userSvc := service.NewUserService(userRepo)
	songSvc := service.NewSongService(songRepo)
	sessionSvc := service.NewSessionService(sessionRepo, perfRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, entitlementRepo, logger)
	adminSvc := service.NewAdminService(adminRepo)
	entitlementSvc := service.NewEntitlementService(entitlementRepo, userRepo)

	api := httpapi.New(userSvc, songSvc, sessionSvc, purchaseSvc, adminSvc, entitlementSvc, logger)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", *addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
			_ = srv.Close()
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
