package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/brand-bridge/internal/config"
	"github.com/xavierca1/brand-bridge/internal/infra/http/handlers"
	"github.com/xavierca1/brand-bridge/internal/infra/http/router"
	"github.com/xavierca1/brand-bridge/internal/infra/integration/brevo"
	"github.com/xavierca1/brand-bridge/internal/logger"
	"github.com/xavierca1/brand-bridge/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logg.Sync()

	if len(cfg.LegacyVars) > 0 {
		logg.Warn("configured through legacy variable names, rename them", zap.Strings("vars", cfg.LegacyVars))
	}

	// 1. CRM gateway
	crm := brevo.NewClient(cfg.Brevo.APIKey, cfg.Brevo.BaseURL, cfg.Brevo.Timeout)

	// 2. UseCases
	subscribeUC := usecase.NewSubscribeLeadUseCase(crm, cfg.Brevo.ListID, logg)
	updateStatusUC := usecase.NewUpdateContactStatusUseCase(crm, logg)

	// 3. Handlers
	leadHandler := handlers.NewLeadHandler(subscribeUC, updateStatusUC, logg)
	healthHandler := handlers.NewHealthHandler(cfg.ServiceName)

	// 4. Router
	r := router.New(router.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Debug:          cfg.Debug,
	}, leadHandler, healthHandler)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		// leaves room for the CRM timeout on top of reading the body
		WriteTimeout: cfg.Brevo.Timeout + 5*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logg.Info("server starting",
			zap.String("service", cfg.ServiceName),
			zap.String("addr", srv.Addr),
			zap.Bool("debug", cfg.Debug),
			zap.Int64("list_id", cfg.Brevo.ListID),
			zap.Strings("endpoints", []string{
				"POST /api/subscribe",
				"POST /api/update-status",
				"GET /api/health",
				"GET /metrics",
			}),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logg.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("graceful shutdown failed", zap.Error(err))
	}
}
