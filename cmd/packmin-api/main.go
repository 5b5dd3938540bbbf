// README: Entry point; loads config, wires the planner, starts the HTTP server.
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

	"packmin/internal/ai"
	"packmin/internal/config"
	httptransport "packmin/internal/http"
	"packmin/internal/infra"
	"packmin/internal/modules/history"
	"packmin/internal/service"
	"packmin/internal/weather"
)

func main() {
	cfg := config.Load()
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			log.Printf("config: %s", e)
		}
		log.Fatal("invalid configuration")
	}

	logger, err := infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewProvider(ctx, cfg)
	if err != nil {
		logger.Fatal("provider init", zap.Error(err))
	}
	if closer, ok := provider.(interface{ Close() }); ok {
		defer closer.Close()
	}

	var store *history.Store
	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Fatal("postgres init", zap.Error(err))
		}
		defer pool.Close()

		store = history.NewStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal("history schema", zap.Error(err))
		}
	}

	planner := service.NewPlanner(cfg, provider, weather.NewService(cfg.OpenWeatherKey, logger), store, logger)

	srv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(httptransport.ServerDeps{
			Planner: planner,
			History: store,
			Log:     logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTP.Addr), zap.String("provider", provider.Name()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
