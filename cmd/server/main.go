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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"ecb-rates/internal/adapter/cache"
	httpRouter "ecb-rates/internal/adapter/http"
	"ecb-rates/internal/adapter/repository"
	"ecb-rates/internal/config"
	"ecb-rates/internal/metrics"
	"ecb-rates/internal/service"
	"ecb-rates/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Log.Level)
	log.Info("Starting exchange rate service")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry)

	rateCache := cache.NewMemoryCache(log.With("component", "cache"))
	feed := repository.NewECBFeed(cfg.Feed.BaseURL, cfg.Feed.Timeout, log.With("component", "feed"), appMetrics)

	exchangeService := service.NewExchangeService(feed, rateCache, log.With("component", "service"), appMetrics,
		service.WithRecentSpan(cfg.Feed.RecentWindow),
	)

	httpLog := log.With("component", "http")
	handler := httpRouter.NewHandler(exchangeService, httpLog)
	router := httpRouter.NewRouter(handler, httpLog, appMetrics, registry, cfg.Server.CORSAllowedOrigins)
	routes := router.SetupRoutes()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      routes,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, cancelRefresh := context.WithCancel(context.Background())
	if cfg.Feed.RefreshRate > 0 {
		go refreshRates(ctx, exchangeService, cfg.Feed.RefreshRate, log.With("component", "refresh"))
	}

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	cancelRefresh()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

// refreshRates keeps the current-day table fresh
func refreshRates(ctx context.Context, service *service.ExchangeService, interval time.Duration, log *logger.Logger) {
	if err := service.Refresh(ctx); err != nil {
		log.Error("Failed to refresh rates at startup", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := service.Refresh(ctx); err != nil {
				// cached tables keep serving until the next tick
				log.Warn("Failed to refresh rates", "error", err)
			}
		case <-ctx.Done():
			log.Info("Stopping rate refresh goroutine")
			return
		}
	}
}
