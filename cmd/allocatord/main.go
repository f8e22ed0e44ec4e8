package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/api"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/application/services"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/config"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/infrastructure/metrics"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/ficmart-payment-allocator/internal/interfaces/rest/middleware"
)

var configPathF = flag.String("config", "", "Path to an optional YAML config file.")

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configPathF)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting allocator service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	doc, err := api.LoadSpec(ctx)
	if err != nil {
		logger.Error("failed to load openapi spec", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()

	var recorder application.AllocationRecorder = application.NopRecorder{}
	if cfg.Metrics.Enabled {
		knownMethods := append([]string{cfg.Policy.PointsMethodID}, cfg.Metrics.KnownMethods...)
		promRecorder := metrics.NewRecorder(cfg.Metrics.Namespace, knownMethods)
		mux.Handle("GET /metrics", promRecorder.Handler())
		recorder = promRecorder
	}

	policy := services.NewPolicy(
		cfg.Policy.PointsMethodID,
		cfg.Policy.MinPointsPercent,
		cfg.Policy.PartialDiscountPercent,
	)
	allocator := services.NewOrderAllocator(policy)
	logger.Info("allocation policy loaded",
		"points_method_id", allocator.Policy().PointsMethodID,
		"min_points_ratio", allocator.Policy().MinPointsRatio.String(),
		"partial_points_discount", allocator.Policy().PartialPointsDiscount.String(),
	)
	allocationService := services.NewAllocationService(allocator, recorder, logger)

	h := handlers.NewHandlers(allocationService, logger)
	h.RegisterRoutes(mux)
	api.RegisterDocsRoutes(mux)

	validator, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	handler := validator(mux)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
