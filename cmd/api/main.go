package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/omarwaleed/optionlens/internal/analytics"
	"github.com/omarwaleed/optionlens/internal/api"
	"github.com/omarwaleed/optionlens/internal/cache"
	"github.com/omarwaleed/optionlens/internal/config"
	"github.com/omarwaleed/optionlens/internal/storage"
	"github.com/omarwaleed/optionlens/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting chain analytics service",
		logger.Int("port", cfg.API.Port),
		logger.Bool("cache_enabled", cfg.Redis.Enabled),
		logger.Int("rate_limit_rps", cfg.API.RateLimitRPS),
	)

	// Initialize chain storage
	store, err := storage.NewPostgresChainStorage(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize chain storage",
			logger.ErrorField(err),
		)
	}
	defer store.Close()

	// Initialize the raw-sample cache when enabled
	var sampleCache *cache.SampleCache
	if cfg.Redis.Enabled {
		sampleCache, err = cache.New(cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to initialize sample cache",
				logger.ErrorField(err),
			)
		}
		defer sampleCache.Close()
	}

	// Initialize analytics service
	service := analytics.NewService(store, sampleCache)

	// Initialize handlers
	analyticsHandler := api.NewAnalyticsHandler(service)
	ingestHandler := api.NewIngestHandler(service)
	auth := api.NewAuthManager(cfg.API.JWTSecret)

	// Set up router
	router := mux.NewRouter()

	// API v1 routes
	v1 := router.PathPrefix("/api/v1").Subrouter()

	// Analytics endpoints
	v1.HandleFunc("/symbols", analyticsHandler.ListSymbols).Methods("GET")
	v1.HandleFunc("/symbols/{symbol}/expirations", analyticsHandler.ListExpirations).Methods("GET")
	v1.HandleFunc("/analytics/{symbol}", analyticsHandler.GetAnalytics).Methods("GET")

	// Ingest endpoint, auth-protected when a JWT secret is configured
	v1.Handle("/chains", api.AuthMiddleware(auth)(http.HandlerFunc(ingestHandler.IngestRecords))).Methods("POST")

	// Health check endpoint
	router.HandleFunc("/health", api.HealthCheck).Methods("GET")

	// Metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Apply middleware
	middlewares := api.ChainMiddleware(
		api.CORSMiddleware(),
		api.RequestIDMiddleware(),
		api.LoggingMiddleware(),
		api.MetricsMiddleware(),
		api.RecoveryMiddleware(),
		api.RateLimitMiddleware(cfg.API.RateLimitRPS),
	)

	handler := middlewares(router)

	// Start HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.API.Port),
		Handler:      handler,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
	}

	go func() {
		logger.Info("Starting HTTP server",
			logger.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server",
				logger.ErrorField(err),
			)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	logger.Info("Shutting down chain analytics service")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Error shutting down HTTP server",
			logger.ErrorField(err),
		)
	}

	logger.Info("Chain analytics service stopped")
}
