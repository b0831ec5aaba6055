package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pricelens/backend/config"
	httpDelivery "github.com/pricelens/backend/internal/delivery/http"
	"github.com/pricelens/backend/internal/infrastructure/cache"
	"github.com/pricelens/backend/internal/infrastructure/serp"
	"github.com/pricelens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PriceLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	resultCache := cache.NewFIFOCache(cfg.Cache.Capacity)
	log.Printf("Result cache capacity: %d", cfg.Cache.Capacity)

	serpClient := serp.NewClient(serp.ClientConfig{
		APIKey:         cfg.Search.APIKey,
		BaseURL:        cfg.Search.BaseURL,
		ResultCount:    cfg.Search.ResultCount,
		Timeout:        cfg.Search.Timeout,
		CallsPerSecond: cfg.Search.CallsPerSecond,
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		serpClient.SetDebug(true)
		log.Printf("Search client debug mode enabled")
	}

	log.Printf("Search provider: %s (timeout: %s, %g calls/sec)",
		cfg.Search.BaseURL, cfg.Search.Timeout, cfg.Search.CallsPerSecond)

	// Initialize usecase layer
	resolver := usecase.NewResolutionService(
		resultCache,
		serpClient,
		usecase.ResolutionConfig{
			TolerancePercent:   cfg.Resolver.TolerancePercent,
			WidenPercent:       cfg.Resolver.WidenPercent,
			MaxFallbackWords:   cfg.Resolver.MaxFallbackWords,
			RoundDelay:         cfg.Resolver.RoundDelay,
			SearchTimeout:      cfg.Search.Timeout,
			EnableDebugLogging: cfg.Resolver.Debug,
		},
	)

	log.Printf("Resolver: tolerance=%.0f%%, widen=%.0f%%, round delay=%s, workers=%d",
		cfg.Resolver.TolerancePercent,
		cfg.Resolver.WidenPercent,
		cfg.Resolver.RoundDelay,
		cfg.Resolver.BatchWorkers)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(resolver, cfg.Resolver.BatchWorkers)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
