package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/mealscan/backend/config"
	"github.com/mealscan/backend/internal/catalog"
	httpDelivery "github.com/mealscan/backend/internal/delivery/http"
	"github.com/mealscan/backend/internal/infrastructure/sqlite"
	"github.com/mealscan/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Infow("starting mealscan backend",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"storage_path", cfg.Storage.Path,
		"nutrient_db_version", catalog.NutrientDBVersion,
	)

	// Initialize storage. An empty path runs the service on the static
	// fallback catalog with an in-memory store, so meals survive only for
	// the process lifetime.
	var store *sqlite.Store
	if cfg.Storage.Path != "" {
		store, err = sqlite.NewStore(cfg.Storage.Path)
		if err != nil {
			logger.Fatalw("failed to open storage", "path", cfg.Storage.Path, "error", err)
		}
		defer store.Close()
	} else {
		logger.Warnw("no storage path configured, using in-memory storage")
		store, err = sqlite.NewStore(":memory:")
		if err != nil {
			logger.Fatalw("failed to open in-memory storage", "error", err)
		}
	}

	loader := catalog.NewLoader(store, logger)

	// Initialize usecase layer
	mappingService := usecase.NewMappingService(
		loader,
		store,
		usecase.MappingServiceConfig{
			MinOverlapThreshold: cfg.Matching.MinOverlapThreshold,
			EnableDebugLogging:  cfg.Matching.DebugLogging,
		},
		logger,
	)

	logger.Infow("matching configured",
		"min_overlap_threshold", cfg.Matching.MinOverlapThreshold,
		"debug_logging", cfg.Matching.DebugLogging,
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(mappingService, store, logger)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Infow("server listening", "addr", addr)

	if err := router.Run(addr); err != nil {
		logger.Fatalw("server failed", "error", err)
	}
}

func newLogger(environment string) (*zap.SugaredLogger, error) {
	var zapLogger *zap.Logger
	var err error
	if environment == "production" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return zapLogger.Sugar(), nil
}
