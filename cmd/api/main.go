package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dana/castmatch/internal/api"
	"github.com/dana/castmatch/internal/api/middleware"
	"github.com/dana/castmatch/internal/cache"
	"github.com/dana/castmatch/internal/config"
	"github.com/dana/castmatch/internal/llm"
	"github.com/dana/castmatch/internal/logger"
	"github.com/dana/castmatch/internal/repository"
	"github.com/dana/castmatch/internal/roster"
	"github.com/dana/castmatch/internal/service"
	"github.com/dana/castmatch/internal/storage"
)

func main() {
	// Initialize logger from environment
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	ctx := context.Background()

	// Select generator backend
	generator, err := newGenerator(ctx, &cfg.LLM)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize LLM generator")
	}

	// Initialize roster source
	loader, err := newRosterLoader(cfg)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize roster source")
	}

	// Initialize image storage; type "none" disables uploads
	imageStore, err := storage.NewStorage(&cfg.Storage)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize storage")
	}
	if imageStore != nil {
		if s3store, ok := imageStore.(*storage.S3Storage); ok {
			if err := s3store.EnsureBucket(ctx); err != nil {
				appLogger.WithError(err).Fatal("Failed to ensure storage bucket")
			}
		}
	}

	// Initialize services
	analysisService := service.NewAnalysisService(generator, service.AnalysisConfig{
		TextModel:   cfg.LLM.TextModel,
		VisionModel: cfg.LLM.VisionModel,
	})
	recommendService := service.NewRecommendService(generator, service.RecommendConfig{
		Model: cfg.LLM.RecommendModel,
	})

	// Session store manager
	manager := cache.NewManager(cfg.Session.TTL())
	defer manager.Close()

	// Setup router
	router := api.SetupRouter(manager, analysisService, recommendService, loader, imageStore, appLogger, api.RouterConfig{
		Mode: cfg.Server.Mode,
		CORS: middleware.CORSConfig{
			AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
			AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
		},
		CookieName: cfg.Session.CookieName,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}

// newGenerator selects the structured-output backend by provider name.
func newGenerator(ctx context.Context, cfg *config.LLMConfig) (llm.Generator, error) {
	switch cfg.Provider {
	case "gemini":
		return llm.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.RecommendModel)
	default:
		return llm.NewOpenAIGenerator(cfg.APIKey, cfg.BaseURL, cfg.TextModel), nil
	}
}

// newRosterLoader picks the roster source configured for this deployment.
func newRosterLoader(cfg *config.Config) (roster.Loader, error) {
	switch cfg.Roster.Source {
	case "url":
		return roster.NewURLLoader(cfg.Roster.URL), nil
	case "db":
		db, err := repository.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return roster.NewDBLoader(repository.NewActorRepository(db)), nil
	default:
		return roster.NewFileLoader(cfg.Roster.Path), nil
	}
}
