package main

import (
	"context"
	"flag"
	"os"

	"github.com/dana/castmatch/internal/config"
	"github.com/dana/castmatch/internal/logger"
	"github.com/dana/castmatch/internal/repository"
	"github.com/dana/castmatch/internal/roster"
)

// ingest loads a roster export (local file or URL), runs it through the
// sanitation pipeline, and upserts the admitted records into the database
// keyed by actor name.
func main() {
	// Initialize logger first (with defaults)
	appLogger := logger.New(&logger.Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "castmatch-ingest",
	})
	logger.SetDefaultLogger(appLogger)

	// Parse command line flags
	filePath := flag.String("file", "", "Path to a roster JSON export")
	url := flag.String("url", "", "URL of a roster JSON export")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	var loader roster.Loader
	switch {
	case *filePath != "":
		loader = roster.NewFileLoader(*filePath)
	case *url != "":
		loader = roster.NewURLLoader(*url)
	case cfg.Roster.URL != "":
		loader = roster.NewURLLoader(cfg.Roster.URL)
	case cfg.Roster.Path != "":
		loader = roster.NewFileLoader(cfg.Roster.Path)
	default:
		appLogger.Error("No roster source given; use -file or -url")
		os.Exit(1)
	}

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}
	repo := repository.NewActorRepository(db)

	ctx := context.Background()

	actors, err := loader.Load(ctx)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load roster")
	}

	appLogger.WithFields(logger.Fields{
		logger.FieldCount: len(actors),
	}).Info("Roster loaded, upserting")

	if err := repo.UpsertBatch(ctx, actors); err != nil {
		appLogger.WithError(err).Fatal("Failed to upsert roster")
	}

	total, err := repo.Count(ctx)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to count roster")
	}

	appLogger.WithFields(logger.Fields{
		"ingested": len(actors),
		"total":    total,
	}).Info("Ingestion completed")
}
