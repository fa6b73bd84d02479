package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ersonp/regnal/internal/application/handlers"
	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/domain/services"
	"github.com/ersonp/regnal/internal/infrastructure/config"
	"github.com/ersonp/regnal/internal/infrastructure/dataset"
	"github.com/ersonp/regnal/internal/infrastructure/logging"
	"github.com/ersonp/regnal/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and the catalog source are internal.
type Deps struct {
	Config *config.Config
	Log    *slog.Logger

	// DefaultView is the configured initial view.
	DefaultView entities.ViewParams

	// Catalog is the validated catalog every handler reads.
	Catalog *entities.Catalog

	ViewHandler     *handlers.ViewHandler
	DetailHandler   *handlers.DetailHandler
	TimelineHandler *handlers.TimelineHandler
	StatsHandler    *handlers.StatsHandler
}

// withDeps loads config, builds the catalog and handlers, then calls fn.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyGlobalFlags(cwd, cfg)

	log, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	defaults, err := cfg.View.Params()
	if err != nil {
		return fmt.Errorf("reading view config: %w", err)
	}

	catalog, err := loadCatalog(ctx, log, cfg.Data)
	if err != nil {
		return err
	}

	catalogService := services.NewCatalogService(catalog)
	queryService := services.NewQueryService()
	detailService := services.NewDetailService(catalogService.Details())
	timelineService := services.NewTimelineService()

	return fn(&Deps{
		Config:          cfg,
		Log:             log,
		DefaultView:     defaults,
		Catalog:         catalog,
		ViewHandler:     handlers.NewViewHandler(catalogService, queryService),
		DetailHandler:   handlers.NewDetailHandler(catalogService, detailService),
		TimelineHandler: handlers.NewTimelineHandler(catalogService, timelineService),
		StatsHandler:    handlers.NewStatsHandler(catalogService),
	})
}

// applyGlobalFlags lets --data and --from-sqlite override the configured source.
func applyGlobalFlags(cwd string, cfg *config.Config) {
	if globalVerbose {
		cfg.Log.Level = "debug"
	}
	if len(globalData) > 0 {
		cfg.Data.Paths = globalData
		cfg.Data.SQLite = ""
	}
	if globalSQLite != "" {
		cfg.Data.SQLite = globalSQLite
	}

	for i, p := range cfg.Data.Paths {
		cfg.Data.Paths[i] = config.ResolvePath(cwd, p)
	}
	cfg.Data.SQLite = config.ResolvePath(cwd, cfg.Data.SQLite)
}

func newLogger(cfg config.LogConfig) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(os.Stderr, level, cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return log, nil
}

// loadCatalog reads the snapshot, the configured files, or the built-in data set.
func loadCatalog(ctx context.Context, log *slog.Logger, cfg config.DataConfig) (*entities.Catalog, error) {
	if cfg.SQLite != "" {
		return loadSnapshot(ctx, log, cfg)
	}

	importHandler := handlers.NewImportHandler(services.NewImportService())

	var (
		result *handlers.ImportResult
		err    error
	)
	if len(cfg.Paths) > 0 {
		result, err = importHandler.Handle(ctx, cfg.Paths, handlers.ImportOptions{Format: "auto"})
	} else {
		raw, derr := dataset.Default()
		if derr != nil {
			return nil, fmt.Errorf("loading built-in data set: %w", derr)
		}
		result, err = importHandler.HandleRaw(ctx, raw, handlers.ImportOptions{})
	}
	if err != nil {
		return nil, err
	}

	for _, e := range result.Errors {
		log.Warn("skipped invalid record", slog.String("error", e.Error()))
	}
	log.Debug("catalog loaded",
		slog.Int("dynasties", result.Dynasties),
		slog.Int("rulers", result.Rulers),
		slog.Int("details", result.Details),
	)

	return result.Catalog, nil
}

func loadSnapshot(ctx context.Context, log *slog.Logger, cfg config.DataConfig) (*entities.Catalog, error) {
	repo, err := sqlite.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer repo.Close()

	catalog, err := handlers.NewSnapshotHandler(repo).Load(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug("catalog loaded from snapshot", slog.String("path", cfg.SQLite))
	return catalog, nil
}
