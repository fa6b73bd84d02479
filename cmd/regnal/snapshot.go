package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ersonp/regnal/internal/application/handlers"
	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/infrastructure/config"
	"github.com/ersonp/regnal/internal/infrastructure/relationaldb/sqlite"
)

// writeSnapshot replaces the snapshot at path with catalog and reports the
// rows the database now holds.
func writeSnapshot(ctx context.Context, out io.Writer, path string, catalog *entities.Catalog) error {
	repo, err := sqlite.NewRepository(config.DataConfig{SQLite: path})
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer repo.Close()

	if _, err := handlers.NewSnapshotHandler(repo).Save(ctx, catalog); err != nil {
		return err
	}

	dynasties, rulers, details, err := repo.Counts(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %d dynasties, %d rulers, %d details to %s\n", dynasties, rulers, details, repo.Path())
	return nil
}
