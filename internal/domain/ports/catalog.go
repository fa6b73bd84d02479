// Package ports defines interfaces for external catalog storage.
package ports

import (
	"context"

	"github.com/ersonp/regnal/internal/domain/entities"
)

// CatalogReader loads a previously stored catalog.
type CatalogReader interface {
	// LoadCatalog returns the stored catalog with dynasty and ruler order preserved.
	LoadCatalog(ctx context.Context) (*entities.Catalog, error)
}

// CatalogWriter persists a validated catalog.
type CatalogWriter interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// SaveCatalog replaces the stored catalog with the given one.
	SaveCatalog(ctx context.Context, catalog *entities.Catalog) error
}

// CatalogStore is a readable and writable catalog snapshot.
type CatalogStore interface {
	CatalogReader
	CatalogWriter

	// Close releases the underlying connection.
	Close() error
}
