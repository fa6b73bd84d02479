package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/domain/ports"
)

// SnapshotHandler stores and restores validated catalogs.
type SnapshotHandler struct {
	store ports.CatalogStore
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(store ports.CatalogStore) *SnapshotHandler {
	return &SnapshotHandler{store: store}
}

// SnapshotResult describes a saved snapshot.
type SnapshotResult struct {
	Dynasties int
	Rulers    int
	Details   int
}

// Save replaces the stored snapshot with catalog.
func (h *SnapshotHandler) Save(ctx context.Context, catalog *entities.Catalog) (*SnapshotResult, error) {
	if err := h.store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}
	if err := h.store.SaveCatalog(ctx, catalog); err != nil {
		return nil, fmt.Errorf("saving catalog: %w", err)
	}

	result := &SnapshotResult{
		Dynasties: len(catalog.Dynasties),
		Details:   len(catalog.Details),
	}
	for _, d := range catalog.Dynasties {
		result.Rulers += len(d.Rulers)
	}
	return result, nil
}

// Load reads the stored snapshot.
func (h *SnapshotHandler) Load(ctx context.Context) (*entities.Catalog, error) {
	catalog, err := h.store.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return catalog, nil
}
