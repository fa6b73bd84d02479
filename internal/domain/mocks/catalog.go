// Package mocks provides in-memory implementations of the ports for tests.
package mocks

import (
	"context"

	"github.com/ersonp/regnal/internal/domain/entities"
)

// CatalogStore is a mock implementation of ports.CatalogStore.
type CatalogStore struct {
	Catalog *entities.Catalog
	Saves   int
	Closed  bool
	Err     error
}

// NewCatalogStore creates a mock store holding the given catalog.
func NewCatalogStore(catalog *entities.Catalog) *CatalogStore {
	return &CatalogStore{Catalog: catalog}
}

// EnsureSchema creates the storage schema if it doesn't exist.
func (m *CatalogStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// SaveCatalog replaces the stored catalog.
func (m *CatalogStore) SaveCatalog(_ context.Context, catalog *entities.Catalog) error {
	if m.Err != nil {
		return m.Err
	}
	m.Catalog = catalog
	m.Saves++
	return nil
}

// LoadCatalog returns the stored catalog, or an empty one if nothing was saved.
func (m *CatalogStore) LoadCatalog(_ context.Context) (*entities.Catalog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Catalog == nil {
		return &entities.Catalog{Details: map[string]entities.Detail{}}, nil
	}
	return m.Catalog, nil
}

// Close closes the store.
func (m *CatalogStore) Close() error {
	m.Closed = true
	return nil
}
