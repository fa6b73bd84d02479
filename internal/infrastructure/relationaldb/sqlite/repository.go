// Package sqlite provides a SQLite implementation of the catalog store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/regnal/internal/domain/entities"
	"github.com/ersonp/regnal/internal/infrastructure/config"
)

// Repository implements ports.CatalogStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository opens the snapshot database named by cfg.SQLite.
func NewRepository(cfg config.DataConfig) (*Repository, error) {
	if cfg.SQLite == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.SQLite)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// A single connection keeps :memory: databases coherent and serializes writers.
	db.SetMaxOpenConns(1)

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.SQLite,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Dynasties in authored order
	CREATE TABLE IF NOT EXISTS dynasties (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		era TEXT NOT NULL,
		start_year INTEGER NOT NULL,
		end_year INTEGER NOT NULL
	);

	-- Rulers in succession order within their dynasty
	CREATE TABLE IF NOT EXISTS rulers (
		id TEXT PRIMARY KEY,
		dynasty_position INTEGER NOT NULL REFERENCES dynasties(position) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		dynasty TEXT NOT NULL,
		era TEXT NOT NULL,
		religion TEXT NOT NULL,
		reign_start INTEGER NOT NULL,
		reign_end INTEGER NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		UNIQUE(dynasty_position, position)
	);
	CREATE INDEX IF NOT EXISTS idx_rulers_dynasty ON rulers(dynasty_position, position);

	-- Curated details; list columns hold JSON arrays
	CREATE TABLE IF NOT EXISTS details (
		ruler_id TEXT PRIMARY KEY REFERENCES rulers(id) ON DELETE CASCADE,
		biography TEXT NOT NULL,
		achievements TEXT NOT NULL,
		sources TEXT NOT NULL,
		suggested_reading TEXT NOT NULL DEFAULT ''
	);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

// SaveCatalog replaces the stored catalog in a single transaction.
func (r *Repository) SaveCatalog(ctx context.Context, catalog *entities.Catalog) error {
	if catalog == nil {
		return errors.New("catalog is required")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	// Children first so the delete order doesn't depend on cascades.
	for _, table := range []string{"details", "rulers", "dynasties"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertDynasties(ctx, tx, catalog.Dynasties); err != nil {
		return err
	}
	if err := insertDetails(ctx, tx, catalog.Details); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertDynasties(ctx context.Context, tx *sql.Tx, dynasties []entities.Dynasty) error {
	dynastyStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO dynasties (position, name, era, start_year, end_year)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing dynasty insert: %w", err)
	}
	defer dynastyStmt.Close()

	rulerStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rulers (id, dynasty_position, position, name, dynasty, era, religion, reign_start, reign_end, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing ruler insert: %w", err)
	}
	defer rulerStmt.Close()

	for i, d := range dynasties {
		if _, err := dynastyStmt.ExecContext(ctx, i, d.Name, string(d.Era), d.StartYear, d.EndYear); err != nil {
			return fmt.Errorf("inserting dynasty %q: %w", d.Name, err)
		}
		for j, ruler := range d.Rulers {
			_, err := rulerStmt.ExecContext(ctx,
				ruler.ID, i, j, ruler.Name, ruler.Dynasty,
				string(ruler.Era), string(ruler.Religion),
				ruler.ReignStart, ruler.ReignEnd, ruler.Notes,
			)
			if err != nil {
				return fmt.Errorf("inserting ruler %q: %w", ruler.ID, err)
			}
		}
	}
	return nil
}

func insertDetails(ctx context.Context, tx *sql.Tx, details map[string]entities.Detail) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO details (ruler_id, biography, achievements, sources, suggested_reading)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing detail insert: %w", err)
	}
	defer stmt.Close()

	for id, d := range details {
		achievements, err := json.Marshal(d.Achievements)
		if err != nil {
			return fmt.Errorf("marshaling achievements: %w", err)
		}
		sources, err := json.Marshal(d.Sources)
		if err != nil {
			return fmt.Errorf("marshaling sources: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, id, d.Biography, string(achievements), string(sources), d.SuggestedReading); err != nil {
			return fmt.Errorf("inserting detail %q: %w", id, err)
		}
	}
	return nil
}

// LoadCatalog reads the stored catalog with dynasty and ruler order preserved.
func (r *Repository) LoadCatalog(ctx context.Context) (*entities.Catalog, error) {
	dynasties, byPosition, err := r.loadDynasties(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.loadRulers(ctx, byPosition); err != nil {
		return nil, err
	}
	details, err := r.loadDetails(ctx)
	if err != nil {
		return nil, err
	}

	catalog := &entities.Catalog{
		Dynasties: make([]entities.Dynasty, 0, len(dynasties)),
		Details:   details,
	}
	for _, d := range dynasties {
		catalog.Dynasties = append(catalog.Dynasties, *d)
	}
	return catalog, nil
}

// loadDynasties returns dynasties ordered by position, plus a position index.
func (r *Repository) loadDynasties(ctx context.Context) ([]*entities.Dynasty, map[int]*entities.Dynasty, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT position, name, era, start_year, end_year
		FROM dynasties
		ORDER BY position`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying dynasties: %w", err)
	}
	defer rows.Close()

	var dynasties []*entities.Dynasty
	byPosition := make(map[int]*entities.Dynasty)
	for rows.Next() {
		var pos int
		var era string
		d := &entities.Dynasty{Rulers: []entities.Ruler{}}
		if err := rows.Scan(&pos, &d.Name, &era, &d.StartYear, &d.EndYear); err != nil {
			return nil, nil, fmt.Errorf("scanning dynasty: %w", err)
		}
		d.Era = entities.Era(era)
		dynasties = append(dynasties, d)
		byPosition[pos] = d
	}
	return dynasties, byPosition, rows.Err()
}

// loadRulers attaches rulers to their dynasties in stored order.
func (r *Repository) loadRulers(ctx context.Context, byPosition map[int]*entities.Dynasty) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT dynasty_position, id, name, dynasty, era, religion, reign_start, reign_end, notes
		FROM rulers
		ORDER BY dynasty_position, position`)
	if err != nil {
		return fmt.Errorf("querying rulers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pos int
		var ruler entities.Ruler
		var era, religion string
		if err := rows.Scan(&pos, &ruler.ID, &ruler.Name, &ruler.Dynasty, &era, &religion,
			&ruler.ReignStart, &ruler.ReignEnd, &ruler.Notes); err != nil {
			return fmt.Errorf("scanning ruler: %w", err)
		}
		ruler.Era = entities.Era(era)
		ruler.Religion = entities.Religion(religion)

		d, ok := byPosition[pos]
		if !ok {
			return fmt.Errorf("ruler %q references unknown dynasty position %d", ruler.ID, pos)
		}
		d.Rulers = append(d.Rulers, ruler)
	}
	return rows.Err()
}

// loadDetails reads every curated detail keyed by ruler id.
func (r *Repository) loadDetails(ctx context.Context) (map[string]entities.Detail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ruler_id, biography, achievements, sources, suggested_reading
		FROM details`)
	if err != nil {
		return nil, fmt.Errorf("querying details: %w", err)
	}
	defer rows.Close()

	details := make(map[string]entities.Detail)
	for rows.Next() {
		var id, achievements, sources string
		var d entities.Detail
		if err := rows.Scan(&id, &d.Biography, &achievements, &sources, &d.SuggestedReading); err != nil {
			return nil, fmt.Errorf("scanning detail: %w", err)
		}
		if err := json.Unmarshal([]byte(achievements), &d.Achievements); err != nil {
			return nil, fmt.Errorf("unmarshaling achievements for %s: %w", id, err)
		}
		if err := json.Unmarshal([]byte(sources), &d.Sources); err != nil {
			return nil, fmt.Errorf("unmarshaling sources for %s: %w", id, err)
		}
		details[id] = d
	}
	return details, rows.Err()
}

// Counts returns the number of stored dynasties, rulers and details.
func (r *Repository) Counts(ctx context.Context) (dynasties, rulers, details int, err error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM dynasties),
			(SELECT COUNT(*) FROM rulers),
			(SELECT COUNT(*) FROM details)`)
	if err := row.Scan(&dynasties, &rulers, &details); err != nil {
		return 0, 0, 0, fmt.Errorf("counting catalog rows: %w", err)
	}
	return dynasties, rulers, details, nil
}
