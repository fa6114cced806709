// Package profile persists named natal charts in a local SQLite catalog so
// analyses can refer to people by name instead of file path.
package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/lunastra/concord/internal/chart"
)

// ErrNotFound is returned when no chart with the requested name exists.
var ErrNotFound = errors.New("chart not found")

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS charts (
    name       TEXT PRIMARY KEY,
    ascendant  REAL NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS planets (
    chart_name TEXT NOT NULL,
    planet     TEXT NOT NULL,
    longitude  REAL NOT NULL,
    latitude   REAL NOT NULL DEFAULT 0,
    speed      REAL NOT NULL DEFAULT 0,
    PRIMARY KEY (chart_name, planet)
);

CREATE TABLE IF NOT EXISTS houses (
    chart_name TEXT NOT NULL,
    idx        INTEGER NOT NULL,
    cusp       REAL NOT NULL,
    PRIMARY KEY (chart_name, idx)
);
`

// Entry summarizes one stored chart for listings.
type Entry struct {
	Name      string
	Planets   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is a SQLite-backed chart catalog in WAL mode.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database at dbPath, enables WAL mode and
// busy timeout, and creates the schema tables if they do not exist. Parent
// directories are created as needed.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("profile: create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("profile: open database: %w", err)
	}

	// Limit to one connection. SQLite only supports a single writer; using
	// one connection avoids SQLITE_BUSY contention between pooled connections
	// that each need their own PRAGMA setup. WAL mode still benefits external
	// readers and provides crash-safe writes.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("profile: enable WAL mode: %w", err)
	}

	// Busy timeout avoids SQLITE_BUSY under concurrent access from external processes.
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("profile: set busy timeout: %w", err)
	}

	// Create tables idempotently.
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("profile: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save upserts a chart under the given name, replacing any previous planet
// and house rows in a single transaction.
func (s *Store) Save(ctx context.Context, name string, c *chart.Chart) error {
	if name == "" {
		return fmt.Errorf("profile: %w: chart name required", chart.ErrValidation)
	}
	if err := c.Validate(name); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("profile: begin tx for %q: %w", name, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	const upsert = `
		INSERT INTO charts (name, ascendant, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET ascendant = excluded.ascendant, updated_at = CURRENT_TIMESTAMP`
	if _, err := tx.ExecContext(ctx, upsert, name, c.Ascendant); err != nil {
		return fmt.Errorf("profile: upsert chart %q: %w", name, err)
	}

	// Replace dependent rows wholesale; partial updates are not worth the
	// bookkeeping at this scale.
	if _, err := tx.ExecContext(ctx, "DELETE FROM planets WHERE chart_name = ?", name); err != nil {
		return fmt.Errorf("profile: clear planets for %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM houses WHERE chart_name = ?", name); err != nil {
		return fmt.Errorf("profile: clear houses for %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO planets (chart_name, planet, longitude, latitude, speed) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("profile: prepare planet insert: %w", err)
	}
	defer stmt.Close()
	for _, p := range c.SortedPlanets() {
		pos := c.Planets[p]
		if _, err := stmt.ExecContext(ctx, name, string(p), pos.Longitude, pos.Latitude, pos.Speed); err != nil {
			return fmt.Errorf("profile: insert planet %q/%q: %w", name, p, err)
		}
	}

	hstmt, err := tx.PrepareContext(ctx, "INSERT INTO houses (chart_name, idx, cusp) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("profile: prepare house insert: %w", err)
	}
	defer hstmt.Close()
	for i, cusp := range c.Houses {
		if _, err := hstmt.ExecContext(ctx, name, i+1, cusp); err != nil {
			return fmt.Errorf("profile: insert house %q/%d: %w", name, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("profile: commit chart %q: %w", name, err)
	}
	return nil
}

// Get loads a chart by name, with its Moon nakshatra derived when a Moon is
// stored. Returns ErrNotFound for unknown names.
func (s *Store) Get(ctx context.Context, name string) (*chart.Chart, error) {
	c := &chart.Chart{Planets: make(map[chart.Planet]chart.Position)}

	err := s.db.QueryRowContext(ctx, "SELECT ascendant FROM charts WHERE name = ?", name).Scan(&c.Ascendant)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile: %w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("profile: get chart %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT planet, longitude, latitude, speed FROM planets WHERE chart_name = ?", name)
	if err != nil {
		return nil, fmt.Errorf("profile: query planets for %q: %w", name, err)
	}
	defer rows.Close()
	for rows.Next() {
		var p string
		var pos chart.Position
		if err := rows.Scan(&p, &pos.Longitude, &pos.Latitude, &pos.Speed); err != nil {
			return nil, fmt.Errorf("profile: scan planet: %w", err)
		}
		c.Planets[chart.Planet(p)] = pos
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("profile: iterate planets: %w", err)
	}

	hrows, err := s.db.QueryContext(ctx, "SELECT cusp FROM houses WHERE chart_name = ? ORDER BY idx", name)
	if err != nil {
		return nil, fmt.Errorf("profile: query houses for %q: %w", name, err)
	}
	defer hrows.Close()
	for hrows.Next() {
		var cusp float64
		if err := hrows.Scan(&cusp); err != nil {
			return nil, fmt.Errorf("profile: scan house: %w", err)
		}
		c.Houses = append(c.Houses, cusp)
	}
	if err := hrows.Err(); err != nil {
		return nil, fmt.Errorf("profile: iterate houses: %w", err)
	}

	if moon, ok := c.Planets[chart.Moon]; ok {
		nk, err := chart.NakshatraFromLongitude(moon.Longitude)
		if err != nil {
			return nil, err
		}
		c.Nakshatra = nk
	}
	return c, nil
}

// List returns a summary of every stored chart, ordered by name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	const q = `
		SELECT c.name, COUNT(p.planet), c.created_at, c.updated_at
		FROM charts c LEFT JOIN planets p ON p.chart_name = c.name
		GROUP BY c.name ORDER BY c.name`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("profile: list charts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created, updated string
		if err := rows.Scan(&e.Name, &e.Planets, &created, &updated); err != nil {
			return nil, fmt.Errorf("profile: scan chart entry: %w", err)
		}
		if e.CreatedAt, err = parseTimestamp(created); err != nil {
			return nil, fmt.Errorf("profile: parse created_at: %w", err)
		}
		if e.UpdatedAt, err = parseTimestamp(updated); err != nil {
			return nil, fmt.Errorf("profile: parse updated_at: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("profile: iterate charts: %w", err)
	}
	return entries, nil
}

// Delete removes a chart and its dependent rows. Returns ErrNotFound for
// unknown names.
func (s *Store) Delete(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("profile: begin tx for delete %q: %w", name, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	res, err := tx.ExecContext(ctx, "DELETE FROM charts WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("profile: delete chart %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profile: delete rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("profile: %w: %q", ErrNotFound, name)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM planets WHERE chart_name = ?", name); err != nil {
		return fmt.Errorf("profile: delete planets for %q: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM houses WHERE chart_name = ?", name); err != nil {
		return fmt.Errorf("profile: delete houses for %q: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("profile: commit delete %q: %w", name, err)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// timestampFormats lists the formats SQLite drivers may produce for
// CURRENT_TIMESTAMP. modernc.org/sqlite typically returns RFC 3339
// (with "T" separator and "Z" suffix), while canonical SQLite returns
// the space-separated DateTime format.
var timestampFormats = []string{
	time.RFC3339,
	time.DateTime,
}

// parseTimestamp attempts to parse a SQLite timestamp string using known formats.
func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", s)
}
