// Package cache keeps fetched NY Fed fixings in a local sqlite database so
// reruns do not refetch history that is already on disk.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Register sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/EmilienVaast/STIR-Futures/marketdata"
)

// Cache is a sqlite-backed fixings store, one row per (series, date).
type Cache struct {
	db  *sql.DB
	log zerolog.Logger
}

// DefaultPath resolves the cache file location: $STIR_DATA_DIR/fixings.db,
// falling back to ./data/fixings.db. The directory is created if missing.
func DefaultPath() (string, error) {
	dir := os.Getenv("STIR_DATA_DIR")
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cache: create data dir: %w", err)
	}
	return filepath.Join(dir, "fixings.db"), nil
}

// Open opens (and if necessary initializes) the cache database at path.
func Open(path string, log zerolog.Logger) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	c := &Cache{db: db, log: log}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) initSchema() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS fixings(
		series TEXT NOT NULL,
		date   TEXT NOT NULL,
		rate   REAL NOT NULL,
		PRIMARY KEY (series, date)
	)`)
	if err != nil {
		return fmt.Errorf("cache: init schema: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (c *Cache) Close() error { return c.db.Close() }

// Save upserts a series, last value winning per date.
func (c *Cache) Save(ctx context.Context, name string, s marketdata.Series) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cache: begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO fixings(series, date, rate) VALUES(?,?,?)
		ON CONFLICT(series, date) DO UPDATE SET rate=excluded.rate`)
	if err != nil {
		return fmt.Errorf("cache: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, f := range s.Normalize() {
		if _, err := stmt.ExecContext(ctx, name, f.Date.Format("2006-01-02"), f.Rate); err != nil {
			return fmt.Errorf("cache: upsert %s %s: %w", name, f.Date.Format("2006-01-02"), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cache: commit: %w", err)
	}
	return nil
}

// Load returns the cached series clipped to [start, end]; zero bounds are open.
func (c *Cache) Load(ctx context.Context, name string, start, end time.Time) (marketdata.Series, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT date, rate FROM fixings WHERE series=? ORDER BY date ASC`, name)
	if err != nil {
		return nil, fmt.Errorf("cache: load %s: %w", name, err)
	}
	defer rows.Close()

	var out marketdata.Series
	for rows.Next() {
		var dateStr string
		var rate float64
		if err := rows.Scan(&dateStr, &rate); err != nil {
			return nil, fmt.Errorf("cache: scan %s: %w", name, err)
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		out = append(out, marketdata.Fixing{Date: date, Rate: rate})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cache: iterate %s: %w", name, err)
	}
	return out.Clip(start, end), nil
}

// Get returns the series over [start, end], fetching and merging into the
// cache when the cached span does not cover the request or refresh is set.
func (c *Cache) Get(ctx context.Context, name string, fetch marketdata.Fetcher, start, end time.Time, refresh bool) (marketdata.Series, error) {
	var cached marketdata.Series
	if !refresh {
		full, err := c.Load(ctx, name, time.Time{}, time.Time{})
		if err != nil {
			return nil, err
		}
		cached = full
	}

	if cached.Covers(start, end) {
		c.log.Debug().Str("series", name).Int("rows", len(cached)).Msg("cache hit")
		return cached.Clip(start, end), nil
	}

	fetched, err := fetch(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("cache: refresh %s: %w", name, err)
	}
	merged := cached.Merge(fetched)
	if err := c.Save(ctx, name, merged); err != nil {
		return nil, err
	}
	c.log.Info().Str("series", name).Int("fetched", len(fetched)).Int("total", len(merged)).
		Msg("cache refreshed")
	return merged.Clip(start, end), nil
}
