// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/taskmatrix/pkg/types"
)

// Cache is an on-disk SQLite snapshot of the last successful live fetch
// per logical source. Live strategies refresh it; the cache tier of a
// fallback chain reads it when every live tier has failed.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the record cache at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening record cache: %w", err)
	}

	c := &Cache{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			source TEXT NOT NULL,
			position INTEGER NOT NULL,
			id TEXT,
			title TEXT,
			description TEXT,
			start_time TEXT,
			end_time TEXT,
			due TEXT,
			all_day INTEGER NOT NULL DEFAULT 0,
			status TEXT,
			grp TEXT,
			category TEXT,
			PRIMARY KEY (source, position)
		)`,
		`CREATE TABLE IF NOT EXISTS fetches (
			source TEXT PRIMARY KEY,
			fetched_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Put replaces the cached snapshot for source with recs, preserving their
// order, and stamps the fetch time.
func (c *Cache) Put(ctx context.Context, source string, recs []types.RawRecord, fetchedAt time.Time) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE source = ?`, source); err != nil {
		return fmt.Errorf("clearing old snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (source, position, id, title, description, start_time, end_time, due, all_day, status, grp, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range recs {
		allDay := 0
		if r.AllDay {
			allDay = 1
		}
		_, err := stmt.ExecContext(ctx,
			source, i, r.ID, r.Title, r.Description,
			encodeTime(r.Start), encodeTime(r.End), encodeTime(r.Due),
			allDay, r.Status, r.Group, r.Category,
		)
		if err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO fetches (source, fetched_at) VALUES (?, ?)
		 ON CONFLICT(source) DO UPDATE SET fetched_at=excluded.fetched_at`,
		source, fetchedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("stamping fetch time: %w", err)
	}

	return tx.Commit()
}

// Get returns the cached snapshot for source in its original order. An
// unknown source yields an empty slice, which the orchestrator treats as
// a failed tier.
func (c *Cache) Get(ctx context.Context, source string) ([]types.RawRecord, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, title, description, start_time, end_time, due, all_day, status, grp, category
		 FROM records WHERE source = ? ORDER BY position`, source)
	if err != nil {
		return nil, fmt.Errorf("querying cache: %w", err)
	}
	defer rows.Close()

	var recs []types.RawRecord
	for rows.Next() {
		var r types.RawRecord
		var start, end, due string
		var allDay int
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &start, &end, &due,
			&allDay, &r.Status, &r.Group, &r.Category); err != nil {
			return nil, fmt.Errorf("scanning cached record: %w", err)
		}
		r.Start = decodeTime(start)
		r.End = decodeTime(end)
		r.Due = decodeTime(due)
		r.AllDay = allDay != 0
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// Strategy returns the cache-read tier for source.
func (c *Cache) Strategy(source string) Strategy {
	return &cacheStrategy{cache: c, source: source}
}

type cacheStrategy struct {
	cache  *Cache
	source string
}

func (s *cacheStrategy) Name() string { return "cache" }

func (s *cacheStrategy) Fetch(ctx context.Context) ([]types.RawRecord, error) {
	return s.cache.Get(ctx, s.source)
}

func encodeTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func decodeTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
