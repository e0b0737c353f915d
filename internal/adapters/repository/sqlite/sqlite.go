// Package sqlite is a single file video repository for local runs and tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS videos (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		description   TEXT,
		video_url     TEXT NOT NULL,
		thumbnail_url TEXT,
		redirect_url  TEXT NOT NULL,
		created_at    TIMESTAMP NOT NULL,
		updated_at    TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_videos_created_at ON videos (created_at DESC);
`

// Open opens the database at path and creates the schema if needed.
// The pool is capped to one connection so ":memory:" databases are shared.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create sqlite schema: %w", err)
	}
	return db, nil
}
