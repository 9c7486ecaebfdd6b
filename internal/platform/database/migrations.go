package database

import (
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		username      TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		birthdate     TEXT,
		gender        TEXT,
		biography     TEXT,
		role          TEXT NOT NULL DEFAULT 'user',
		status        TEXT NOT NULL DEFAULT 'active',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id          TEXT PRIMARY KEY,
		author      TEXT NOT NULL,
		title       TEXT NOT NULL,
		slug        TEXT NOT NULL,
		cover       TEXT,
		description TEXT,
		status      TEXT NOT NULL DEFAULT 'ongoing',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_books_author ON books (author)`,
	`CREATE TABLE IF NOT EXISTS chapters (
		id            TEXT PRIMARY KEY,
		book_id       TEXT NOT NULL,
		chapter_order INTEGER NOT NULL DEFAULT 0,
		cover         TEXT,
		title         TEXT NOT NULL,
		content       TEXT,
		status        TEXT NOT NULL DEFAULT 'draft',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chapters_book ON chapters (book_id, chapter_order)`,
}

// Migrate creates the schema if it does not exist yet. Chapters keep no
// foreign key to books: book deletion leaves its chapters in place.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("running migration: %w", err)
		}
	}
	return nil
}
