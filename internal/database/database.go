package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema. Unique
// indexes on users.username and users.email are the sole enforcement of
// those invariants; the service layer never pre-checks them.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		author_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		excerpt TEXT CHECK (excerpt IS NULL OR length(excerpt) <= 500),
		slug TEXT NOT NULL CHECK (length(slug) <= 255),
		featured_image_url TEXT CHECK (featured_image_url IS NULL OR length(featured_image_url) <= 255),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE CHECK (length(username) <= 256),
		email TEXT NOT NULL UNIQUE CHECK (length(email) <= 256),
		password_hash TEXT NOT NULL,
		full_name TEXT CHECK (full_name IS NULL OR length(full_name) <= 256),
		bio TEXT CHECK (bio IS NULL OR length(bio) <= 1000),
		profile_picture_url TEXT CHECK (profile_picture_url IS NULL OR length(profile_picture_url) <= 2048),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 0
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
