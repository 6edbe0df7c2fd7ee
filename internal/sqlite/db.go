package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema if it does not exist yet
func (db *DB) RunMigrations() error {
	migration := `
-- Chat messages
CREATE TABLE IF NOT EXISTS messages (
    id TEXT PRIMARY KEY,
    channel_id TEXT NOT NULL,
    channel_name TEXT NOT NULL,
    user_id TEXT NOT NULL,
    username TEXT NOT NULL,
    text TEXT NOT NULL,
    ts TEXT NOT NULL,
    thread_ts TEXT,
    reaction_count INTEGER NOT NULL DEFAULT 0 CHECK(reaction_count >= 0)
);
CREATE INDEX IF NOT EXISTS idx_messages_channel ON messages(channel_name);

-- Repository issues
CREATE TABLE IF NOT EXISTS repo_issues (
    id INTEGER PRIMARY KEY,
    number INTEGER NOT NULL,
    title TEXT NOT NULL,
    body TEXT,
    state TEXT NOT NULL CHECK(state IN ('open', 'closed')),
    author TEXT NOT NULL,
    assignees TEXT NOT NULL,
    labels TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT,
    closed_at TEXT,
    repository TEXT NOT NULL,
    comments_count INTEGER NOT NULL DEFAULT 0 CHECK(comments_count >= 0)
);
CREATE INDEX IF NOT EXISTS idx_repo_issues_state ON repo_issues(state);

-- Tracker tickets
CREATE TABLE IF NOT EXISTS tickets (
    id TEXT PRIMARY KEY,
    key TEXT NOT NULL UNIQUE,
    summary TEXT NOT NULL,
    description TEXT,
    status TEXT NOT NULL,
    priority TEXT NOT NULL,
    issue_type TEXT NOT NULL,
    reporter TEXT NOT NULL,
    assignee TEXT,
    labels TEXT NOT NULL,
    components TEXT NOT NULL,
    created TEXT NOT NULL,
    updated TEXT,
    resolved TEXT,
    project_key TEXT NOT NULL,
    story_points REAL CHECK(story_points IS NULL OR story_points >= 0),
    time_spent INTEGER CHECK(time_spent IS NULL OR time_spent >= 0)
);
CREATE INDEX IF NOT EXISTS idx_tickets_status ON tickets(status);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
