// Package store is the SQLite data-access layer: raw daily logs, user
// settings, momentum snapshots, and the intent audit trail.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS nutrition_logs (
	id         TEXT PRIMARY KEY,
	date       TEXT NOT NULL,
	label      TEXT NOT NULL,
	calories   REAL NOT NULL,
	protein    REAL NOT NULL,
	carbs      REAL NOT NULL,
	fat        REAL NOT NULL,
	fiber      REAL NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_nutrition_date ON nutrition_logs(date);

CREATE TABLE IF NOT EXISTS hydration_logs (
	id         TEXT PRIMARY KEY,
	date       TEXT NOT NULL,
	amount_ml  REAL NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_hydration_date ON hydration_logs(date);

CREATE TABLE IF NOT EXISTS sleep_logs (
	date       TEXT PRIMARY KEY,
	hours      REAL NOT NULL,
	quality    INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS step_logs (
	date       TEXT PRIMARY KEY,
	count      INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS workout_logs (
	id         TEXT PRIMARY KEY,
	date       TEXT NOT NULL,
	kind       TEXT NOT NULL,
	completed  INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_workout_date ON workout_logs(date);

CREATE TABLE IF NOT EXISTS tasks (
	id         TEXT PRIMARY KEY,
	date       TEXT NOT NULL,
	title      TEXT NOT NULL,
	priority   INTEGER NOT NULL,
	done       INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);

CREATE TABLE IF NOT EXISTS finance_transactions (
	id          TEXT PRIMARY KEY,
	date        TEXT NOT NULL,
	amount      REAL NOT NULL,
	description TEXT NOT NULL,
	category    TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON finance_transactions(date);

CREATE TABLE IF NOT EXISTS finance_goals (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	target     REAL NOT NULL,
	saved      REAL NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_settings (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	settings_json TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS momentum_snapshots (
	date           TEXT PRIMARY KEY,
	snapshot_id    TEXT NOT NULL,
	score          INTEGER NOT NULL,
	breakdown_json TEXT NOT NULL,
	computed_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS intent_audit (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	transcript TEXT NOT NULL,
	domain     TEXT NOT NULL,
	confidence REAL NOT NULL,
	decision   TEXT NOT NULL,
	reason     TEXT,
	created_at TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store manages all persistent app data in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// New opens a SQLite database and runs migrations.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close
