package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Append-only study log. seq preserves insertion order; the core never
	// updates or deletes rows here.
	`CREATE TABLE IF NOT EXISTS logs (
		seq      INTEGER PRIMARY KEY AUTOINCREMENT,
		id       TEXT NOT NULL,
		date     TEXT NOT NULL DEFAULT '',
		time     TEXT NOT NULL DEFAULT '',
		type     TEXT NOT NULL DEFAULT 'Metric',
		sector   TEXT NOT NULL DEFAULT '',
		subject  TEXT NOT NULL DEFAULT '',
		activity TEXT NOT NULL DEFAULT '',
		duration INTEGER NOT NULL DEFAULT 0,
		output   INTEGER NOT NULL DEFAULT 0,
		rot      INTEGER NOT NULL DEFAULT 0,
		focus    INTEGER NOT NULL DEFAULT 0,
		notes    TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_logs_date ON logs(date)`,

	// Duplicates and overlaps are allowed, so no uniqueness constraint.
	// Older rows carry only time_slot; newer rows carry start/end.
	`CREATE TABLE IF NOT EXISTS timetable_slots (
		seq       INTEGER PRIMARY KEY AUTOINCREMENT,
		day_type  TEXT NOT NULL DEFAULT '',
		time_slot  TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL DEFAULT '',
		end_time   TEXT NOT NULL DEFAULT '',
		task       TEXT NOT NULL DEFAULT ''
	)`,

	// User-added subjects only; defaults are unioned in at read time.
	`CREATE TABLE IF NOT EXISTS subjects (
		name TEXT PRIMARY KEY
	)`,

	`CREATE TABLE IF NOT EXISTS profile (
		id            TEXT PRIMARY KEY,
		efs_target    INTEGER NOT NULL DEFAULT 480,
		rot_limit_min INTEGER NOT NULL DEFAULT 60,
		auto_advise   INTEGER NOT NULL DEFAULT 0,
		timezone      TEXT NOT NULL DEFAULT 'IST'
	)`,
}
