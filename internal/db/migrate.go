package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs on every startup.
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
	`CREATE TABLE IF NOT EXISTS activities (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		kind          TEXT NOT NULL
		              CHECK(kind IN ('checkbox','value','cumulative','container','metric')),
		schedule_kind TEXT NOT NULL
		              CHECK(schedule_kind IN ('daily','weekly','monthly','sticky','adhoc')),
		weekdays      TEXT,
		month_days    TEXT,
		adhoc_date    TEXT,
		target_value  REAL,
		aggregation   TEXT NOT NULL DEFAULT 'sum',
		carry_forward INTEGER NOT NULL DEFAULT 0,
		parent_id     TEXT REFERENCES activities(id) ON DELETE SET NULL,
		created_at    TEXT NOT NULL,
		stopped_at    TEXT,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_parent ON activities(parent_id)`,

	`CREATE TABLE IF NOT EXISTS activity_logs (
		id           TEXT PRIMARY KEY,
		activity_id  TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		date         TEXT NOT NULL,
		status       TEXT NOT NULL CHECK(status IN ('completed','skipped')),
		value        REAL,
		time_slot    TEXT,
		skip_reason  TEXT,
		completed_at TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activity_logs_activity_date ON activity_logs(activity_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_logs_date ON activity_logs(date)`,

	`CREATE TABLE IF NOT EXISTS vacation_days (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS time_slots (
		id          TEXT PRIMARY KEY,
		activity_id TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		label       TEXT NOT NULL,
		weekdays    TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_slots_activity ON time_slots(activity_id)`,
}
