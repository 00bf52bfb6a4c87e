package db

import (
	"database/sql"
	"fmt"
)

// migrations is the ordered list of idempotent schema statements.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		estimated_hours REAL NOT NULL,
		priority        TEXT NOT NULL
		                CHECK(priority IN ('critical','high','medium','low')),
		complexity      TEXT NOT NULL
		                CHECK(complexity IN ('trivial','simple','moderate','complex','epic')),
		status          TEXT NOT NULL DEFAULT 'pending',
		risk_level      TEXT NOT NULL DEFAULT 'low',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS dependency_edges (
		task_id       TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		kind          TEXT NOT NULL
		              CHECK(kind IN ('blocks','requires','suggests','enhances')),
		strength      REAL NOT NULL DEFAULT 0,
		reason        TEXT NOT NULL DEFAULT '',
		risk_level    TEXT NOT NULL DEFAULT 'low',
		PRIMARY KEY (task_id, depends_on_id, kind)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_edges_depends_on ON dependency_edges(depends_on_id)`,
	`CREATE TABLE IF NOT EXISTS plans (
		id                  TEXT PRIMARY KEY,
		created_at          TEXT NOT NULL,
		team_size           INTEGER NOT NULL,
		sprint_length_weeks INTEGER NOT NULL,
		hours_per_week      REAL NOT NULL,
		start_date          TEXT NOT NULL,
		velocity_factor     REAL NOT NULL,
		buffer_pct          REAL NOT NULL,
		sprint_count        INTEGER NOT NULL,
		utilization_pct     REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS plan_sprints (
		plan_id         TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		number          INTEGER NOT NULL,
		start_date      TEXT NOT NULL,
		end_date        TEXT NOT NULL,
		total_hours     REAL NOT NULL,
		available_hours REAL NOT NULL,
		planned_hours   REAL NOT NULL,
		overflow        INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (plan_id, number)
	)`,
	`CREATE TABLE IF NOT EXISTS plan_assignments (
		plan_id          TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		task_id          TEXT NOT NULL,
		sprint           INTEGER NOT NULL,
		hours            REAL NOT NULL,
		reason           TEXT NOT NULL DEFAULT '',
		confidence       REAL NOT NULL,
		dependencies_met INTEGER NOT NULL DEFAULT 1,
		overflow         INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (plan_id, task_id)
	)`,
	`CREATE TABLE IF NOT EXISTS plan_milestones (
		plan_id           TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		target_date       TEXT NOT NULL,
		priority          TEXT NOT NULL,
		dependent_sprints TEXT NOT NULL DEFAULT '',
		progress_pct      REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (plan_id, name)
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
