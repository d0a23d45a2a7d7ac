package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order exactly once; applied versions are recorded
// in schema_migrations.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		dept_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS buildings (
		bldg_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS classes (
		class_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		section_num INTEGER NOT NULL,
		dept_id INTEGER NOT NULL REFERENCES departments(dept_id),
		UNIQUE (name, section_num)
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		room_id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_number TEXT NOT NULL,
		bldg_id INTEGER NOT NULL REFERENCES buildings(bldg_id),
		capacity INTEGER NOT NULL DEFAULT 0,
		equipment TEXT,
		room_type TEXT,
		UNIQUE (bldg_id, room_number)
	)`,
	`CREATE TABLE IF NOT EXISTS requests (
		request_id INTEGER PRIMARY KEY AUTOINCREMENT,
		class_id INTEGER NOT NULL REFERENCES classes(class_id),
		dept_id INTEGER NOT NULL REFERENCES departments(dept_id),
		priority INTEGER NOT NULL DEFAULT 0,
		preferred_time TEXT NOT NULL,
		equip_request TEXT,
		preferred_room_id INTEGER REFERENCES rooms(room_id),
		preferred_bldg_id INTEGER REFERENCES buildings(bldg_id),
		status TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Accepted')),
		date_submitted TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS assignments (
		assignment_id INTEGER PRIMARY KEY AUTOINCREMENT,
		class_id INTEGER NOT NULL REFERENCES classes(class_id),
		room_id INTEGER NOT NULL REFERENCES rooms(room_id),
		day_of_week INTEGER NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
		start_minute INTEGER NOT NULL,
		end_minute INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		CHECK (start_minute >= 0 AND end_minute <= 1440 AND start_minute < end_minute)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_room_day ON assignments (room_id, day_of_week)`,
	`CREATE TABLE IF NOT EXISTS blackouts (
		blackout_id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_id INTEGER NOT NULL REFERENCES rooms(room_id),
		day_of_week INTEGER NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
		start_minute INTEGER NOT NULL,
		end_minute INTEGER NOT NULL,
		reason TEXT NOT NULL,
		created_at TEXT NOT NULL,
		CHECK (start_minute >= 0 AND end_minute <= 1440 AND start_minute < end_minute)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_blackouts_room_day ON blackouts (room_id, day_of_week)`,
}

// Migrate creates the schema_migrations bookkeeping table and applies any
// migration versions that have not yet run, each inside its own transaction.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.DB().ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	for version, statement := range migrations {
		applied, err := s.migrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		err = s.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("migration %d failed: %w", version, err)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO schema_migrations (version, applied_at) VALUES (?, datetime('now'))",
				version); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) migrationApplied(ctx context.Context, version int) (bool, error) {
	var count int
	err := s.pool.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to inspect schema_migrations: %w", err)
	}
	return count > 0, nil
}
