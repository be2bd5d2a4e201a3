package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application
// expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					hash TEXT UNIQUE NOT NULL,
					date DATETIME NOT NULL,
					category TEXT NOT NULL,
					note TEXT,
					amount TEXT NOT NULL,
					is_expense INTEGER NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_category ON transactions(category, is_expense)`,

				`CREATE TABLE IF NOT EXISTS custom_categories (
					name TEXT PRIMARY KEY,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return fmt.Errorf("migration 1: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Learned-state snapshot tables",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS category_preferences (
					category TEXT NOT NULL,
					is_income INTEGER NOT NULL,
					frequency INTEGER NOT NULL,
					average_amount TEXT NOT NULL,
					last_used DATETIME,
					confidence REAL NOT NULL,
					PRIMARY KEY (category, is_income)
				)`,
				`CREATE TABLE IF NOT EXISTS time_patterns (
					hour INTEGER NOT NULL,
					weekday INTEGER NOT NULL,
					category TEXT NOT NULL,
					is_income INTEGER NOT NULL,
					frequency INTEGER NOT NULL,
					PRIMARY KEY (hour, weekday, category, is_income)
				)`,
				`CREATE TABLE IF NOT EXISTS amount_patterns (
					bucket TEXT NOT NULL,
					category TEXT NOT NULL,
					is_income INTEGER NOT NULL,
					frequency INTEGER NOT NULL,
					PRIMARY KEY (bucket, category, is_income)
				)`,
				`CREATE TABLE IF NOT EXISTS behavior (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					transaction_count INTEGER NOT NULL,
					amount_sum TEXT NOT NULL,
					hour_sum INTEGER NOT NULL,
					streak INTEGER NOT NULL,
					last_day DATETIME
				)`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return fmt.Errorf("migration 2: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the schema up to the expected version. Already-applied
// migrations are skipped via PRAGMA user_version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= version {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}
		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Debug("applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}
