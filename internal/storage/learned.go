package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/voxledger/vox/internal/learning"
)

// SaveLearnedState persists a learning snapshot, replacing any previous
// one. The write is a single SQL transaction so a crash never leaves half
// a snapshot behind.
func (s *SQLiteStorage) SaveLearnedState(ctx context.Context, snap *learning.Snapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if snap == nil {
		return fmt.Errorf("snapshot must not be nil")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin learned-state save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"category_preferences", "time_patterns", "amount_patterns", "behavior"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for key, pref := range snap.Preferences {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO category_preferences
			 (category, is_income, frequency, average_amount, last_used, confidence)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			key.Category, key.IsIncome, pref.Frequency,
			pref.AverageAmount.String(), pref.LastUsed, pref.Confidence)
		if err != nil {
			return fmt.Errorf("failed to save category preference: %w", err)
		}
	}

	for key, freq := range snap.TimePatterns {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO time_patterns (hour, weekday, category, is_income, frequency)
			 VALUES (?, ?, ?, ?, ?)`,
			key.Hour, key.Weekday, key.Category, key.IsIncome, freq)
		if err != nil {
			return fmt.Errorf("failed to save time pattern: %w", err)
		}
	}

	for key, freq := range snap.AmountPatterns {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO amount_patterns (bucket, category, is_income, frequency)
			 VALUES (?, ?, ?, ?)`,
			key.Bucket, key.Category, key.IsIncome, freq)
		if err != nil {
			return fmt.Errorf("failed to save amount pattern: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO behavior (id, transaction_count, amount_sum, hour_sum, streak, last_day)
		 VALUES (1, ?, ?, ?, ?, ?)`,
		snap.TransactionCount, snap.AmountSum.String(), snap.HourSum,
		snap.Streak, snap.LastDay)
	if err != nil {
		return fmt.Errorf("failed to save behavior summary: %w", err)
	}

	return tx.Commit()
}

// LoadLearnedState reads the persisted snapshot. A fresh database yields an
// empty snapshot, not an error.
func (s *SQLiteStorage) LoadLearnedState(ctx context.Context) (*learning.Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	snap := &learning.Snapshot{
		Preferences:    make(map[learning.Key]learning.CategoryPreference),
		TimePatterns:   make(map[learning.TimeKey]int),
		AmountPatterns: make(map[learning.AmountKey]int),
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, is_income, frequency, average_amount, last_used, confidence
		 FROM category_preferences`)
	if err != nil {
		return nil, fmt.Errorf("failed to load category preferences: %w", err)
	}
	for rows.Next() {
		var key learning.Key
		var pref learning.CategoryPreference
		var avg string
		var lastUsed sql.NullTime
		if err := rows.Scan(&key.Category, &key.IsIncome, &pref.Frequency, &avg, &lastUsed, &pref.Confidence); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan category preference: %w", err)
		}
		if pref.AverageAmount, err = decimal.NewFromString(avg); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("corrupt average amount %q: %w", avg, err)
		}
		pref.LastUsed = lastUsed.Time
		snap.Preferences[key] = pref
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT hour, weekday, category, is_income, frequency FROM time_patterns`)
	if err != nil {
		return nil, fmt.Errorf("failed to load time patterns: %w", err)
	}
	for rows.Next() {
		var key learning.TimeKey
		var freq int
		if err := rows.Scan(&key.Hour, &key.Weekday, &key.Category, &key.IsIncome, &freq); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan time pattern: %w", err)
		}
		snap.TimePatterns[key] = freq
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT bucket, category, is_income, frequency FROM amount_patterns`)
	if err != nil {
		return nil, fmt.Errorf("failed to load amount patterns: %w", err)
	}
	for rows.Next() {
		var key learning.AmountKey
		var freq int
		if err := rows.Scan(&key.Bucket, &key.Category, &key.IsIncome, &freq); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan amount pattern: %w", err)
		}
		snap.AmountPatterns[key] = freq
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	var amountSum string
	var lastDay sql.NullTime
	err = s.db.QueryRowContext(ctx,
		`SELECT transaction_count, amount_sum, hour_sum, streak, last_day FROM behavior WHERE id = 1`).
		Scan(&snap.TransactionCount, &amountSum, &snap.HourSum, &snap.Streak, &lastDay)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return snap, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load behavior summary: %w", err)
	}
	if snap.AmountSum, err = decimal.NewFromString(amountSum); err != nil {
		return nil, fmt.Errorf("corrupt amount sum %q: %w", amountSum, err)
	}
	snap.LastDay = lastDay.Time

	return snap, nil
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	return rows.Close()
}
