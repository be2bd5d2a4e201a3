package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voxledger/vox/internal/common"
	"github.com/voxledger/vox/internal/model"
	"github.com/voxledger/vox/internal/service"
)

// SaveTransaction persists one confirmed transaction. A transaction whose
// hash already exists is rejected with common.ErrDuplicateEntry.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if txn == nil || txn.ID == "" {
		return fmt.Errorf("transaction must have an ID")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, hash, date, category, note, amount, is_expense)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.GenerateHash(), txn.Date, txn.Category, txn.Note,
		txn.Amount.String(), txn.IsExpense)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return common.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// GetTransactions returns confirmed transactions matching the filter,
// newest first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, date, category, note, amount, is_expense FROM transactions`
	var conds []string
	var args []any
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.IsExpense != nil {
		conds = append(conds, "is_expense = ?")
		args = append(args, *filter.IsExpense)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetTransactionsNear returns transactions within window of at, used as
// duplicate candidates.
func (s *SQLiteStorage) GetTransactionsNear(ctx context.Context, at time.Time, window time.Duration) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, category, note, amount, is_expense FROM transactions
		 WHERE date BETWEEN ? AND ? ORDER BY date`,
		at.Add(-window), at.Add(window))
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var txns []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var note sql.NullString
		var amount string
		if err := rows.Scan(&txn.ID, &txn.Date, &txn.Category, &note, &amount, &txn.IsExpense); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Note = note.String
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q: %w", amount, err)
		}
		txn.Amount = value
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}
