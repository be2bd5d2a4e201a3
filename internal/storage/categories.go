package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/voxledger/vox/internal/catalog"
	"github.com/voxledger/vox/internal/common"
	"github.com/voxledger/vox/internal/model"
)

// ListCustomCategories returns the user-defined categories, oldest first.
func (s *SQLiteStorage) ListCustomCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, created_at FROM custom_categories ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		c := model.Category{Type: model.CategoryTypeExpense, IsCustom: true}
		if err := rows.Scan(&c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan custom category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// AddCustomCategory creates a user-defined category. Preset names are
// rejected: a custom category shadowing a preset would make classification
// order ambiguous.
func (s *SQLiteStorage) AddCustomCategory(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewUserError("category name must not be empty", common.ErrInvalidCategory)
	}
	if catalog.IsPresetExpense(name) {
		return nil, common.NewUserError(
			fmt.Sprintf("%q is a preset category", name), common.ErrInvalidCategory)
	}

	now := time.Now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO custom_categories (name, created_at) VALUES (?, ?)`, name, now)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, common.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to add custom category: %w", err)
	}

	return &model.Category{
		Name:      name,
		Type:      model.CategoryTypeExpense,
		IsCustom:  true,
		CreatedAt: now,
	}, nil
}

// RemoveCustomCategory deletes a user-defined category.
func (s *SQLiteStorage) RemoveCustomCategory(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM custom_categories WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to remove custom category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removal: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
