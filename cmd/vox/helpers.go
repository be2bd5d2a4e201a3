package main

import (
	"context"
	"fmt"
	"time"

	"github.com/voxledger/vox/internal/catalog"
	"github.com/voxledger/vox/internal/config"
	"github.com/voxledger/vox/internal/learning"
	"github.com/voxledger/vox/internal/model"
	"github.com/voxledger/vox/internal/service"
	"github.com/voxledger/vox/internal/storage"
)

func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath, err := config.DatabasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// loadLearningStore restores the persisted learning snapshot into a fresh
// in-memory store.
func loadLearningStore(ctx context.Context, store service.Storage) (*learning.Store, error) {
	snap, err := store.LoadLearnedState(ctx)
	if err != nil {
		return nil, err
	}
	ls := learning.NewStore()
	ls.Restore(*snap)
	return ls, nil
}

func customCategoryNames(ctx context.Context, store service.Storage) ([]string, error) {
	custom, err := store.ListCustomCategories(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(custom))
	for _, c := range custom {
		names = append(names, c.Name)
	}
	return names, nil
}

// fullCatalog builds the category catalog the anomaly detector validates
// against: presets, income categories, and the user's custom categories.
func fullCatalog(custom []model.Category) []model.Category {
	var categories []model.Category
	for _, name := range catalog.PresetExpenseCategories() {
		categories = append(categories, model.Category{Name: name, Type: model.CategoryTypeExpense})
	}
	for _, name := range catalog.IncomeCategories() {
		categories = append(categories, model.Category{Name: name, Type: model.CategoryTypeIncome})
	}
	return append(categories, custom...)
}

// parseNowFlag reads a --now override, defaulting to the real clock.
func parseNowFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now value %q (want RFC 3339): %w", value, err)
	}
	return now, nil
}
