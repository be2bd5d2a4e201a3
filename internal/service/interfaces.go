// Package service defines the contracts between the parsing core and its
// collaborators.
package service

import (
	"context"
	"time"

	"github.com/voxledger/vox/internal/learning"
	"github.com/voxledger/vox/internal/model"
)

// TransactionFilter narrows transaction queries.
type TransactionFilter struct {
	Category  string
	IsExpense *bool
	Limit     int
}

// Storage is the persistence collaborator: it durably saves confirmed
// transactions, the custom category catalog, and the learned-state
// snapshot. The parsing core never talks to it directly; commands do.
type Storage interface {
	Migrate(ctx context.Context) error

	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	GetTransactionsNear(ctx context.Context, at time.Time, window time.Duration) ([]model.Transaction, error)

	ListCustomCategories(ctx context.Context) ([]model.Category, error)
	AddCustomCategory(ctx context.Context, name string) (*model.Category, error)
	RemoveCustomCategory(ctx context.Context, name string) error

	SaveLearnedState(ctx context.Context, snap *learning.Snapshot) error
	LoadLearnedState(ctx context.Context) (*learning.Snapshot, error)

	Close() error
}
