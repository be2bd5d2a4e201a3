// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single confirmed money movement.
type Transaction struct {
	Date      time.Time
	ID        string
	Category  string
	Note      string
	Amount    decimal.Decimal
	IsExpense bool
}

// GenerateHash creates a stable hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s:%t",
		t.Date.Format("2006-01-02 15:04:05"),
		t.Amount.StringFixed(2),
		t.Category,
		t.IsExpense)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
