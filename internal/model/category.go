package model

import "time"

// CategoryType indicates whether a category applies to income or expenses.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a spending or income category. Preset categories ship
// with the application; custom categories are created by the user and take
// priority during classification.
type Category struct {
	CreatedAt time.Time
	Name      string
	Type      CategoryType
	IsCustom  bool
}
