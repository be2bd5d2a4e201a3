package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDraft is an unconfirmed transaction produced by parsing a
// transcript. Any field may be overwritten by the user before the draft
// becomes a persisted Transaction. A nil Amount means no monetary value
// was found; callers discard such drafts.
type TransactionDraft struct {
	Amount    *decimal.Decimal
	Date      *time.Time
	Category  string
	Note      string
	IsExpense bool
}

// AmountMatch is a monetary value located inside a text span. Offsets are
// codepoint indices into the source text, not byte indices.
type AmountMatch struct {
	Start   int
	End     int
	RawText string
	Value   decimal.Decimal
}
