package parse

import (
	"log/slog"
	"strings"
	"time"

	"github.com/voxledger/vox/internal/model"
)

// Parser orchestrates the full transcript-to-draft pipeline: amount
// extraction, segmentation, classification, and date resolution.
type Parser struct {
	now        func() time.Time
	classifier *Classifier
}

// Option configures a Parser.
type Option func(*Parser)

// WithNow fixes the reference time used for relative dates, year inference,
// and draft timestamps. Defaults to time.Now.
func WithNow(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// NewParser creates a parser. customCategories holds the user-defined
// category names currently in the catalog.
func NewParser(customCategories []string, opts ...Option) *Parser {
	p := &Parser{
		now:        time.Now,
		classifier: NewClassifier(customCategories),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts one transcript into transaction drafts. A transcript with
// no detectable amount yields a single amount-less draft that callers are
// expected to discard or complete; otherwise one draft per segment, and
// segments whose amount cannot be recovered are dropped. Parse never fails.
func (p *Parser) Parse(transcript string) []model.TransactionDraft {
	now := p.now()
	matches := ExtractAmounts(transcript)

	if len(matches) == 0 && !strings.Contains(transcript, eachMarker) {
		category, isExpense, note := p.classifier.Classify(transcript)
		date := ResolveDate(transcript, now)
		return []model.TransactionDraft{{
			Category:  category,
			Note:      note,
			Date:      &date,
			IsExpense: isExpense,
		}}
	}

	segments := SplitSegments(transcript, matches)
	slog.Debug("segmented transcript",
		"amounts", len(matches),
		"segments", len(segments))

	drafts := make([]model.TransactionDraft, 0, len(segments))
	for _, segment := range segments {
		segMatches := ExtractAmounts(segment)
		if len(segMatches) == 0 {
			continue
		}
		amount := segMatches[0].Value
		category, isExpense, note := p.classifier.Classify(segment)
		date := ResolveDate(segment, now)
		drafts = append(drafts, model.TransactionDraft{
			Amount:    &amount,
			Category:  category,
			Note:      note,
			Date:      &date,
			IsExpense: isExpense,
		})
	}
	return drafts
}
