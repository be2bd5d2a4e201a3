package model

import "sort"

// Recommendation is a scored category suggestion for a not-yet-classified
// entry. Confidence is a 0-100 heuristic score, not a probability.
type Recommendation struct {
	Category   string
	Reason     string
	Confidence float64
	IsIncome   bool
}

// Recommendations is a ranked list: the first element is the top suggestion,
// the rest are alternatives.
type Recommendations []Recommendation

// Sort orders recommendations by confidence descending, breaking ties by
// category name for deterministic output.
func (r Recommendations) Sort() {
	sort.Slice(r, func(i, j int) bool {
		if r[i].Confidence != r[j].Confidence {
			return r[i].Confidence > r[j].Confidence
		}
		return r[i].Category < r[j].Category
	})
}

// Top returns the highest-confidence recommendation, or nil if empty.
func (r Recommendations) Top() *Recommendation {
	if len(r) == 0 {
		return nil
	}
	return &r[0]
}
