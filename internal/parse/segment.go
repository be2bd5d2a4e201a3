package parse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/voxledger/vox/internal/catalog"
	"github.com/voxledger/vox/internal/model"
)

const eachMarker = "各"

// SplitSegments decides how many transactions a transcript encodes and
// returns one sub-span per transaction. Splitting is best-effort: when no
// strategy applies the whole text comes back as a single segment, never an
// error.
func SplitSegments(text string, matches []model.AmountMatch) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []string{text}
	}

	if len(matches) <= 1 {
		if strings.Contains(text, eachMarker) {
			if segs := splitEach(text, matches); len(segs) > 0 {
				return segs
			}
		}
		return []string{text}
	}

	if segs := splitOnSeparator(text); len(segs) > 1 {
		return filterSegments(segs)
	}
	return filterSegments(splitAtBoundaries(text, matches))
}

// splitEach handles equal-amount utterances like "中午和晚上吃饭各20元":
// one shared amount, several time markers or connector-joined parts before
// the 各. Returns nil when the pattern does not apply.
func splitEach(text string, matches []model.AmountMatch) []string {
	if len(matches) == 0 {
		return nil
	}
	amount := matches[0].Value.String()

	pre, _, _ := strings.Cut(text, eachMarker)

	// A generic day word is shared context for every synthesized segment.
	dayContext := ""
	for _, day := range catalog.GenericDayWords {
		if strings.Contains(pre, day) {
			dayContext = day
			break
		}
	}

	activity := catalog.DefaultActivity
	for _, a := range catalog.ActivityKeywords {
		if strings.Contains(text, a) {
			activity = a
			break
		}
	}

	markers := orderByAppearance(pre, catalog.SpecificTimeMarkers)
	if len(markers) >= 2 {
		segs := make([]string, 0, len(markers))
		for _, marker := range markers {
			segs = append(segs, fmt.Sprintf("%s%s%s%s元", dayContext, marker, activity, amount))
		}
		return segs
	}

	for _, conn := range catalog.Connectors {
		if !strings.Contains(pre, conn) {
			continue
		}
		var segs []string
		for _, part := range strings.Split(pre, conn) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if !containsAny(part, catalog.ConsumptionVerbs) {
				part += catalog.DefaultActivity
			}
			segs = append(segs, fmt.Sprintf("%s%s元", part, amount))
		}
		if len(segs) >= 2 {
			return segs
		}
	}

	return nil
}

// splitOnSeparator tries each known separator and keeps whichever yields the
// most pieces. Returns nil when no separator splits the text at all.
func splitOnSeparator(text string) []string {
	var best []string
	for _, sep := range catalog.Separators {
		parts := strings.Split(text, sep)
		if len(parts) > len(best) && len(parts) > 1 {
			best = parts
		}
	}
	return best
}

// splitAtBoundaries cuts between consecutive amounts. The boundary is, in
// priority order: a time keyword between the two amounts, a currency or
// time-word residue right after the first amount, or the midpoint.
func splitAtBoundaries(text string, matches []model.AmountMatch) []string {
	runes := []rune(text)
	cuts := make([]int, 0, len(matches)-1)
	for i := 0; i < len(matches)-1; i++ {
		cuts = append(cuts, boundaryBetween(runes, matches[i], matches[i+1]))
	}

	segs := make([]string, 0, len(cuts)+1)
	prev := 0
	for _, cut := range cuts {
		if cut <= prev || cut > len(runes) {
			continue
		}
		segs = append(segs, string(runes[prev:cut]))
		prev = cut
	}
	segs = append(segs, string(runes[prev:]))
	return segs
}

func boundaryBetween(runes []rune, first, second model.AmountMatch) int {
	start, end := first.End, second.Start
	if start >= end || end > len(runes) {
		return (first.End + second.Start) / 2
	}
	between := string(runes[start:end])

	for _, word := range catalog.BoundaryTimeWords {
		if idx := strings.Index(between, word); idx >= 0 {
			return start + len([]rune(between[:idx]))
		}
	}

	switch runes[start] {
	case '块', '元', '上':
		return start + 1
	}

	return (start + end) / 2
}

// filterSegments trims each piece and drops any without a digit; a piece
// without a digit cannot carry an amount.
func filterSegments(segs []string) []string {
	kept := make([]string, 0, len(segs))
	for _, seg := range segs {
		seg = strings.TrimSpace(seg)
		if seg == "" || !containsDigit(seg) {
			continue
		}
		kept = append(kept, seg)
	}
	if len(kept) == 0 {
		return segs
	}
	return kept
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// orderByAppearance returns the subset of words present in s, ordered by
// where they first appear.
func orderByAppearance(s string, words []string) []string {
	type hit struct {
		word string
		pos  int
	}
	var hits []hit
	for _, w := range words {
		if idx := strings.Index(s, w); idx >= 0 {
			hits = append(hits, hit{word: w, pos: idx})
		}
	}
	for i := 0; i < len(hits)-1; i++ {
		for j := i + 1; j < len(hits); j++ {
			if hits[j].pos < hits[i].pos {
				hits[i], hits[j] = hits[j], hits[i]
			}
		}
	}
	ordered := make([]string, 0, len(hits))
	for _, h := range hits {
		ordered = append(ordered, h.word)
	}
	return ordered
}
