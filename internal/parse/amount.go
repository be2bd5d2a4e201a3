// Package parse converts speech-to-text transcripts into transaction drafts.
package parse

import (
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/voxledger/vox/internal/model"
)

// The three amount pattern families, in priority order. Transcripts conflate
// dates and money ("10号" is the 10th, not ten yuan), so the currency prefix
// or suffix is the only reliable disambiguator; a bare number is trusted
// only when it has two or more integer digits and no date-unit suffix.
var (
	symbolAmountRe = regexp.MustCompile(`[¥￥](\d+(?:\.\d+)?)`)
	suffixAmountRe = regexp.MustCompile(`(\d+(?:\.\d+)?)[元块钱]`)
	bareAmountRe   = regexp.MustCompile(`\d{2,}(?:\.\d+)?`)
)

// dateUnits are the suffixes that turn a number into a date, not an amount.
var dateUnits = map[rune]bool{'月': true, '日': true, '号': true}

// ExtractAmounts finds every plausible monetary amount in text. Matches are
// ordered by start offset, never overlap, and use codepoint offsets.
func ExtractAmounts(text string) []model.AmountMatch {
	if text == "" {
		return nil
	}

	var accepted []model.AmountMatch
	overlaps := func(start, end int) bool {
		for _, m := range accepted {
			if start < m.End && m.Start < end {
				return true
			}
		}
		return false
	}

	add := func(byteStart, byteEnd int, raw, numeric string) {
		value, err := decimal.NewFromString(numeric)
		if err != nil {
			return
		}
		start := utf8.RuneCountInString(text[:byteStart])
		end := start + utf8.RuneCountInString(raw)
		if overlaps(start, end) {
			return
		}
		accepted = append(accepted, model.AmountMatch{
			Start:   start,
			End:     end,
			RawText: raw,
			Value:   value,
		})
	}

	for _, loc := range symbolAmountRe.FindAllStringSubmatchIndex(text, -1) {
		add(loc[0], loc[1], text[loc[0]:loc[1]], text[loc[2]:loc[3]])
	}
	for _, loc := range suffixAmountRe.FindAllStringSubmatchIndex(text, -1) {
		add(loc[0], loc[1], text[loc[0]:loc[1]], text[loc[2]:loc[3]])
	}
	for _, loc := range bareAmountRe.FindAllStringIndex(text, -1) {
		if next, _ := utf8.DecodeRuneInString(text[loc[1]:]); dateUnits[next] {
			continue
		}
		add(loc[0], loc[1], text[loc[0]:loc[1]], text[loc[0]:loc[1]])
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].Start < accepted[j].Start
	})
	return accepted
}
