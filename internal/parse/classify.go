package parse

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/voxledger/vox/internal/catalog"
)

// Classifier resolves category, income/expense flag, and a human-readable
// note for one segment. Custom (user-defined) categories always win over
// the preset tables; an income keyword anywhere in the segment overrides
// both.
type Classifier struct {
	expenseRules []catalog.ExpenseRule
	incomeRules  []catalog.IncomeRule
	custom       []string
}

// NewClassifier creates a classifier. custom holds user-defined category
// names; they are matched longest-name-first so "宠物用品" beats "宠物".
func NewClassifier(custom []string) *Classifier {
	names := make([]string, 0, len(custom))
	for _, name := range custom {
		name = strings.TrimSpace(name)
		if name == "" || catalog.IsPresetExpense(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return len([]rune(names[i])) > len([]rune(names[j]))
	})
	return &Classifier{
		expenseRules: catalog.ExpenseRules(),
		incomeRules:  catalog.IncomeRules(),
		custom:       names,
	}
}

// Classify resolves one segment. It never fails: unmatched text falls back
// to the default category, expense side, and a default note.
func (c *Classifier) Classify(segment string) (category string, isExpense bool, note string) {
	category = c.resolveCategory(segment)
	isExpense = true

	for _, rule := range c.incomeRules {
		if containsAny(segment, rule.Keywords) {
			category = rule.Category
			isExpense = false
			break
		}
	}

	return category, isExpense, c.synthesizeNote(segment, category)
}

func (c *Classifier) resolveCategory(segment string) string {
	if match := c.matchCustom(segment); match != "" {
		return match
	}
	for _, rule := range c.expenseRules {
		if containsAny(segment, rule.Exclusions) {
			continue
		}
		if containsAny(segment, rule.Keywords) {
			return rule.Category
		}
	}
	return catalog.DefaultExpenseCategory
}

// matchCustom tries progressively looser strategies per category: direct
// substring, whitespace-insensitive substring, all words present, substring
// after stripping purchase verbs, and finally the important-keyword allow
// list for short names like "ai".
func (c *Classifier) matchCustom(segment string) string {
	input := strings.ToLower(segment)
	inputNoSpace := stripSpaces(input)
	inputNoVerbs := input
	for _, verb := range catalog.StripVerbs {
		inputNoVerbs = strings.ReplaceAll(inputNoVerbs, verb, "")
	}

	for _, name := range c.custom {
		lower := strings.ToLower(name)
		if strings.Contains(input, lower) {
			return name
		}
		if strings.Contains(inputNoSpace, stripSpaces(lower)) {
			return name
		}
		if words := strings.Fields(lower); len(words) > 1 && allContained(input, words) {
			return name
		}
		if strings.Contains(inputNoVerbs, lower) {
			return name
		}
		for _, kw := range catalog.ImportantKeywords {
			if strings.Contains(lower, kw) && strings.Contains(input, kw) {
				return name
			}
		}
	}
	return ""
}

var (
	noteAmountRe = regexp.MustCompile(`[¥￥]?\d+(?:\.\d+)?[元块钱]?`)
	noteDateRes  = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}月\d{1,2}[号日]?`),
		regexp.MustCompile(`\d{1,2}[/-]\d{1,2}`),
		regexp.MustCompile(`\d{1,2}[号日]`),
	}
	noteDateWords = []string{"大前天", "前天", "昨天", "今天", "明天", "后天"}
)

// synthesizeNote builds the note for a segment: strip amounts and dates,
// prefer one word each from the time/action/place vocabularies, otherwise
// fall back to the cleaned remainder, a meaningful word, or a per-category
// default phrase.
func (c *Classifier) synthesizeNote(segment, category string) string {
	cleaned := noteAmountRe.ReplaceAllString(segment, "")
	for _, re := range noteDateRes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	for _, word := range noteDateWords {
		cleaned = strings.ReplaceAll(cleaned, word, "")
	}

	// Vocabulary picks run against the original segment: stripping amounts
	// can split a keyword in half.
	var parts []string
	for _, vocab := range [][]string{catalog.TimeWords, catalog.ActionWords, catalog.PlaceWords} {
		for _, word := range vocab {
			if strings.Contains(segment, word) {
				parts = append(parts, word)
				break
			}
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}

	for _, filler := range catalog.FillerWords {
		cleaned = strings.ReplaceAll(cleaned, filler, "")
	}
	cleaned = stripPunct(cleaned)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if len([]rune(cleaned)) >= 2 {
		return cleaned
	}

	for _, word := range catalog.MeaningfulWords {
		if strings.Contains(segment, word) {
			return word
		}
	}
	if note, ok := catalog.DefaultNotes[category]; ok {
		return note
	}
	return catalog.FallbackNote
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func stripPunct(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, s)
}

func allContained(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}
