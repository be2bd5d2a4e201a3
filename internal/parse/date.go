package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Explicit date patterns, tried in order. First match wins.
var explicitDateRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})月(\d{1,2})[号日]`),
	regexp.MustCompile(`(\d{1,2})月(\d{1,2})`),
	regexp.MustCompile(`(\d{1,2})/(\d{1,2})`),
	regexp.MustCompile(`(\d{1,2})-(\d{1,2})`),
}

// relativeDays maps relative-date keywords to day deltas. Longer keywords
// come first so 大前天 is not read as 前天.
var relativeDays = []struct {
	word string
	days int
}{
	{"大前天", -3},
	{"前天", -2},
	{"昨天", -1},
	{"今天", 0},
	{"明天", 1},
	{"后天", 2},
}

// ResolveDate extracts an explicit or relative date from a segment. It
// never fails: with no date in the text it returns now. Explicit dates keep
// the time of day from now; month/day-only dates get the year inferred so
// the result is the nearest plausible occurrence.
func ResolveDate(segment string, now time.Time) time.Time {
	for _, re := range explicitDateRes {
		m := re.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		return time.Date(inferYear(month, day, now), time.Month(month), day,
			now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	}

	for _, rel := range relativeDays {
		if strings.Contains(segment, rel.word) {
			return now.AddDate(0, 0, rel.days)
		}
	}

	return now
}

// inferYear picks the year for a month/day-only date. A month already past
// means next year; the current month means next year only when the day is
// more than 15 days behind today.
func inferYear(month, day int, now time.Time) int {
	switch {
	case month < int(now.Month()):
		return now.Year() + 1
	case month == int(now.Month()) && now.Day()-day > 15:
		return now.Year() + 1
	default:
		return now.Year()
	}
}
