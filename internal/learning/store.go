// Package learning maintains per-user aggregated statistics over confirmed
// transactions: category preferences, time-of-day and amount-bucket
// patterns, and an overall behavior summary. One Store serves one user and
// is owned by the caller; there is no package-level state.
package learning

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voxledger/vox/internal/model"
)

// Capacity limits for the pattern caches.
const (
	timePatternCap   = 200
	amountPatternCap = 150
)

// Key identifies one (category, side) pair.
type Key struct {
	Category string
	IsIncome bool
}

// TimeKey buckets a transaction by hour of day and ISO weekday.
type TimeKey struct {
	Category string
	Hour     int
	Weekday  int
	IsIncome bool
}

// AmountKey buckets a transaction by coarse amount range.
type AmountKey struct {
	Bucket   string
	Category string
	IsIncome bool
}

// CategoryPreference aggregates every observation of one category.
// Confidence grows with frequency and never decreases.
type CategoryPreference struct {
	LastUsed      time.Time
	AverageAmount decimal.Decimal
	Frequency     int
	Confidence    float64
}

// Behavior summarizes a user's overall recording habits.
type Behavior struct {
	AverageTransactionAmount decimal.Decimal
	PreferredHour            float64
	CategoryDiversity        int
	RecordingConsistency     float64
}

// Store is the per-user learning aggregate. Learn serializes writes; reads
// take a snapshot so scoring never observes a half-applied update.
type Store struct {
	prefs     map[Key]*CategoryPreference
	times     *freqCache[TimeKey]
	amounts   *freqCache[AmountKey]
	lastDay   time.Time
	amountSum decimal.Decimal
	mu        sync.RWMutex
	hourSum   int
	count     int
	streak    int
}

// NewStore creates an empty learning store for one user.
func NewStore() *Store {
	return &Store{
		prefs:   make(map[Key]*CategoryPreference),
		times:   newFreqCache[TimeKey](timePatternCap),
		amounts: newFreqCache[AmountKey](amountPatternCap),
	}
}

// AmountBucket maps an amount to its coarse statistics range.
func AmountBucket(amount decimal.Decimal) string {
	switch {
	case amount.LessThan(decimal.NewFromInt(50)):
		return "0-50"
	case amount.LessThan(decimal.NewFromInt(100)):
		return "50-100"
	case amount.LessThan(decimal.NewFromInt(500)):
		return "100-500"
	default:
		return "500+"
	}
}

func confidenceFor(frequency int) float64 {
	c := float64(frequency) * 2.5
	if c > 100 {
		return 100
	}
	return c
}

// Learn folds one confirmed transaction into the aggregate. The whole
// update is applied under one lock acquisition, so concurrent readers see
// either the old statistics or the new ones, never a mixture.
func (s *Store) Learn(txn model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{Category: txn.Category, IsIncome: !txn.IsExpense}

	pref, ok := s.prefs[key]
	if !ok {
		pref = &CategoryPreference{}
		s.prefs[key] = pref
	}
	// Running mean: avg' = avg + (x - avg) / n.
	pref.Frequency++
	n := decimal.NewFromInt(int64(pref.Frequency))
	pref.AverageAmount = pref.AverageAmount.Add(
		txn.Amount.Sub(pref.AverageAmount).Div(n))
	pref.LastUsed = txn.Date
	pref.Confidence = confidenceFor(pref.Frequency)

	s.times.Increment(TimeKey{
		Hour:     txn.Date.Hour(),
		Weekday:  ISOWeekday(txn.Date),
		Category: txn.Category,
		IsIncome: !txn.IsExpense,
	})
	s.amounts.Increment(AmountKey{
		Bucket:   AmountBucket(txn.Amount),
		Category: txn.Category,
		IsIncome: !txn.IsExpense,
	})

	s.count++
	s.amountSum = s.amountSum.Add(txn.Amount)
	s.hourSum += txn.Date.Hour()
	s.updateStreak(txn.Date)
}

func (s *Store) updateStreak(at time.Time) {
	day := at.Truncate(24 * time.Hour)
	switch {
	case s.lastDay.IsZero():
		s.streak = 1
	case day.Equal(s.lastDay):
		// Same day, streak unchanged.
	case day.Equal(s.lastDay.AddDate(0, 0, 1)):
		s.streak++
	case day.After(s.lastDay):
		s.streak = 1
	default:
		// Out-of-order replay; leave the streak alone.
		return
	}
	s.lastDay = day
}

// ISOWeekday returns the ISO 8601 weekday, 1 (Monday) through 7 (Sunday).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func (s *Store) behaviorLocked() Behavior {
	b := Behavior{CategoryDiversity: len(s.prefs)}
	if s.count > 0 {
		b.AverageTransactionAmount = s.amountSum.Div(decimal.NewFromInt(int64(s.count)))
		b.PreferredHour = float64(s.hourSum) / float64(s.count)
	}
	consistency := float64(s.streak) * 5
	if consistency > 100 {
		consistency = 100
	}
	b.RecordingConsistency = consistency
	return b
}

// Behavior returns the current behavior summary.
func (s *Store) Behavior() Behavior {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.behaviorLocked()
}

// TransactionCount returns how many transactions have been learned.
func (s *Store) TransactionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}
