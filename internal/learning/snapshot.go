package learning

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a consistent, read-only copy of the learning aggregate. It is
// what the recommendation engine scores against and what the storage layer
// persists between sessions.
type Snapshot struct {
	LastDay          time.Time
	Preferences      map[Key]CategoryPreference
	TimePatterns     map[TimeKey]int
	AmountPatterns   map[AmountKey]int
	AmountSum        decimal.Decimal
	Behavior         Behavior
	TransactionCount int
	HourSum          int
	Streak           int
}

// Snapshot copies the current aggregate under the read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefs := make(map[Key]CategoryPreference, len(s.prefs))
	for key, pref := range s.prefs {
		prefs[key] = *pref
	}
	return Snapshot{
		Preferences:      prefs,
		TimePatterns:     s.times.Items(),
		AmountPatterns:   s.amounts.Items(),
		Behavior:         s.behaviorLocked(),
		TransactionCount: s.count,
		AmountSum:        s.amountSum,
		HourSum:          s.hourSum,
		Streak:           s.streak,
		LastDay:          s.lastDay,
	}
}

// Restore replaces the aggregate with a previously persisted snapshot.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = make(map[Key]*CategoryPreference, len(snap.Preferences))
	for key, pref := range snap.Preferences {
		p := pref
		s.prefs[key] = &p
	}
	s.times = newFreqCache[TimeKey](timePatternCap)
	for key, freq := range snap.TimePatterns {
		s.times.Set(key, freq)
	}
	s.amounts = newFreqCache[AmountKey](amountPatternCap)
	for key, freq := range snap.AmountPatterns {
		s.amounts.Set(key, freq)
	}
	s.count = snap.TransactionCount
	s.amountSum = snap.AmountSum
	s.hourSum = snap.HourSum
	s.streak = snap.Streak
	s.lastDay = snap.LastDay
}
