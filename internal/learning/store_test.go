package learning

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxledger/vox/internal/model"
)

func expenseTxn(category string, amount int64, at time.Time) model.Transaction {
	return model.Transaction{
		ID:        fmt.Sprintf("%s-%d-%d", category, amount, at.UnixNano()),
		Date:      at,
		Category:  category,
		Amount:    decimal.NewFromInt(amount),
		IsExpense: true,
	}
}

func TestLearnUpdatesPreference(t *testing.T) {
	store := NewStore()
	at := time.Date(2025, 8, 9, 12, 0, 0, 0, time.UTC)

	store.Learn(expenseTxn("餐饮", 30, at))
	store.Learn(expenseTxn("餐饮", 50, at.Add(time.Hour)))

	snap := store.Snapshot()
	pref, ok := snap.Preferences[Key{Category: "餐饮"}]
	require.True(t, ok)
	assert.Equal(t, 2, pref.Frequency)
	assert.True(t, pref.AverageAmount.Equal(decimal.NewFromInt(40)),
		"running mean of 30 and 50 is 40, got %s", pref.AverageAmount)
	assert.InDelta(t, 5.0, pref.Confidence, 0.001)
}

func TestConfidenceMonotonicAndCapped(t *testing.T) {
	store := NewStore()
	at := time.Date(2025, 8, 9, 12, 0, 0, 0, time.UTC)

	prev := 0.0
	for i := 0; i < 50; i++ {
		store.Learn(expenseTxn("餐饮", 30, at.Add(time.Duration(i)*time.Minute)))
		snap := store.Snapshot()
		conf := snap.Preferences[Key{Category: "餐饮"}].Confidence
		assert.GreaterOrEqual(t, conf, prev, "confidence must never decrease")
		assert.LessOrEqual(t, conf, 100.0)
		prev = conf
	}
	assert.Equal(t, 100.0, prev, "50 observations saturate confidence")
}

func TestLearnIsCommutative(t *testing.T) {
	at := time.Date(2025, 8, 9, 12, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		expenseTxn("餐饮", 30, at),
		expenseTxn("交通", 15, at.Add(time.Hour)),
		expenseTxn("餐饮", 50, at.Add(2*time.Hour)),
		expenseTxn("购物", 200, at.Add(3*time.Hour)),
		expenseTxn("交通", 12, at.Add(4*time.Hour)),
	}

	forward := NewStore()
	for _, txn := range txns {
		forward.Learn(txn)
	}
	backward := NewStore()
	for i := len(txns) - 1; i >= 0; i-- {
		backward.Learn(txns[i])
	}

	f, b := forward.Snapshot(), backward.Snapshot()
	require.Equal(t, len(f.Preferences), len(b.Preferences))
	for key, pref := range f.Preferences {
		assert.Equal(t, pref.Frequency, b.Preferences[key].Frequency,
			"frequency for %v must not depend on order", key)
	}
	assert.Equal(t, f.TimePatterns, b.TimePatterns)
	assert.Equal(t, f.AmountPatterns, b.AmountPatterns)
}

func TestTimePatternCapEnforced(t *testing.T) {
	store := NewStore()
	base := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC) // a Monday

	// One distinct (hour, weekday, category) key per transaction, far more
	// than the cap.
	for day := 0; day < 14; day++ {
		for hour := 0; hour < 24; hour++ {
			at := base.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)
			store.Learn(expenseTxn(fmt.Sprintf("cat-%d", day), 30, at))
		}
	}

	snap := store.Snapshot()
	assert.LessOrEqual(t, len(snap.TimePatterns), 200)
	assert.LessOrEqual(t, len(snap.AmountPatterns), 150)
}

func TestEvictionKeepsFrequentPatterns(t *testing.T) {
	store := NewStore()
	at := time.Date(2025, 8, 9, 12, 0, 0, 0, time.UTC)

	// A hot category observed many times must survive the flood of
	// one-off keys below.
	for i := 0; i < 50; i++ {
		store.Learn(expenseTxn("餐饮", 30, at))
	}
	for i := 0; i < 300; i++ {
		hour := i % 24
		day := i % 28
		txnAt := time.Date(2025, 1, 1+day, hour, 0, 0, 0, time.UTC)
		store.Learn(expenseTxn(fmt.Sprintf("noise-%d", i), 30, txnAt))
	}

	snap := store.Snapshot()
	hot := TimeKey{Hour: 12, Weekday: ISOWeekday(at), Category: "餐饮"}
	assert.Equal(t, 50, snap.TimePatterns[hot], "frequent pattern must not be evicted")
}

func TestBehaviorModel(t *testing.T) {
	store := NewStore()
	day1 := time.Date(2025, 8, 9, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 8, 10, 14, 0, 0, 0, time.UTC)

	store.Learn(expenseTxn("餐饮", 30, day1))
	store.Learn(expenseTxn("交通", 10, day2))

	b := store.Behavior()
	assert.True(t, b.AverageTransactionAmount.Equal(decimal.NewFromInt(20)))
	assert.InDelta(t, 12.0, b.PreferredHour, 0.001)
	assert.Equal(t, 2, b.CategoryDiversity)
	assert.InDelta(t, 10.0, b.RecordingConsistency, 0.001, "two-day streak scores 10")
}

func TestRecordingConsistencyCapped(t *testing.T) {
	store := NewStore()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	for day := 0; day < 30; day++ {
		store.Learn(expenseTxn("餐饮", 30, base.AddDate(0, 0, day)))
	}

	assert.Equal(t, 100.0, store.Behavior().RecordingConsistency)
}

func TestStreakResetsAfterGap(t *testing.T) {
	store := NewStore()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	store.Learn(expenseTxn("餐饮", 30, base))
	store.Learn(expenseTxn("餐饮", 30, base.AddDate(0, 0, 1)))
	store.Learn(expenseTxn("餐饮", 30, base.AddDate(0, 0, 5)))

	assert.InDelta(t, 5.0, store.Behavior().RecordingConsistency, 0.001,
		"a gap resets the streak to one day")
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	store := NewStore()
	at := time.Date(2025, 8, 9, 12, 0, 0, 0, time.UTC)
	store.Learn(expenseTxn("餐饮", 30, at))
	store.Learn(expenseTxn("交通", 15, at.Add(time.Hour)))

	restored := NewStore()
	restored.Restore(store.Snapshot())

	original, copied := store.Snapshot(), restored.Snapshot()
	assert.Equal(t, original.Preferences, copied.Preferences)
	assert.Equal(t, original.TimePatterns, copied.TimePatterns)
	assert.Equal(t, original.AmountPatterns, copied.AmountPatterns)
	assert.Equal(t, original.TransactionCount, copied.TransactionCount)
	assert.Equal(t, original.Behavior, copied.Behavior)
}

func TestSnapshotIsIsolated(t *testing.T) {
	store := NewStore()
	at := time.Date(2025, 8, 9, 12, 0, 0, 0, time.UTC)
	store.Learn(expenseTxn("餐饮", 30, at))

	snap := store.Snapshot()
	store.Learn(expenseTxn("餐饮", 50, at.Add(time.Hour)))

	assert.Equal(t, 1, snap.Preferences[Key{Category: "餐饮"}].Frequency,
		"a snapshot must not observe later updates")
}
