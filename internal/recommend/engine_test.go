package recommend

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxledger/vox/internal/learning"
	"github.com/voxledger/vox/internal/model"
)

func learnMany(store *learning.Store, category string, amount int64, at time.Time, n int, isExpense bool) {
	for i := 0; i < n; i++ {
		store.Learn(model.Transaction{
			ID:        fmt.Sprintf("%s-%d", category, i),
			Date:      at,
			Category:  category,
			Amount:    decimal.NewFromInt(amount),
			IsExpense: isExpense,
		})
	}
}

func TestRecommendColdStart(t *testing.T) {
	engine := NewEngine(learning.NewStore())
	at := time.Date(2025, 8, 9, 12, 0, 0, 0, time.Local)

	recs := engine.Recommend(decimal.NewFromInt(30), "打车去机场", at, true)

	assert.Empty(t, recs, "an empty store must yield no recommendation")
}

func TestRecommendTopCategory(t *testing.T) {
	store := learning.NewStore()
	at := time.Date(2025, 8, 11, 12, 0, 0, 0, time.Local) // a Monday lunchtime
	learnMany(store, "餐饮", 30, at, 20, true)
	learnMany(store, "交通", 15, at.Add(6*time.Hour), 3, true)

	engine := NewEngine(store)
	recs := engine.Recommend(decimal.NewFromInt(32), "吃了碗面", at, true)

	require.NotEmpty(t, recs)
	assert.Equal(t, "餐饮", recs[0].Category)
	assert.False(t, recs[0].IsIncome)
	assert.Greater(t, recs[0].Confidence, 0.0)
	assert.LessOrEqual(t, recs[0].Confidence, 100.0)
}

func TestRecommendKeywordBonus(t *testing.T) {
	store := learning.NewStore()
	lunch := time.Date(2025, 8, 11, 12, 0, 0, 0, time.Local)
	// Heavier 餐饮 history, lighter 交通 history.
	learnMany(store, "餐饮", 30, lunch, 15, true)
	learnMany(store, "交通", 30, lunch, 6, true)

	engine := NewEngine(store)
	recs := engine.Recommend(decimal.NewFromInt(30), "打车回家", lunch, true)

	require.NotEmpty(t, recs)
	assert.Equal(t, "交通", recs[0].Category,
		"an explicit keyword must outweigh a moderate frequency edge")
}

func TestRecommendScoreFloor(t *testing.T) {
	store := learning.NewStore()
	at := time.Date(2025, 8, 11, 12, 0, 0, 0, time.Local)
	learnMany(store, "餐饮", 30, at, 2, true)

	engine := NewEngine(store)
	// Different hour, different bucket, no keyword: only a sliver of
	// preference confidence remains, below the floor.
	recs := engine.Recommend(decimal.NewFromInt(800), "说不清楚",
		time.Date(2025, 8, 12, 3, 0, 0, 0, time.Local), true)

	assert.Empty(t, recs)
}

func TestRecommendAlternatives(t *testing.T) {
	store := learning.NewStore()
	at := time.Date(2025, 8, 11, 12, 0, 0, 0, time.Local)
	learnMany(store, "餐饮", 30, at, 20, true)
	learnMany(store, "生活", 30, at, 18, true)
	learnMany(store, "交通", 30, at, 17, true)
	learnMany(store, "娱乐", 30, at, 16, true)
	learnMany(store, "购物", 30, at, 15, true)

	engine := NewEngine(store)
	recs := engine.Recommend(decimal.NewFromInt(30), "", at, true)

	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 4, "top suggestion plus at most three alternatives")
	top := recs[0]
	for _, alt := range recs[1:] {
		assert.GreaterOrEqual(t, alt.Confidence, top.Confidence*0.6,
			"alternatives must score at least 60%% of the top")
	}
}

func TestRecommendSideFilter(t *testing.T) {
	store := learning.NewStore()
	at := time.Date(2025, 8, 11, 12, 0, 0, 0, time.Local)
	learnMany(store, "工资薪酬", 5000, at, 20, false)

	engine := NewEngine(store)

	expenseRecs := engine.Recommend(decimal.NewFromInt(30), "", at, true)
	assert.Empty(t, expenseRecs, "income history must not drive expense suggestions")

	incomeRecs := engine.Recommend(decimal.NewFromInt(5000), "发工资了", at, false)
	require.NotEmpty(t, incomeRecs)
	assert.Equal(t, "工资薪酬", incomeRecs[0].Category)
	assert.True(t, incomeRecs[0].IsIncome)
}

func TestRecommendReasons(t *testing.T) {
	store := learning.NewStore()

	lunch := time.Date(2025, 8, 11, 12, 0, 0, 0, time.Local)
	learnMany(store, "餐饮", 30, lunch, 20, true)
	engine := NewEngine(store)
	recs := engine.Recommend(decimal.NewFromInt(30), "", lunch, true)
	require.NotEmpty(t, recs)
	assert.Equal(t, "time-of-day pattern", recs[0].Reason)

	commute := time.Date(2025, 8, 11, 8, 0, 0, 0, time.Local)
	store = learning.NewStore()
	learnMany(store, "交通", 15, commute, 20, true)
	engine = NewEngine(store)
	recs = engine.Recommend(decimal.NewFromInt(15), "", commute, true)
	require.NotEmpty(t, recs)
	assert.Equal(t, "commute pattern", recs[0].Reason)

	afternoon := time.Date(2025, 8, 11, 15, 0, 0, 0, time.Local)
	store = learning.NewStore()
	learnMany(store, "工资薪酬", 5000, afternoon, 20, false)
	engine = NewEngine(store)
	recs = engine.Recommend(decimal.NewFromInt(5000), "", afternoon, false)
	require.NotEmpty(t, recs)
	assert.Equal(t, "income type match", recs[0].Reason)
}
