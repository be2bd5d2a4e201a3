// Package recommend scores candidate categories for a not-yet-classified
// entry against a user's learned statistics.
package recommend

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voxledger/vox/internal/learning"
	"github.com/voxledger/vox/internal/model"
)

// Scoring weights and thresholds. The floor keeps noise out of the UI: a
// score this low means there is no real signal yet.
const (
	timeWeight       = 0.3
	amountWeight     = 0.4
	preferenceWeight = 0.3
	keywordBonus     = 20.0
	scoreFloor       = 10.0
	maxAlternatives  = 3
	alternativeRatio = 0.6
)

// keywordHints maps description keywords straight to a category. A hint is
// worth a flat bonus on top of the statistical score, so an explicit word
// beats a marginal pattern.
var keywordHints = map[string]learning.Key{
	"工资": {Category: "工资薪酬", IsIncome: true},
	"奖金": {Category: "奖金补贴", IsIncome: true},
	"退款": {Category: "退款返现", IsIncome: true},
	"打车": {Category: "交通", IsIncome: false},
	"地铁": {Category: "交通", IsIncome: false},
	"吃饭": {Category: "餐饮", IsIncome: false},
	"外卖": {Category: "餐饮", IsIncome: false},
	"房租": {Category: "租房水电", IsIncome: false},
	"电影": {Category: "娱乐", IsIncome: false},
	"买药": {Category: "医疗", IsIncome: false},
	"超市": {Category: "生活", IsIncome: false},
}

// Engine scores categories against one user's learning store.
type Engine struct {
	store *learning.Store
}

// NewEngine creates an engine reading from store.
func NewEngine(store *learning.Store) *Engine {
	return &Engine{store: store}
}

// Recommend ranks candidate categories for an entry being composed. The
// first element is the top suggestion, followed by up to three alternatives
// scoring at least 60% of it. An empty result means there is not enough
// signal to suggest anything; that is a normal cold-start outcome, not an
// error.
func (e *Engine) Recommend(amount decimal.Decimal, description string, at time.Time, isExpense bool) model.Recommendations {
	snap := e.store.Snapshot()

	scores := make(map[learning.Key]float64)
	for key := range snap.Preferences {
		if key.IsIncome == !isExpense {
			scores[key] = 0
		}
	}
	if len(scores) == 0 {
		return nil
	}
	for word, key := range keywordHints {
		if _, seen := scores[key]; seen && strings.Contains(description, word) {
			scores[key] += keywordBonus
		}
	}

	hour := at.Hour()
	weekday := learning.ISOWeekday(at)
	bucket := learning.AmountBucket(amount)

	for key := range scores {
		timeFreq := snap.TimePatterns[learning.TimeKey{
			Hour:     hour,
			Weekday:  weekday,
			Category: key.Category,
			IsIncome: key.IsIncome,
		}]
		amountFreq := snap.AmountPatterns[learning.AmountKey{
			Bucket:   bucket,
			Category: key.Category,
			IsIncome: key.IsIncome,
		}]
		var confidence float64
		if pref, ok := snap.Preferences[key]; ok {
			confidence = pref.Confidence
		}
		scores[key] += timeWeight*float64(timeFreq) +
			amountWeight*float64(amountFreq) +
			preferenceWeight*confidence
	}

	ranked := make(model.Recommendations, 0, len(scores))
	for key, score := range scores {
		ranked = append(ranked, model.Recommendation{
			Category:   key.Category,
			IsIncome:   key.IsIncome,
			Confidence: clampScore(score),
			Reason:     reasonFor(key, hour),
		})
	}
	ranked.Sort()

	top := ranked[0]
	if top.Confidence < scoreFloor {
		return nil
	}

	result := model.Recommendations{top}
	for _, alt := range ranked[1:] {
		if len(result) > maxAlternatives {
			break
		}
		if alt.Confidence >= top.Confidence*alternativeRatio {
			result = append(result, alt)
		}
	}
	return result
}

func clampScore(score float64) float64 {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// reasonFor explains a suggestion in terms a user recognizes.
func reasonFor(key learning.Key, hour int) string {
	switch {
	case (hour >= 11 && hour <= 13) || (hour >= 18 && hour <= 20):
		return "time-of-day pattern"
	case hour >= 7 && hour <= 9 && key.Category == "交通":
		return "commute pattern"
	case key.IsIncome:
		return "income type match"
	default:
		return "historical usage pattern"
	}
}
