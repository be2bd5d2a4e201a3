// Package anomaly evaluates a just-confirmed transaction against history
// for amount outliers, odd timing, duplicates, and invalid categories.
package anomaly

import (
	"fmt"
	"math"
	"time"

	"github.com/voxledger/vox/internal/model"
)

// Config holds the detection thresholds. The defaults are deliberately
// preserved from long-observed behavior rather than re-derived; change them
// through configuration, not code.
type Config struct {
	DuplicateWindow time.Duration
	ZScoreThreshold float64
	MinHistory      int
	NightStartHour  int
	NightEndHour    int
}

// DefaultConfig returns the standard thresholds: z > 3.0 over at least 3
// prior points, a ±5 minute duplicate window, and 00:00-05:59 counted as
// night.
func DefaultConfig() Config {
	return Config{
		DuplicateWindow: 5 * time.Minute,
		ZScoreThreshold: 3.0,
		MinHistory:      3,
		NightStartHour:  0,
		NightEndHour:    5,
	}
}

// Detector runs the anomaly checks.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector with the given thresholds.
func NewDetector(cfg Config) *Detector {
	if cfg.DuplicateWindow <= 0 {
		cfg.DuplicateWindow = 5 * time.Minute
	}
	if cfg.ZScoreThreshold <= 0 {
		cfg.ZScoreThreshold = 3.0
	}
	if cfg.MinHistory <= 0 {
		cfg.MinHistory = 3
	}
	return &Detector{cfg: cfg}
}

// Detect evaluates txn against prior history and the current category
// catalog. It returns the single highest-severity finding, or nil when
// nothing looks wrong. Ties go to the earlier check: amount, time,
// duplicate, category.
func (d *Detector) Detect(txn model.Transaction, history []model.Transaction, categories []model.Category) *model.AnomalyReport {
	var reports []*model.AnomalyReport
	if r := d.checkAmount(txn, history); r != nil {
		reports = append(reports, r)
	}
	if r := d.checkTime(txn); r != nil {
		reports = append(reports, r)
	}
	if r := d.checkDuplicate(txn, history); r != nil {
		reports = append(reports, r)
	}
	if r := d.checkCategory(txn, categories); r != nil {
		reports = append(reports, r)
	}

	var best *model.AnomalyReport
	for _, r := range reports {
		if best == nil || r.Severity.Rank() > best.Severity.Rank() {
			best = r
		}
	}
	return best
}

// checkAmount flags amounts far from the category's historical mean.
func (d *Detector) checkAmount(txn model.Transaction, history []model.Transaction) *model.AnomalyReport {
	var amounts []float64
	for _, h := range history {
		if h.ID == txn.ID {
			continue
		}
		if h.Category == txn.Category && h.IsExpense == txn.IsExpense {
			amounts = append(amounts, h.Amount.InexactFloat64())
		}
	}
	if len(amounts) < d.cfg.MinHistory {
		return nil
	}

	mean, stddev := meanStddev(amounts)
	if stddev == 0 {
		return nil
	}
	z := math.Abs(txn.Amount.InexactFloat64()-mean) / stddev
	if z <= d.cfg.ZScoreThreshold {
		return nil
	}

	severity := model.SeverityMedium
	switch {
	case z > 5:
		severity = model.SeverityCritical
	case z > 4:
		severity = model.SeverityHigh
	}

	return &model.AnomalyReport{
		TransactionID: txn.ID,
		Kind:          model.AnomalyUnusualAmount,
		Severity:      severity,
		Description: fmt.Sprintf("amount %s is %.1f standard deviations from the %s average of %.2f",
			txn.Amount.StringFixed(2), z, txn.Category, mean),
		Suggestions: []string{
			"Double-check the recognized amount",
			"Confirm the category is correct",
		},
		Confidence: math.Min(100, z*20),
	}
}

// checkTime flags transactions recorded deep in the night.
func (d *Detector) checkTime(txn model.Transaction) *model.AnomalyReport {
	hour := txn.Date.Hour()
	if hour < d.cfg.NightStartHour || hour > d.cfg.NightEndHour {
		return nil
	}
	return &model.AnomalyReport{
		TransactionID: txn.ID,
		Kind:          model.AnomalyUnusualTime,
		Severity:      model.SeverityMedium,
		Description:   fmt.Sprintf("recorded at %02d:00, an unusual hour", hour),
		Suggestions: []string{
			"Verify the transaction date and time",
		},
		Confidence: 70,
	}
}

// checkDuplicate flags a near-identical transaction within the window.
func (d *Detector) checkDuplicate(txn model.Transaction, history []model.Transaction) *model.AnomalyReport {
	for _, h := range history {
		if h.ID == txn.ID {
			continue
		}
		if h.Category != txn.Category || h.IsExpense != txn.IsExpense {
			continue
		}
		gap := txn.Date.Sub(h.Date)
		if gap < 0 {
			gap = -gap
		}
		if gap > d.cfg.DuplicateWindow {
			continue
		}
		if math.Abs(txn.Amount.InexactFloat64()-h.Amount.InexactFloat64()) >= 0.01 {
			continue
		}
		return &model.AnomalyReport{
			TransactionID: txn.ID,
			Kind:          model.AnomalyDuplicate,
			Severity:      model.SeverityHigh,
			Description: fmt.Sprintf("nearly identical to transaction %s recorded %s apart",
				h.ID, gap.Round(time.Second)),
			Suggestions: []string{
				"Check whether this entry was recorded twice",
			},
			Confidence: 85,
		}
	}
	return nil
}

// checkCategory flags a category missing from the catalog for its side.
func (d *Detector) checkCategory(txn model.Transaction, categories []model.Category) *model.AnomalyReport {
	want := model.CategoryTypeExpense
	if !txn.IsExpense {
		want = model.CategoryTypeIncome
	}
	for _, c := range categories {
		if c.Name == txn.Category && c.Type == want {
			return nil
		}
	}
	return &model.AnomalyReport{
		TransactionID: txn.ID,
		Kind:          model.AnomalyCategoryMismatch,
		Severity:      model.SeverityLow,
		Description:   fmt.Sprintf("category %q is not in the current catalog", txn.Category),
		Suggestions: []string{
			"Pick a category from the catalog",
			"Add it as a custom category if it should exist",
		},
		Confidence: 60,
	}
}

func meanStddev(values []float64) (mean, stddev float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}
