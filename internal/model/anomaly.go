package model

// AnomalyKind identifies what an anomaly check flagged.
type AnomalyKind string

// Anomaly kind constants, in detection-priority order.
const (
	AnomalyUnusualAmount    AnomalyKind = "unusual_amount"
	AnomalyUnusualTime      AnomalyKind = "unusual_time"
	AnomalyDuplicate        AnomalyKind = "duplicate"
	AnomalyCategoryMismatch AnomalyKind = "category_mismatch"
)

// Severity grades how serious an anomaly is.
type Severity string

// Severity levels.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank returns a numeric weight for severity comparison. Unknown severities
// rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return 0
}

// AnomalyReport describes a single flagged transaction. Reports are
// advisory: they never block saving and are not persisted.
type AnomalyReport struct {
	TransactionID string
	Kind          AnomalyKind
	Severity      Severity
	Description   string
	Suggestions   []string
	Confidence    float64
}
