package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/voxledger/vox/internal/model"
)

// RenderDrafts writes parsed drafts in a readable list.
func RenderDrafts(w io.Writer, drafts []model.TransactionDraft) {
	if len(drafts) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No transactions found in transcript."))
		return
	}

	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Parsed %d transaction(s)", len(drafts))))
	for i, d := range drafts {
		amount := SubtleStyle.Render("(no amount)")
		if d.Amount != nil {
			amount = AmountStyle.Render("¥" + d.Amount.StringFixed(2))
		}
		side := "expense"
		if !d.IsExpense {
			side = IncomeStyle.Render("income")
		}
		date := ""
		if d.Date != nil {
			date = d.Date.Format("2006-01-02")
		}
		fmt.Fprintf(w, "  %d. %s  %s  %s  %s  %s\n",
			i+1, amount, d.Category, side, d.Note, SubtleStyle.Render(date))
	}
}

// RenderRecommendations writes ranked category suggestions; the first entry
// is the top suggestion.
func RenderRecommendations(w io.Writer, recs model.Recommendations) {
	if len(recs) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No suggestion yet, not enough history."))
		return
	}

	top := recs[0]
	fmt.Fprintf(w, "%s %s %s\n",
		SuccessStyle.Render("Suggested:"),
		top.Category,
		SubtleStyle.Render(fmt.Sprintf("(%.0f%%, %s)", top.Confidence, top.Reason)))
	if len(recs) > 1 {
		var alts []string
		for _, alt := range recs[1:] {
			alts = append(alts, fmt.Sprintf("%s (%.0f%%)", alt.Category, alt.Confidence))
		}
		fmt.Fprintf(w, "%s %s\n",
			SubtleStyle.Render("Alternatives:"),
			strings.Join(alts, ", "))
	}
}

// RenderAnomaly writes one anomaly warning.
func RenderAnomaly(w io.Writer, report *model.AnomalyReport) {
	if report == nil {
		return
	}

	style := WarningStyle
	if report.Severity == model.SeverityCritical || report.Severity == model.SeverityHigh {
		style = ErrorStyle
	}
	fmt.Fprintf(w, "%s %s %s\n",
		style.Render(fmt.Sprintf("[%s]", strings.ToUpper(string(report.Severity)))),
		report.Description,
		SubtleStyle.Render(fmt.Sprintf("(confidence %.0f%%)", report.Confidence)))
	for _, s := range report.Suggestions {
		fmt.Fprintf(w, "    - %s\n", s)
	}
}
