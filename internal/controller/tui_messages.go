package controller

import (
	"strings"
	"time"

	m "github.com/mouse-blink/gofixer/internal/model"
)

// Message types.
type tickMsg time.Time

type runInfoMsg struct {
	info m.RunInfo
}

type unitProcessedMsg struct {
	status m.Status
}

type reportMsg struct {
	report *m.RunReport
}

type rulesMsg struct {
	rules []m.RuleInfo
}

// closeMsg tells the model that no more updates will arrive.
type closeMsg struct{}

// List item types.
type ruleItem struct {
	name        string
	description string
}

func (r ruleItem) FilterValue() string {
	return r.name
}

// resultItem is a changed or failed unit shown once the run is over.
type resultItem struct {
	path   string
	status string
	detail string
	diff   *m.RenderedDiff
}

func (r resultItem) FilterValue() string {
	return r.path + " " + r.status + " " + r.detail
}

func resultItems(report *m.RunReport) []resultItem {
	items := make([]resultItem, 0, len(report.Changed)+len(report.Errors))

	for _, changed := range report.Changed {
		items = append(items, resultItem{
			path:   string(changed.Path),
			status: m.StatusFixed.String(),
			detail: strings.Join(changed.AppliedRules, ", "),
			diff:   changed.Diff,
		})
	}

	for _, unitErr := range report.Errors {
		items = append(items, resultItem{
			path:   string(unitErr.Path),
			status: string(unitErr.Kind),
			detail: unitErr.Message,
		})
	}

	return items
}
