package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/gofixer/internal/model"
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}

	_, ok := cmd().(tea.QuitMsg)

	return ok
}

func updateFix(t *testing.T, model fixModel, msg tea.Msg) (fixModel, tea.Cmd) {
	t.Helper()

	next, cmd := model.Update(msg)

	fm, ok := next.(fixModel)
	if !ok {
		t.Fatalf("Update returned %T, want fixModel", next)
	}

	return fm, cmd
}

func sampleReport(diff *m.RenderedDiff) *m.RunReport {
	report := m.NewRunReport("run-1", false)
	report.Record("a.go", m.Fixed([]string{"final-newline"}).WithDiff(diff), 0)
	report.Record("b.go", m.InvalidSource(&m.Diagnostic{Message: "expected ';'", Line: 3, Column: 1}), 0)
	report.Record("c.go", m.NoChanges(), 0)

	return report
}

func TestFixModel_ProgressView(t *testing.T) {
	fm := newFixModel()

	if got := fm.View(); got != "Initializing fixer…\n" {
		t.Fatalf("View() before run info = %q", got)
	}

	fm, _ = updateFix(t, fm, tea.WindowSizeMsg{Width: 100, Height: 30})
	fm, _ = updateFix(t, fm, runInfoMsg{info: m.RunInfo{Units: 4, Threads: 2, Rules: []string{"a", "b"}}})
	fm, _ = updateFix(t, fm, unitProcessedMsg{status: m.StatusFixed})
	fm, _ = updateFix(t, fm, unitProcessedMsg{status: m.StatusNoChanges})

	if fm.processed != 2 {
		t.Fatalf("processed = %d, want 2", fm.processed)
	}

	if fm.progressPercent != 0.5 {
		t.Fatalf("progressPercent = %v, want 0.5", fm.progressPercent)
	}

	if fm.counts[m.StatusFixed] != 1 || fm.counts[m.StatusNoChanges] != 1 {
		t.Fatalf("counts = %v", fm.counts)
	}

	view := fm.View()
	if !strings.Contains(view, "gofixer") || !strings.Contains(view, "Press q to quit") {
		t.Fatalf("progress view missing title or footer:\n%s", view)
	}
}

func TestFixModel_CloseBeforeReportQuits(t *testing.T) {
	fm := newFixModel()

	fm, cmd := updateFix(t, fm, closeMsg{})

	if !fm.closed {
		t.Fatal("closed = false after closeMsg")
	}

	if !isQuit(cmd) {
		t.Fatal("closeMsg before report did not quit")
	}
}

func TestFixModel_CloseWithResultsKeepsRunning(t *testing.T) {
	fm := newFixModel()

	fm, _ = updateFix(t, fm, reportMsg{report: sampleReport(nil)})

	if !fm.finished {
		t.Fatal("finished = false after report")
	}

	if len(fm.results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(fm.results))
	}

	if fm.counts[m.StatusNoChanges] != 1 {
		t.Fatalf("counts = %v, want one no-changes", fm.counts)
	}

	_, cmd := updateFix(t, fm, closeMsg{})
	if isQuit(cmd) {
		t.Fatal("closeMsg with results quit the program")
	}
}

func TestFixModel_CloseWithoutResultsQuits(t *testing.T) {
	report := m.NewRunReport("run-1", false)
	report.Record("c.go", m.NoChanges(), 0)

	fm := newFixModel()
	fm, _ = updateFix(t, fm, reportMsg{report: report})

	if !strings.Contains(fm.View(), "Nothing to fix.") {
		t.Fatalf("results view without results:\n%s", fm.View())
	}

	_, cmd := updateFix(t, fm, closeMsg{})
	if !isQuit(cmd) {
		t.Fatal("closeMsg without results did not quit")
	}
}

func TestFixModel_NilReportIgnored(t *testing.T) {
	fm := newFixModel()

	fm, _ = updateFix(t, fm, reportMsg{})

	if fm.finished {
		t.Fatal("nil report finished the run")
	}
}

func TestFixModel_QuitKey(t *testing.T) {
	fm := newFixModel()

	_, cmd := updateFix(t, fm, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !isQuit(cmd) {
		t.Fatal("q did not quit")
	}
}

func TestFixModel_KeysIgnoredWhileRunning(t *testing.T) {
	fm := newFixModel()

	fm, cmd := updateFix(t, fm, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("enter while running returned a command")
	}

	if fm.showDiff {
		t.Fatal("enter while running opened a diff")
	}
}

func TestFixModel_ToggleDiff(t *testing.T) {
	diff := &m.RenderedDiff{Lines: []m.DiffLine{
		{Marker: m.MarkerHeaderOld, Text: "a.go"},
		{Marker: m.MarkerHeaderNew, Text: "a.go"},
		{Marker: m.MarkerRemoved, Text: "}"},
		{Marker: m.MarkerAdded, Text: "}"},
	}}

	fm := newFixModel()
	fm, _ = updateFix(t, fm, tea.WindowSizeMsg{Width: 120, Height: 40})
	fm, _ = updateFix(t, fm, reportMsg{report: sampleReport(diff)})

	fm, _ = updateFix(t, fm, tea.KeyMsg{Type: tea.KeyEnter})
	if !fm.showDiff || fm.selectedDiff != diff || fm.selectedDiffPath != "a.go" {
		t.Fatalf("enter did not open the diff: show=%v path=%q", fm.showDiff, fm.selectedDiffPath)
	}

	if fm.diffBoxHeight() != len(diff.Lines)+3 {
		t.Fatalf("diffBoxHeight() = %d, want %d", fm.diffBoxHeight(), len(diff.Lines)+3)
	}

	if view := fm.View(); !strings.Contains(view, "Diff • a.go") {
		t.Fatalf("results view missing diff header:\n%s", view)
	}

	fm, _ = updateFix(t, fm, tea.KeyMsg{Type: tea.KeyEnter})
	if fm.showDiff || fm.selectedDiff != nil {
		t.Fatal("second enter did not close the diff")
	}
}

func TestFixModel_TickAnimatesOnlyResults(t *testing.T) {
	fm := newFixModel()

	fm, cmd := updateFix(t, fm, tickMsg{})
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}

	if fm.animOffset != 0 {
		t.Fatalf("animOffset = %d while running, want 0", fm.animOffset)
	}

	fm, _ = updateFix(t, fm, reportMsg{report: sampleReport(nil)})
	fm, _ = updateFix(t, fm, tickMsg{})

	if fm.animOffset != 1 || fm.delegate.offset != 1 {
		t.Fatalf("animOffset = %d, delegate offset = %d, want 1", fm.animOffset, fm.delegate.offset)
	}
}

func TestRenderDiffLine(t *testing.T) {
	tests := []struct {
		name string
		line m.DiffLine
		want string
	}{
		{name: "added", line: m.DiffLine{Marker: m.MarkerAdded, Text: "x := 1"}, want: "+x := 1"},
		{name: "removed", line: m.DiffLine{Marker: m.MarkerRemoved, Text: "x := 1"}, want: "-x := 1"},
		{name: "header", line: m.DiffLine{Marker: m.MarkerHeaderOld, Text: "a.go"}, want: "--- a.go"},
		{name: "context", line: m.DiffLine{Marker: m.MarkerContext, Text: "}"}, want: " }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderDiffLine(tt.line, 40); !strings.Contains(got, tt.want) {
				t.Fatalf("renderDiffLine() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestStatusColor(t *testing.T) {
	if statusColor("fixed") == statusColor("lint") {
		t.Fatal("fixed and lint share a color")
	}

	if statusColor("invalid") != statusColor("lint") {
		t.Fatal("invalid and lint use different colors")
	}

	if statusColor("skipped") != statusColor("no-changes") {
		t.Fatal("neutral statuses use different colors")
	}
}
