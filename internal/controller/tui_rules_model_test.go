package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/gofixer/internal/model"
)

func updateRules(t *testing.T, model rulesModel, msg tea.Msg) (rulesModel, tea.Cmd) {
	t.Helper()

	next, cmd := model.Update(msg)

	rm, ok := next.(rulesModel)
	if !ok {
		t.Fatalf("Update returned %T, want rulesModel", next)
	}

	return rm, cmd
}

var sampleRules = []m.RuleInfo{
	{Name: "trailing-whitespace", Description: "Strips trailing blanks"},
	{Name: "final-newline", Description: "Ends the file with one newline"},
}

func TestRulesModel_LoadsRules(t *testing.T) {
	rm := newRulesModel()

	if got := rm.View(); got != "Loading rules…\n" {
		t.Fatalf("View() before rules = %q", got)
	}

	rm, _ = updateRules(t, rm, tea.WindowSizeMsg{Width: 100, Height: 30})
	rm, _ = updateRules(t, rm, rulesMsg{rules: sampleRules})

	if rm.total != 2 || !rm.rendered || rm.lastSelected != 0 {
		t.Fatalf("total=%d rendered=%v lastSelected=%d", rm.total, rm.rendered, rm.lastSelected)
	}

	view := rm.View()
	if !strings.Contains(view, "gofixer Rules") || !strings.Contains(view, "Description") {
		t.Fatalf("rules view missing title or header:\n%s", view)
	}
}

func TestRulesModel_Close(t *testing.T) {
	rm := newRulesModel()

	_, cmd := updateRules(t, rm, closeMsg{})
	if !isQuit(cmd) {
		t.Fatal("closeMsg without rules did not quit")
	}

	rm, _ = updateRules(t, rm, rulesMsg{rules: sampleRules})

	rm, cmd = updateRules(t, rm, closeMsg{})
	if isQuit(cmd) {
		t.Fatal("closeMsg with rules quit the program")
	}

	if !rm.closed {
		t.Fatal("closed = false after closeMsg")
	}
}

func TestRulesModel_QuitKeys(t *testing.T) {
	rm := newRulesModel()

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		if _, cmd := updateRules(t, rm, key); !isQuit(cmd) {
			t.Fatalf("%q did not quit", key.String())
		}
	}
}

func TestRulesModel_TickAnimatesAfterRender(t *testing.T) {
	rm := newRulesModel()

	rm, _ = updateRules(t, rm, tickMsg{})
	if rm.animOffset != 0 {
		t.Fatalf("animOffset = %d before rules, want 0", rm.animOffset)
	}

	rm, _ = updateRules(t, rm, rulesMsg{rules: sampleRules})
	rm, _ = updateRules(t, rm, tickMsg{})

	if rm.animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", rm.animOffset)
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "abcdef", width: 4, want: "abc…"},
		{text: "abc", width: 5, want: "abc"},
		{text: "abc", width: 0, want: ""},
		{text: "abc", width: 1, want: "…"},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestAnimateScroll(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{offset: 0, want: "abc…"},
		{offset: 5, want: "abcd"},
		{offset: 6, want: "bcde"},
		{offset: 8, want: "def "},
	}

	for _, tt := range tests {
		if got := animateScroll("abcdef", 4, tt.offset); got != tt.want {
			t.Errorf("animateScroll(offset=%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}

	if got := animateScroll("ab", 4, 9); got != "ab" {
		t.Errorf("animateScroll(short) = %q, want %q", got, "ab")
	}
}
