package adapter

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "github.com/mouse-blink/gofixer/internal/model"
)

const defaultDiffContext = 3

// Differ renders the difference between two texts.
type Differ interface {
	Diff(from, to string) *m.RenderedDiff
}

// NewDiffer returns the Differ for mode.
func NewDiffer(mode m.DiffMode) Differ {
	if mode == m.TextDiff {
		return NewTextDiffer()
	}

	return NullDiffer{}
}

// NullDiffer renders nothing.
type NullDiffer struct{}

// Diff returns nil.
func (NullDiffer) Diff(string, string) *m.RenderedDiff {
	return nil
}

// TextDiffer renders a unified, line-oriented diff.
type TextDiffer struct {
	Context int
}

// NewTextDiffer constructs a TextDiffer with three lines of context.
func NewTextDiffer() *TextDiffer {
	return &TextDiffer{Context: defaultDiffContext}
}

// Diff compares from and to line by line. Identical texts yield an empty diff.
func (d *TextDiffer) Diff(from, to string) *m.RenderedDiff {
	out := &m.RenderedDiff{}
	if from == to {
		return out
	}

	a, b := splitLines(from), splitLines(to)

	groups := difflib.NewMatcher(a, b).GetGroupedOpCodes(d.Context)
	if len(groups) == 0 {
		return out
	}

	out.Lines = append(out.Lines,
		m.DiffLine{Marker: m.MarkerHeaderOld, Text: "original"},
		m.DiffLine{Marker: m.MarkerHeaderNew, Text: "new"},
	)

	for _, group := range groups {
		first, last := group[0], group[len(group)-1]
		out.Lines = append(out.Lines, m.DiffLine{
			Marker: m.MarkerHunk,
			Text:   fmt.Sprintf("@@ -%s +%s @@", formatRange(first.I1, last.I2), formatRange(first.J1, last.J2)),
		})

		for _, op := range group {
			switch op.Tag {
			case 'e':
				out.Lines = appendLines(out.Lines, m.MarkerContext, a[op.I1:op.I2])
			case 'r':
				out.Lines = appendLines(out.Lines, m.MarkerRemoved, a[op.I1:op.I2])
				out.Lines = appendLines(out.Lines, m.MarkerAdded, b[op.J1:op.J2])
			case 'd':
				out.Lines = appendLines(out.Lines, m.MarkerRemoved, a[op.I1:op.I2])
			case 'i':
				out.Lines = appendLines(out.Lines, m.MarkerAdded, b[op.J1:op.J2])
			}
		}
	}

	return out
}

func appendLines(dst []m.DiffLine, marker m.Marker, lines []string) []m.DiffLine {
	for _, line := range lines {
		dst = append(dst, m.DiffLine{Marker: marker, Text: strings.TrimRight(line, "\r\n")})
	}

	return dst
}

// splitLines keeps line terminators so that a change in line endings or a
// missing final newline still shows up as a difference.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

func formatRange(start, stop int) string {
	beginning := start + 1
	length := stop - start

	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}

	if length == 0 {
		beginning--
	}

	return fmt.Sprintf("%d,%d", beginning, length)
}
