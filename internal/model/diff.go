package model

import "strings"

// DiffMode selects how changes are rendered.
type DiffMode int

const (
	// NoDiff disables diff rendering.
	NoDiff DiffMode = iota
	// TextDiff renders a line-oriented unified diff.
	TextDiff
)

// Marker tags a rendered diff line so callers can style it.
type Marker int

// Diff line markers.
const (
	MarkerContext Marker = iota
	MarkerHeaderOld
	MarkerHeaderNew
	MarkerHunk
	MarkerAdded
	MarkerRemoved
)

// Prefix returns the textual marker written before the line content.
func (mk Marker) Prefix() string {
	switch mk {
	case MarkerHeaderOld:
		return "---"
	case MarkerHeaderNew:
		return "+++"
	case MarkerAdded:
		return "+"
	case MarkerRemoved:
		return "-"
	case MarkerContext:
		return " "
	default:
		return ""
	}
}

// DiffIndent is the fixed indentation of every rendered diff line.
const DiffIndent = "      "

// DiffLine is one line of a rendered diff, without its trailing newline.
type DiffLine struct {
	Marker Marker
	Text   string
}

// RenderedDiff is a diff whose lines are tagged by marker.
type RenderedDiff struct {
	Lines []DiffLine
}

// Render joins the lines, letting style decorate each marker prefix.
func (d *RenderedDiff) Render(style func(Marker, string) string) string {
	if d == nil {
		return ""
	}

	var b strings.Builder

	for i, line := range d.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}

		prefix := line.Marker.Prefix()
		if style != nil && prefix != "" {
			prefix = style(line.Marker, prefix)
		}

		b.WriteString(DiffIndent)
		b.WriteString(prefix)

		if line.Marker == MarkerHeaderOld || line.Marker == MarkerHeaderNew {
			b.WriteByte(' ')
		}

		b.WriteString(line.Text)
	}

	return b.String()
}

func (d *RenderedDiff) String() string {
	return d.Render(nil)
}

// Added counts added lines, excluding headers.
func (d *RenderedDiff) Added() int {
	return d.count(MarkerAdded)
}

// Removed counts removed lines, excluding headers.
func (d *RenderedDiff) Removed() int {
	return d.count(MarkerRemoved)
}

func (d *RenderedDiff) count(marker Marker) int {
	if d == nil {
		return 0
	}

	n := 0

	for _, line := range d.Lines {
		if line.Marker == marker {
			n++
		}
	}

	return n
}
