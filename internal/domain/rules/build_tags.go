package rules

import (
	"go/token"
	"strings"

	m "github.com/mouse-blink/gofixer/internal/model"
	"github.com/mouse-blink/gofixer/internal/tokens"
)

type noPlusBuildLines struct{}

// NewNoPlusBuildLines removes legacy "// +build" constraints from files that
// already carry a "//go:build" line.
func NewNoPlusBuildLines() Rule {
	return noPlusBuildLines{}
}

func (noPlusBuildLines) Name() string { return "no_plus_build_lines" }

func (noPlusBuildLines) Description() string {
	return `Remove "// +build" lines when a "//go:build" constraint is present.`
}

func (noPlusBuildLines) Supports(file m.File) bool { return isGoFile(file) }

func (noPlusBuildLines) IsCandidate(stream *tokens.Stream) bool {
	hasGoBuild, hasPlusBuild := false, false

	eachHeaderComment(stream, func(_ int, text string) {
		hasGoBuild = hasGoBuild || isGoBuild(text)
		hasPlusBuild = hasPlusBuild || isPlusBuild(text)
	})

	return hasGoBuild && hasPlusBuild
}

func (r noPlusBuildLines) Fix(_ m.File, stream *tokens.Stream) error {
	if !r.IsCandidate(stream) {
		return nil
	}

	var lines []int

	eachHeaderComment(stream, func(i int, text string) {
		if isPlusBuild(text) && startsLine(stream, i) {
			lines = append(lines, i)
		}
	})

	for _, i := range lines {
		stream.Clear(i)

		next := i + 1
		if next >= stream.Len() || !stream.At(next).IsWhitespace() {
			continue
		}

		gap := stream.At(next).Text
		if nl := strings.Index(gap, "\n"); nl >= 0 {
			stream.SetText(next, gap[nl+1:])
		}
	}

	return nil
}

// eachHeaderComment visits the comments placed before the package clause.
func eachHeaderComment(stream *tokens.Stream, fn func(i int, text string)) {
	for i := 0; i < stream.Len(); i++ {
		t := stream.At(i)
		if t.Is(token.PACKAGE) {
			return
		}

		if t.IsComment() {
			fn(i, t.Text)
		}
	}
}

func startsLine(stream *tokens.Stream, i int) bool {
	for j := i - 1; j >= 0; j-- {
		t := stream.At(j)
		if t.Text == "" {
			continue
		}

		return t.IsWhitespace() && strings.HasSuffix(t.Text, "\n")
	}

	return true
}

func isGoBuild(text string) bool {
	return strings.HasPrefix(text, "//go:build ")
}

func isPlusBuild(text string) bool {
	text = strings.TrimPrefix(text, "//")

	return strings.HasPrefix(strings.TrimLeft(text, blanks), "+build")
}
