package rules

import (
	"go/token"
	"strings"

	m "github.com/mouse-blink/gofixer/internal/model"
	"github.com/mouse-blink/gofixer/internal/tokens"
)

// autoSemicolon lists the tokens after which the Go scanner inserts a
// semicolon at the end of a line.
var autoSemicolon = map[token.Token]struct{}{
	token.IDENT:       {},
	token.INT:         {},
	token.FLOAT:       {},
	token.IMAG:        {},
	token.CHAR:        {},
	token.STRING:      {},
	token.BREAK:       {},
	token.CONTINUE:    {},
	token.FALLTHROUGH: {},
	token.RETURN:      {},
	token.INC:         {},
	token.DEC:         {},
	token.RPAREN:      {},
	token.RBRACK:      {},
	token.RBRACE:      {},
}

type noTrailingSemicolons struct{}

// NewNoTrailingSemicolons drops explicit semicolons that end a line.
func NewNoTrailingSemicolons() Rule {
	return noTrailingSemicolons{}
}

func (noTrailingSemicolons) Name() string { return "no_trailing_semicolons" }

func (noTrailingSemicolons) Description() string {
	return "Remove explicit semicolons at the end of a line where Go would insert one."
}

func (noTrailingSemicolons) Supports(file m.File) bool { return isGoFile(file) }

func (noTrailingSemicolons) IsCandidate(stream *tokens.Stream) bool {
	return stream.Any(func(t tokens.Token) bool { return t.Is(token.SEMICOLON) })
}

func (noTrailingSemicolons) Fix(_ m.File, stream *tokens.Stream) error {
	for i := 0; i < stream.Len(); i++ {
		if !stream.At(i).Is(token.SEMICOLON) || stream.At(i).Text != ";" {
			continue
		}

		if redundantSemicolon(stream, i) {
			clearBlanksBefore(stream, i)
			stream.Clear(i)
		}
	}

	return nil
}

// clearBlanksBefore empties the blanks between the previous token and the
// semicolon at i, so that no trailing whitespace is left behind. The blanks
// stay when a comment directly follows the semicolon.
func clearBlanksBefore(stream *tokens.Stream, i int) {
	if next := stream.NextNonEmpty(i); next >= 0 && stream.At(next).IsComment() {
		return
	}

	for j := i - 1; j >= 0; j-- {
		t := stream.At(j)
		if t.Text == "" {
			continue
		}

		if !t.IsWhitespace() || strings.ContainsAny(t.Text, "\r\n") {
			return
		}

		stream.Clear(j)
	}
}

func redundantSemicolon(stream *tokens.Stream, i int) bool {
	prev := stream.PrevCode(i)
	if prev < 0 {
		return false
	}

	if _, ok := autoSemicolon[stream.At(prev).Tok]; !ok {
		return false
	}

	return endsLine(stream, i)
}

// endsLine reports whether only blanks and an optional line comment follow
// slot i before the next line break.
func endsLine(stream *tokens.Stream, i int) bool {
	next := stream.NextNonEmpty(i)
	if next < 0 {
		return true
	}

	t := stream.At(next)

	if t.IsWhitespace() {
		if strings.Contains(t.Text, "\n") {
			return true
		}

		next = stream.NextNonEmpty(next)
		if next < 0 {
			return true
		}

		t = stream.At(next)
	}

	return t.IsComment() && strings.HasPrefix(t.Text, "//")
}

type noBlankLinesAfterOpenBrace struct{}

// NewNoBlankLinesAfterOpenBrace removes blank lines that directly follow an
// opening brace.
func NewNoBlankLinesAfterOpenBrace() Rule {
	return noBlankLinesAfterOpenBrace{}
}

func (noBlankLinesAfterOpenBrace) Name() string { return "no_blank_lines_after_open_brace" }

func (noBlankLinesAfterOpenBrace) Description() string {
	return "There must be no blank lines directly after an opening brace."
}

func (noBlankLinesAfterOpenBrace) Supports(file m.File) bool { return isGoFile(file) }

func (noBlankLinesAfterOpenBrace) IsCandidate(stream *tokens.Stream) bool {
	return stream.Any(func(t tokens.Token) bool { return t.Is(token.LBRACE) })
}

func (noBlankLinesAfterOpenBrace) Fix(_ m.File, stream *tokens.Stream) error {
	for i := 0; i < stream.Len(); i++ {
		if !stream.At(i).Is(token.LBRACE) {
			continue
		}

		next := stream.NextNonEmpty(i)
		if next < 0 || !stream.At(next).IsWhitespace() {
			continue
		}

		text := stream.At(next).Text
		if strings.Count(text, "\n") < 2 {
			continue
		}

		eol := "\n"
		if strings.Contains(text, "\r\n") {
			eol = "\r\n"
		}

		stream.SetText(next, eol+text[strings.LastIndex(text, "\n")+1:])
	}

	return nil
}
