package rules

import (
	"strings"

	m "github.com/mouse-blink/gofixer/internal/model"
	"github.com/mouse-blink/gofixer/internal/tokens"
)

const blanks = " \t"

type trimTrailingWhitespace struct{}

// NewTrimTrailingWhitespace removes spaces and tabs at the end of lines.
func NewTrimTrailingWhitespace() Rule {
	return trimTrailingWhitespace{}
}

func (trimTrailingWhitespace) Name() string { return "trim_trailing_whitespace" }

func (trimTrailingWhitespace) Description() string {
	return "Remove trailing spaces and tabs at the end of lines and line comments."
}

func (trimTrailingWhitespace) Supports(m.File) bool { return true }

func (r trimTrailingWhitespace) IsCandidate(stream *tokens.Stream) bool {
	return stream.Any(func(t tokens.Token) bool {
		return trimToken(t) != t.Text
	})
}

func (r trimTrailingWhitespace) Fix(_ m.File, stream *tokens.Stream) error {
	for i := 0; i < stream.Len(); i++ {
		stream.SetText(i, trimToken(stream.At(i)))
	}

	return nil
}

func trimToken(t tokens.Token) string {
	switch {
	case t.IsWhitespace():
		return trimLines(t.Text)
	case t.IsComment() && strings.HasPrefix(t.Text, "//"):
		return strings.TrimRight(t.Text, blanks)
	default:
		return t.Text
	}
}

// trimLines trims every line of a whitespace gap except the last one, which
// is the indentation of whatever follows the gap.
func trimLines(text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines)-1; i++ {
		line := lines[i]
		if strings.HasSuffix(line, "\r") {
			lines[i] = strings.TrimRight(line[:len(line)-1], blanks) + "\r"

			continue
		}

		lines[i] = strings.TrimRight(line, blanks)
	}

	return strings.Join(lines, "\n")
}

type singleBlankLineAtEOF struct{}

// NewSingleBlankLineAtEOF makes a file end with exactly one line break.
func NewSingleBlankLineAtEOF() Rule {
	return singleBlankLineAtEOF{}
}

func (singleBlankLineAtEOF) Name() string { return "single_blank_line_at_eof" }

func (singleBlankLineAtEOF) Description() string {
	return "A file must end with exactly one line break."
}

func (singleBlankLineAtEOF) Supports(m.File) bool { return true }

func (singleBlankLineAtEOF) IsCandidate(stream *tokens.Stream) bool {
	last := lastNonEmpty(stream)
	if last < 0 {
		return false
	}

	_, ok := eofText(stream.At(last))

	return ok
}

func (singleBlankLineAtEOF) Fix(_ m.File, stream *tokens.Stream) error {
	last := lastNonEmpty(stream)
	if last < 0 {
		return nil
	}

	tok := stream.At(last)

	text, ok := eofText(tok)
	if !ok {
		return nil
	}

	if tok.IsWhitespace() {
		stream.SetText(last, text)

		return nil
	}

	stream.Insert(last+1, tokens.Token{Kind: tokens.KindWhitespace, Text: text})

	return nil
}

// eofText returns the text the final slot should have, or false when it is
// already correct. For a code or comment slot the returned text is the gap to
// append after it.
func eofText(last tokens.Token) (string, bool) {
	eol := "\n"
	if strings.Contains(last.Text, "\r\n") {
		eol = "\r\n"
	}

	if !last.IsWhitespace() {
		return eol, true
	}

	want := strings.TrimRight(last.Text, blanks+"\r\n") + eol

	return want, want != last.Text
}

func lastNonEmpty(stream *tokens.Stream) int {
	for i := stream.Len() - 1; i >= 0; i-- {
		if stream.At(i).Text != "" {
			return i
		}
	}

	return -1
}
