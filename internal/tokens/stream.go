// Package tokens provides a lossless, mutable token stream over Go source
// text. Every byte of the input belongs to exactly one token, so Text always
// reproduces the input until a token is modified.
package tokens

import (
	"crypto/sha256"
	"fmt"
	"go/scanner"
	"go/token"
	"strings"
)

// Kind groups tokens by how rules treat them.
type Kind int

const (
	// KindCode is any token the Go scanner produces except comments.
	KindCode Kind = iota
	// KindComment is a line or block comment.
	KindComment
	// KindWhitespace is the text between two scanned tokens.
	KindWhitespace
)

// Token is one slot of a Stream. Tok is token.ILLEGAL for whitespace.
type Token struct {
	Kind Kind
	Tok  token.Token
	Text string
}

// IsWhitespace reports whether the token is a whitespace gap.
func (t Token) IsWhitespace() bool { return t.Kind == KindWhitespace }

// IsComment reports whether the token is a comment.
func (t Token) IsComment() bool { return t.Kind == KindComment }

// IsCode reports whether the token is significant Go code.
func (t Token) IsCode() bool { return t.Kind == KindCode }

// Is reports whether the token is the given Go token.
func (t Token) Is(tok token.Token) bool { return t.Kind == KindCode && t.Tok == tok }

// Stream is a mutable sequence of tokens.
type Stream struct {
	tokens  []Token
	changed bool
	code    string
	fresh   bool
}

// FromText tokenizes text without going through a Cache.
func FromText(text string) *Stream {
	return newStream(tokenize(text), text)
}

func newStream(toks []Token, text string) *Stream {
	return &Stream{tokens: toks, code: text, fresh: true}
}

// Len returns the number of slots, including empty ones.
func (s *Stream) Len() int { return len(s.tokens) }

// At returns the token at index i.
func (s *Stream) At(i int) Token { return s.tokens[i] }

// SetText replaces the text of slot i. The stream is only marked as changed
// when the text actually differs.
func (s *Stream) SetText(i int, text string) {
	if s.tokens[i].Text == text {
		return
	}

	s.tokens[i].Text = text
	s.touch()
}

// Clear empties slot i. Empty slots are dropped by ClearEmpty.
func (s *Stream) Clear(i int) {
	s.SetText(i, "")
}

// Insert places toks before index i. Inserting at Len appends.
func (s *Stream) Insert(i int, toks ...Token) {
	if len(toks) == 0 {
		return
	}

	s.tokens = append(s.tokens[:i], append(append([]Token{}, toks...), s.tokens[i:]...)...)
	s.touch()
}

// Changed reports whether the stream was mutated since the last ClearChanged.
func (s *Stream) Changed() bool { return s.changed }

// ClearChanged resets the changed flag.
func (s *Stream) ClearChanged() { s.changed = false }

// ClearEmpty drops slots left empty by rewrites.
func (s *Stream) ClearEmpty() {
	kept := s.tokens[:0]

	for _, t := range s.tokens {
		if t.Text != "" {
			kept = append(kept, t)
		}
	}

	s.tokens = kept
}

// Text serializes the stream back to source text.
func (s *Stream) Text() string {
	if s.fresh {
		return s.code
	}

	var b strings.Builder

	for _, t := range s.tokens {
		b.WriteString(t.Text)
	}

	s.code = b.String()
	s.fresh = true

	return s.code
}

// Fingerprint returns the content fingerprint of the current text.
func (s *Stream) Fingerprint() string {
	return Fingerprint(s.Text())
}

// Any reports whether some token satisfies pred.
func (s *Stream) Any(pred func(Token) bool) bool {
	for _, t := range s.tokens {
		if pred(t) {
			return true
		}
	}

	return false
}

// PrevCode returns the index of the closest code token before i, or -1.
func (s *Stream) PrevCode(i int) int {
	for j := i - 1; j >= 0; j-- {
		if s.tokens[j].IsCode() && s.tokens[j].Text != "" {
			return j
		}
	}

	return -1
}

// NextNonEmpty returns the index of the first non-empty slot after i, or -1.
func (s *Stream) NextNonEmpty(i int) int {
	for j := i + 1; j < len(s.tokens); j++ {
		if s.tokens[j].Text != "" {
			return j
		}
	}

	return -1
}

func (s *Stream) touch() {
	s.changed = true
	s.fresh = false
}

// Fingerprint returns the SHA-256 hex digest of text.
func Fingerprint(text string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(text)))
}

func tokenize(src string) []Token {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var s scanner.Scanner

	s.Init(file, []byte(src), func(token.Position, string) {}, scanner.ScanComments)

	var out []Token

	offset := 0

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		// Automatic semicolons have no text of their own.
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		start := file.Offset(pos)
		if start < offset {
			continue
		}

		if start > offset {
			out = append(out, Token{Kind: KindWhitespace, Tok: token.ILLEGAL, Text: src[offset:start]})
		}

		end := tokenEnd(src, start, tok, lit)
		if end == start {
			offset = start

			continue
		}

		kind := KindCode
		if tok == token.COMMENT {
			kind = KindComment
		}

		out = append(out, Token{Kind: kind, Tok: tok, Text: src[start:end]})
		offset = end
	}

	if offset < len(src) {
		out = append(out, Token{Kind: KindWhitespace, Tok: token.ILLEGAL, Text: src[offset:]})
	}

	return out
}

// tokenEnd finds where the scanned literal ends in src. The scanner drops
// carriage returns from comments and raw strings, so those are skipped while
// matching.
func tokenEnd(src string, start int, tok token.Token, lit string) int {
	if lit == "" {
		lit = tok.String()
	}

	i, j := 0, start
	for i < len(lit) && j < len(src) {
		switch {
		case src[j] == lit[i]:
			i++
			j++
		case src[j] == '\r':
			j++
		default:
			return j
		}
	}

	return j
}
