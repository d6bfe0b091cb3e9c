package tokens

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromText_RoundTrip(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"package only":     "package main\n",
		"trailing spaces":  "a=1;  \n",
		"comments":         "package p // trailing\n\n/* block\n comment */\nvar x = 1\n",
		"raw string crlf":  "package p\r\nvar s = `a\r\nb`\r\n",
		"no final newline": "package p\nfunc f() {}",
		"illegal bytes":    "package p\nvar x = 1 @ 2\n",
		"bom":              "\ufeffpackage p\n",
		"unterminated":     "package p\nvar s = \"abc\n",
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			s := FromText(src)
			assert.Equal(t, src, s.Text())
			assert.False(t, s.Changed())

			// Force a rebuild from the slots rather than the cached text.
			s.touch()
			assert.Equal(t, src, s.Text())
		})
	}
}

func TestFromText_Kinds(t *testing.T) {
	s := FromText("a=1; // c\n")

	var kinds []Kind
	var texts []string

	for i := 0; i < s.Len(); i++ {
		kinds = append(kinds, s.At(i).Kind)
		texts = append(texts, s.At(i).Text)
	}

	assert.Equal(t, []string{"a", "=", "1", ";", " ", "// c", "\n"}, texts)
	assert.Equal(t, []Kind{KindCode, KindCode, KindCode, KindCode, KindWhitespace, KindComment, KindWhitespace}, kinds)
	assert.True(t, s.At(3).Is(token.SEMICOLON))
	assert.True(t, s.At(0).Is(token.IDENT))
}

func TestStream_SetText(t *testing.T) {
	s := FromText("a = 1\n")

	s.SetText(0, "a")
	assert.False(t, s.Changed(), "same text must not mark the stream as changed")

	s.SetText(0, "b")
	assert.True(t, s.Changed())
	assert.Equal(t, "b = 1\n", s.Text())

	s.ClearChanged()
	assert.False(t, s.Changed())
}

func TestStream_ClearEmpty(t *testing.T) {
	s := FromText("a;\n")
	require.Equal(t, 3, s.Len())

	s.Clear(1)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "a\n", s.Text())

	s.ClearEmpty()
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "a\n", s.Text())
}

func TestStream_Insert(t *testing.T) {
	s := FromText("a")

	s.Insert(s.Len(), Token{Kind: KindWhitespace, Text: "\n"})
	assert.True(t, s.Changed())
	assert.Equal(t, "a\n", s.Text())

	s.Insert(0, Token{Kind: KindComment, Tok: token.COMMENT, Text: "// x"}, Token{Kind: KindWhitespace, Text: "\n"})
	assert.Equal(t, "// x\na\n", s.Text())
}

func TestStream_Fingerprint(t *testing.T) {
	a := FromText("a = 1\n")
	b := FromText("a = 1\n")
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, Fingerprint("a = 1\n"), a.Fingerprint())

	b.SetText(0, "c")
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	b.SetText(0, "a")
	assert.Equal(t, a.Fingerprint(), b.Fingerprint(), "reverting a change restores the fingerprint")
	assert.True(t, b.Changed())
}

func TestStream_Navigation(t *testing.T) {
	s := FromText("x // c\n;")

	semi := s.Len() - 1
	require.True(t, s.At(semi).Is(token.SEMICOLON))
	assert.Equal(t, 0, s.PrevCode(semi))
	assert.Equal(t, -1, s.PrevCode(0))
	assert.Equal(t, 1, s.NextNonEmpty(0))
	assert.Equal(t, -1, s.NextNonEmpty(semi))
}

func TestCache_Parse(t *testing.T) {
	c := NewCache()

	first := c.Parse("a = 1\n")
	assert.Equal(t, 1, c.Len())

	first.SetText(0, "b")

	second := c.Parse("a = 1\n")
	assert.Equal(t, "a = 1\n", second.Text(), "mutating a stream must not leak into the cache")
	assert.Equal(t, 1, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestCache_Nil(t *testing.T) {
	var c *Cache

	s := c.Parse("a\n")
	assert.Equal(t, "a\n", s.Text())
	assert.Equal(t, 0, c.Len())
	c.Reset()
}
