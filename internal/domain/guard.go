package domain

import "strings"

const byteOrderMark = "\ufeff"

// tokenizerHazard reports content that go/scanner cannot tokenize losslessly:
// a NUL byte anywhere, or a byte order mark past the start of the text.
func tokenizerHazard(text string) (string, bool) {
	if strings.IndexByte(text, 0) >= 0 {
		return "NUL byte", true
	}

	if strings.Contains(strings.TrimPrefix(text, byteOrderMark), byteOrderMark) {
		return "byte order mark after start of file", true
	}

	return "", false
}
