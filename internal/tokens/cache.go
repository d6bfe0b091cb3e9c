package tokens

// Cache memoizes tokenization by text fingerprint. A Cache is not safe for
// concurrent use; give every worker its own instance.
type Cache struct {
	entries map[string][]Token
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]Token)}
}

// Parse returns a fresh stream over text. Streams never share token storage,
// so mutating one does not affect the cached parse. A nil Cache parses
// without memoizing.
func (c *Cache) Parse(text string) *Stream {
	if c == nil {
		return FromText(text)
	}

	key := Fingerprint(text)

	toks, ok := c.entries[key]
	if !ok {
		toks = tokenize(text)
		c.entries[key] = toks
	}

	return newStream(append([]Token(nil), toks...), text)
}

// Reset drops every cached parse.
func (c *Cache) Reset() {
	if c == nil {
		return
	}

	clear(c.entries)
}

// Len returns the number of cached parses.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}

	return len(c.entries)
}
