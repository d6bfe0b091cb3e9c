// Package rules provides the built-in rewriting rules and their registry.
package rules

import (
	"crypto/sha256"
	"fmt"

	m "github.com/mouse-blink/gofixer/internal/model"
	"github.com/mouse-blink/gofixer/internal/tokens"
)

// signatureVersion is mixed into every rule-set signature so that a release
// changing rule behaviour invalidates existing cache entries.
const signatureVersion = "gofixer/1"

// Rule is a named rewrite over a token stream.
type Rule interface {
	Name() string
	Description() string
	// Supports reports whether the rule applies to this kind of file.
	Supports(file m.File) bool
	// IsCandidate is a cheap check on the tokens before Fix is called.
	IsCandidate(stream *tokens.Stream) bool
	// Fix rewrites the stream in place.
	Fix(file m.File, stream *tokens.Stream) error
}

// Configured is implemented by rules whose behaviour depends on options.
// The returned key takes part in the rule-set signature.
type Configured interface {
	ConfigKey() string
}

// Set is an ordered list of active rules. The order is never changed.
type Set []Rule

// Names returns the rule names in order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, r := range s {
		names = append(names, r.Name())
	}

	return names
}

// Infos describes the rules for display.
func (s Set) Infos() []m.RuleInfo {
	infos := make([]m.RuleInfo, 0, len(s))
	for _, r := range s {
		infos = append(infos, m.RuleInfo{Name: r.Name(), Description: r.Description()})
	}

	return infos
}

// Signature fingerprints the ordered rule configuration.
func (s Set) Signature() string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%s\n", signatureVersion)

	for _, r := range s {
		_, _ = fmt.Fprintf(h, "%s", r.Name())

		if c, ok := r.(Configured); ok {
			_, _ = fmt.Fprintf(h, "=%s", c.ConfigKey())
		}

		_, _ = h.Write([]byte{'\n'})
	}

	return fmt.Sprintf("%x", h.Sum(nil))
}

func isGoFile(file m.File) bool {
	return file.Ext() == ".go"
}
