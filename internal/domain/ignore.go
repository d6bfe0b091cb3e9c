package domain

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mouse-blink/gofixer/internal/domain/rules"
	"github.com/mouse-blink/gofixer/internal/tokens"
)

const ignoreDirective = "gofixer:ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(name string) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[strings.ToLower(name)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective recognises "//gofixer:ignore" optionally followed by a
// comma separated list of rule names.
func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	// The directive ends at a blank or at the end of the comment.
	rest := s[len(ignoreDirective):]
	if r, _ := utf8.DecodeRuneInString(rest); rest != "" && !unicode.IsSpace(r) {
		return ignoreRule{}, false
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

// fileIgnoreRule merges the directives found in comments above the package
// clause.
func fileIgnoreRule(stream *tokens.Stream) ignoreRule {
	var rule ignoreRule

	for i := 0; i < stream.Len(); i++ {
		t := stream.At(i)
		if t.Is(token.PACKAGE) {
			break
		}

		if !t.IsComment() {
			continue
		}

		if r, ok := parseIgnoreDirective(t.Text); ok {
			mergeIgnoreRule(&rule, r)
		}
	}

	return rule
}

// activeRules drops the rules a file opted out of, keeping the order.
func activeRules(set rules.Set, ignore ignoreRule) rules.Set {
	if !ignore.all && len(ignore.names) == 0 {
		return set
	}

	active := make(rules.Set, 0, len(set))

	for _, rule := range set {
		if !ignore.ignores(rule.Name()) {
			active = append(active, rule)
		}
	}

	return active
}
