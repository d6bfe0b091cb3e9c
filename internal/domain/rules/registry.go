package rules

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownRule is returned when a requested rule is not registered.
var ErrUnknownRule = errors.New("unknown rule")

// Factory builds a fresh rule instance.
type Factory func() Rule

// Registry maps rule names to factories. Names keep registration order.
type Registry struct {
	names     []string
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Builtin returns a registry holding every built-in rule in default order.
func Builtin() *Registry {
	r := NewRegistry()

	for _, f := range []Factory{
		NewTrimTrailingWhitespace,
		NewNoTrailingSemicolons,
		NewNoBlankLinesAfterOpenBrace,
		NewNoPlusBuildLines,
		NewSingleBlankLineAtEOF,
	} {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}

	return r
}

// Register adds a factory under the name of the rule it builds.
func (r *Registry) Register(f Factory) error {
	name := f().Name()
	if name == "" {
		return fmt.Errorf("rule name cannot be empty")
	}

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("rule %q already registered", name)
	}

	r.names = append(r.names, name)
	r.factories[name] = f

	return nil
}

// Names returns every registered name in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// All builds every registered rule in registration order.
func (r *Registry) All() Set {
	set := make(Set, 0, len(r.names))
	for _, name := range r.names {
		set = append(set, r.factories[name]())
	}

	return set
}

// Resolve builds the rules named in names, keeping the caller's order. An
// empty list selects every registered rule.
func (r *Registry) Resolve(names []string) (Set, error) {
	if len(names) == 0 {
		return r.All(), nil
	}

	seen := make(map[string]struct{}, len(names))
	set := make(Set, 0, len(names))

	for _, name := range names {
		f, ok := r.factories[name]
		if !ok {
			if s := r.Suggest(name); s != "" {
				return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownRule, name, s)
			}

			return nil, fmt.Errorf("%w %q", ErrUnknownRule, name)
		}

		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("rule %q listed more than once", name)
		}

		seen[name] = struct{}{}
		set = append(set, f())
	}

	return set, nil
}

// Suggest returns the registered name closest to name, or "" when nothing is
// close enough.
func (r *Registry) Suggest(name string) string {
	best := ""
	bestDistance := len(name)/3 + 2

	for _, candidate := range r.names {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	return best
}
