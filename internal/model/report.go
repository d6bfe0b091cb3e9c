package model

import "time"

// ErrorKind classifies a unit error in the run report.
type ErrorKind string

const (
	// ErrorKindInvalid marks a unit that was already broken before fixing.
	ErrorKindInvalid ErrorKind = "invalid"
	// ErrorKindLint marks a unit that a rule broke; the original is preserved.
	ErrorKindLint ErrorKind = "lint"
	// ErrorKindException marks a rule that failed while fixing.
	ErrorKindException ErrorKind = "exception"
)

// ChangedUnit holds what was applied to a fixed unit.
type ChangedUnit struct {
	Path         Path
	AppliedRules []string
	Diff         *RenderedDiff // nil unless diffs were requested
}

// UnitError is a classified per-unit failure.
type UnitError struct {
	Path    Path
	Kind    ErrorKind
	Message string
}

// RunReport aggregates the outcomes of one run.
type RunReport struct {
	RunID   string
	DryRun  bool
	Changed []ChangedUnit // discovery order
	Errors  []UnitError   // discovery order

	// Counts holds how many units ended in each status, including skipped and
	// unchanged units which are not listed individually.
	Counts    map[Status]int
	Durations map[Path]time.Duration
	Elapsed   time.Duration
}

// NewRunReport creates an empty report.
func NewRunReport(runID string, dryRun bool) *RunReport {
	return &RunReport{
		RunID:     runID,
		DryRun:    dryRun,
		Changed:   []ChangedUnit{},
		Errors:    []UnitError{},
		Counts:    make(map[Status]int),
		Durations: make(map[Path]time.Duration),
	}
}

// Record classifies an outcome into the report.
func (r *RunReport) Record(path Path, outcome Outcome, elapsed time.Duration) {
	r.Counts[outcome.Status]++
	r.Durations[path] = elapsed

	if outcome.Status == StatusFixed {
		r.Changed = append(r.Changed, ChangedUnit{
			Path:         path,
			AppliedRules: outcome.AppliedRules,
			Diff:         outcome.Diff,
		})

		return
	}

	if kind, ok := outcome.ErrorKind(); ok {
		r.Errors = append(r.Errors, UnitError{
			Path:    path,
			Kind:    kind,
			Message: outcome.Message(),
		})
	}
}

// HasErrors reports whether any unit ended in an error outcome.
func (r *RunReport) HasErrors() bool {
	return len(r.Errors) > 0
}

// Total returns the number of processed units.
func (r *RunReport) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}

	return total
}

// ChangedPaths lists fixed units in discovery order.
func (r *RunReport) ChangedPaths() []Path {
	paths := make([]Path, 0, len(r.Changed))
	for _, c := range r.Changed {
		paths = append(paths, c.Path)
	}

	return paths
}

// Lookup returns the changed entry for path.
func (r *RunReport) Lookup(path Path) (ChangedUnit, bool) {
	for _, c := range r.Changed {
		if c.Path == path {
			return c, true
		}
	}

	return ChangedUnit{}, false
}

// ErrorsOfKind returns the unit errors of the given kind.
func (r *RunReport) ErrorsOfKind(kind ErrorKind) []UnitError {
	var out []UnitError

	for _, e := range r.Errors {
		if e.Kind == kind {
			out = append(out, e)
		}
	}

	return out
}
