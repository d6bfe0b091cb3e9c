package model

import "fmt"

// Status is the tag of an Outcome.
type Status int

// Outcome statuses. The numbering is stable and shows up in logs.
const (
	StatusInvalidSource Status = iota + 1
	StatusSkipped
	StatusNoChanges
	StatusFixed
	StatusRuntimeFailure
	StatusInvalidAfterFixing
)

func (s Status) String() string {
	switch s {
	case StatusInvalidSource:
		return "invalid"
	case StatusSkipped:
		return "skipped"
	case StatusNoChanges:
		return "no-changes"
	case StatusFixed:
		return "fixed"
	case StatusRuntimeFailure:
		return "exception"
	case StatusInvalidAfterFixing:
		return "lint"
	default:
		return "unknown"
	}
}

// Symbol is the single-character progress marker for a status.
func (s Status) Symbol() string {
	switch s {
	case StatusInvalidSource:
		return "I"
	case StatusSkipped:
		return "S"
	case StatusNoChanges:
		return "."
	case StatusFixed:
		return "F"
	case StatusRuntimeFailure:
		return "E"
	case StatusInvalidAfterFixing:
		return "L"
	default:
		return "?"
	}
}

// Skip reasons.
const (
	ReasonNoContent = "No content"
	ReasonNoChanges = "No changes"
)

// Diagnostic describes why a text failed validation or why a rule failed.
// Line and Column are 1-based and zero when unknown.
type Diagnostic struct {
	Message string
	Line    int
	Column  int
}

func (d *Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
	}

	return d.Message
}

// Outcome is the result of running the fix pipeline on one unit. Exactly one
// of the payload fields is meaningful, depending on Status.
type Outcome struct {
	Status Status

	// Reason is set for StatusSkipped.
	Reason string

	// Diagnostic is set for StatusInvalidSource, StatusInvalidAfterFixing and
	// StatusRuntimeFailure.
	Diagnostic *Diagnostic

	// AppliedRules and Diff are set for StatusFixed. Diff stays nil unless a
	// diff was requested.
	AppliedRules []string
	Diff         *RenderedDiff
}

// Skipped builds an outcome for a unit that was not fixed on purpose.
func Skipped(reason string) Outcome {
	return Outcome{Status: StatusSkipped, Reason: reason}
}

// InvalidSource builds an outcome for a unit that failed validation before fixing.
func InvalidSource(diag *Diagnostic) Outcome {
	return Outcome{Status: StatusInvalidSource, Diagnostic: diag}
}

// NoChanges builds an outcome for a unit whose content did not change.
func NoChanges() Outcome {
	return Outcome{Status: StatusNoChanges}
}

// Fixed builds an outcome for a unit that was rewritten.
func Fixed(appliedRules []string) Outcome {
	return Outcome{Status: StatusFixed, AppliedRules: appliedRules}
}

// InvalidAfterFixing builds an outcome for a unit whose rewritten content
// failed validation.
func InvalidAfterFixing(diag *Diagnostic) Outcome {
	return Outcome{Status: StatusInvalidAfterFixing, Diagnostic: diag}
}

// RuntimeFailure builds an outcome for a rule that failed while fixing.
func RuntimeFailure(diag *Diagnostic) Outcome {
	return Outcome{Status: StatusRuntimeFailure, Diagnostic: diag}
}

// WithDiff returns a copy of the outcome carrying diff.
func (o Outcome) WithDiff(diff *RenderedDiff) Outcome {
	o.Diff = diff

	return o
}

// IsError reports whether the outcome must be surfaced as a unit error.
func (o Outcome) IsError() bool {
	_, ok := o.ErrorKind()

	return ok
}

// ErrorKind maps error outcomes to their report kind.
func (o Outcome) ErrorKind() (ErrorKind, bool) {
	switch o.Status {
	case StatusInvalidSource:
		return ErrorKindInvalid, true
	case StatusInvalidAfterFixing:
		return ErrorKindLint, true
	case StatusRuntimeFailure:
		return ErrorKindException, true
	default:
		return "", false
	}
}

// Message returns the diagnostic or skip reason, if any.
func (o Outcome) Message() string {
	if o.Diagnostic != nil {
		return o.Diagnostic.Error()
	}

	return o.Reason
}
