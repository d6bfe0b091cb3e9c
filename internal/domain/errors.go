// Package domain implements the fix pipeline, the run orchestrator and the
// workflow that wires them to discovery, caching and presentation.
package domain

import "errors"

var (
	// ErrFatalIO marks an environment failure (reading or persisting a unit)
	// that stops the run instead of being classified per unit.
	ErrFatalIO = errors.New("fatal I/O error")

	// ErrUnitsFailed is returned by Workflow.Fix when the report lists unit
	// errors, so the CLI can exit non-zero.
	ErrUnitsFailed = errors.New("some units could not be fixed")
)
