// Package controller provides the terminal front-ends that display fixer
// progress and reports.
package controller

import (
	m "github.com/mouse-blink/gofixer/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeFix StartMode = iota
	ModeRules
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithFixMode sets the UI to fix progress mode.
func WithFixMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeFix
	}
}

// WithRulesMode sets the UI to rule listing mode.
func WithRulesMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRules
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeFix}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// UI displays run progress and results. Implementations can use different
// output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayRunInfo(info m.RunInfo)
	// UnitProcessed receives the status of every processed unit.
	UnitProcessed(status m.Status) error
	DisplayReport(report *m.RunReport) error
	DisplayRules(rules []m.RuleInfo) error
}
