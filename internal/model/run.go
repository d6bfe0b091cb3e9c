package model

// RunInfo describes a run before it starts.
type RunInfo struct {
	RunID   string
	Units   int
	Threads int
	DryRun  bool
	Rules   []string
}

// RuleInfo describes a registered rule.
type RuleInfo struct {
	Name        string
	Description string
}
