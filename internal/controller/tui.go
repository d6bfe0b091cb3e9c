package controller

import (
	"errors"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/gofixer/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
	closed  bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	if cfg.mode == ModeRules {
		return t.startWithModel(newRulesModel())
	}

	return t.startWithModel(newFixModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithMouseCellMotion(),
	)
	t.done = make(chan struct{})
	t.started = true
	t.closed = false

	program, done := t.program, t.done

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	return nil
}

func (t *TUI) ensureStarted(options ...StartOption) {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start(options...)
	}
}

// send forwards msg to the running program. It is a no-op before Start.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Close tells the program that the run is over. The program keeps running
// while it has results to browse.
func (t *TUI) Close() {
	t.mu.Lock()
	if !t.started || t.closed {
		t.mu.Unlock()
		return
	}

	t.closed = true
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(closeMsg{})
	}
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// DisplayRunInfo shows the run parameters.
func (t *TUI) DisplayRunInfo(info m.RunInfo) {
	t.ensureStarted(WithFixMode())
	t.send(runInfoMsg{info: info})
}

// UnitProcessed advances the progress bar.
func (t *TUI) UnitProcessed(status m.Status) error {
	t.send(unitProcessedMsg{status: status})

	return nil
}

// DisplayReport switches the program to the results view.
func (t *TUI) DisplayReport(report *m.RunReport) error {
	if report == nil {
		return errors.New("no report to display")
	}

	t.ensureStarted(WithFixMode())
	t.send(reportMsg{report: report})

	return nil
}

// DisplayRules shows the registered rules.
func (t *TUI) DisplayRules(rules []m.RuleInfo) error {
	t.ensureStarted(WithRulesMode())
	t.send(rulesMsg{rules: rules})

	return nil
}
