package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "github.com/mouse-blink/gofixer/internal/model"
)

// progressLineWidth is the number of status symbols printed per line.
const progressLineWidth = 50

// reportedStatuses fixes the order of the summary table.
var reportedStatuses = []m.Status{
	m.StatusFixed,
	m.StatusNoChanges,
	m.StatusSkipped,
	m.StatusInvalidSource,
	m.StatusInvalidAfterFixing,
	m.StatusRuntimeFailure,
}

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd       *cobra.Command
	mode      StartMode
	colorize  bool
	total     int
	processed int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// WithColor enables ANSI colors on diff markers.
func (s *SimpleUI) WithColor(enabled bool) *SimpleUI {
	s.colorize = enabled

	return s
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)
	s.mode = cfg.mode
	s.total = 0
	s.processed = 0

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
	s.endProgressLine()
}

// Wait is a no-op for SimpleUI.
func (s *SimpleUI) Wait() {}

// DisplayRunInfo prints what the run is about to do.
func (s *SimpleUI) DisplayRunInfo(info m.RunInfo) {
	s.total = info.Units

	workers := info.Threads
	if workers < 1 {
		workers = 1
	}

	s.printf("Loaded %d rule(s), fixing %d unit(s) with %d worker(s)", len(info.Rules), info.Units, workers)

	if info.DryRun {
		s.printf(" (dry run)")
	}

	s.printf("\n")

	if info.RunID != "" {
		s.printf("Run %s\n", info.RunID)
	}

	s.printf("\n")
}

// UnitProcessed prints the progress symbol of a processed unit.
func (s *SimpleUI) UnitProcessed(status m.Status) error {
	s.processed++
	s.printf("%s", status.Symbol())

	if s.processed%progressLineWidth == 0 || s.processed == s.total {
		s.printProgressCount()
	}

	return nil
}

func (s *SimpleUI) printProgressCount() {
	if s.total <= 0 {
		s.printf("\n")
		return
	}

	pad := progressLineWidth - (s.processed-1)%progressLineWidth - 1
	width := len(fmt.Sprintf("%d", s.total))
	s.printf("%s %*d / %d (%3d%%)\n", strings.Repeat(" ", pad), width, s.processed, s.total, s.processed*100/s.total)
}

func (s *SimpleUI) endProgressLine() {
	if s.processed == 0 || s.processed%progressLineWidth == 0 || s.processed == s.total {
		return
	}

	s.printProgressCount()
	s.processed = s.total
}

// DisplayReport prints the changed units, their diffs, the unit errors and a
// summary.
func (s *SimpleUI) DisplayReport(report *m.RunReport) error {
	if report == nil {
		return fmt.Errorf("no report to display")
	}

	s.endProgressLine()

	if len(report.Changed) > 0 {
		s.printChanged(report)
	}

	if report.HasErrors() {
		s.printErrors(report)
	}

	s.printSummary(report)

	return nil
}

func (s *SimpleUI) printChanged(report *m.RunReport) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Path", "Applied Rules"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, changed := range report.Changed {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			string(changed.Path),
			strings.Join(changed.AppliedRules, ", "),
		})
	}

	table.Render()

	title := "Fixed units"
	if report.DryRun {
		title = "Units that would be fixed"
	}

	s.printf("\n%s:\n%s", title, tableBuffer.String())

	for _, changed := range report.Changed {
		if changed.Diff == nil || len(changed.Diff.Lines) == 0 {
			continue
		}

		s.printf("\n%s%s\n%s\n", m.DiffIndent, changed.Path, changed.Diff.Render(s.styleMarker))
	}
}

func (s *SimpleUI) printErrors(report *m.RunReport) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Path", "Kind", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, unitErr := range report.Errors {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			string(unitErr.Path),
			errorKindLabel(unitErr.Kind),
			unitErr.Message,
		})
	}

	table.Render()
	s.printf("\nErrors:\n%s", tableBuffer.String())
}

func (s *SimpleUI) printSummary(report *m.RunReport) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Status", "Units"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, status := range reportedStatuses {
		table.Append([]string{statusLabel(status), fmt.Sprintf("%d", report.Counts[status])})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", report.Total())})
	table.Render()

	s.printf("\n%s", tableBuffer.String())

	verb := "Fixed"
	if report.DryRun {
		verb = "Would fix"
	}

	s.printf("\n%s %d of %d unit(s) in %.3f seconds.\n",
		verb, len(report.Changed), report.Total(), report.Elapsed.Seconds())
}

// DisplayRules prints the registered rules.
func (s *SimpleUI) DisplayRules(rules []m.RuleInfo) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, rule := range rules {
		table.Append([]string{rule.Name, rule.Description})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Rules %d", len(rules)), ""})
	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) styleMarker(marker m.Marker, prefix string) string {
	var c *color.Color

	switch marker {
	case m.MarkerAdded, m.MarkerHeaderNew:
		c = color.New(color.FgGreen)
	case m.MarkerRemoved, m.MarkerHeaderOld:
		c = color.New(color.FgRed)
	default:
		return prefix
	}

	if s.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c.Sprint(prefix)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// statusLabel turns a status tag such as "no-changes" into "No Changes".
func statusLabel(status m.Status) string {
	return cases.Title(language.English).String(strings.ReplaceAll(status.String(), "-", " "))
}

func errorKindLabel(kind m.ErrorKind) string {
	return cases.Title(language.English).String(string(kind))
}
