package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/gofixer/internal/model"
)

// resultDelegate renders changed and failed units in the results list.
type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	result, ok := item.(resultItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	// Status column and spacing take twelve columns; path and detail share the rest.
	available := m.Width() - 12
	pathWidth := available / 2
	detailWidth := available - pathWidth - 2

	statusStyle, pathStyle, detailStyle := d.styles(result, isSelected)

	path := truncateToWidth(result.path, pathWidth)
	if isSelected {
		path = animateScroll(result.path, pathWidth, d.offset)
	}

	line := fmt.Sprintf("%s  %s  %s",
		statusStyle.Render(fmt.Sprintf("%-10s", result.status)),
		pathStyle.Render(fmt.Sprintf("%-*s", pathWidth, path)),
		detailStyle.Render(truncateToWidth(result.detail, detailWidth)),
	)
	_, _ = fmt.Fprint(w, line)
}

func (d resultDelegate) styles(result resultItem, isSelected bool) (lipgloss.Style, lipgloss.Style, lipgloss.Style) {
	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		return selected, selected, selected
	}

	return lipgloss.NewStyle().Foreground(statusColor(result.status)).Bold(true),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
}

func statusColor(status string) lipgloss.Color {
	switch status {
	case m.StatusFixed.String():
		return lipgloss.Color("2") // Green
	case string(m.ErrorKindInvalid), string(m.ErrorKindLint):
		return lipgloss.Color("1") // Red
	case string(m.ErrorKindException):
		return lipgloss.Color("5") // Magenta
	default:
		return lipgloss.Color("8") // Gray
	}
}

// fixModel shows the progress of a fix run, then lets the user browse the
// changed and failed units.
type fixModel struct {
	width            int
	height           int
	progressBar      progress.Model
	info             m.RunInfo
	counts           map[m.Status]int
	processed        int
	progressPercent  float64
	rendered         bool
	finished         bool
	closed           bool
	elapsed          time.Duration
	results          []resultItem
	resultsList      list.Model
	delegate         resultDelegate
	animOffset       int
	lastSelected     int
	showDiff         bool
	selectedDiff     *m.RenderedDiff
	selectedDiffPath string
}

func newFixModel() fixModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := resultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return fixModel{
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		counts:       make(map[m.Status]int),
		lastSelected: -1,
	}
}

func (fm fixModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (fm fixModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fm = fm.handleWindowSize(msg)

	case tea.KeyMsg:
		fm, cmd = fm.handleKeyMsg(msg)

	case tea.MouseMsg:
		fm, cmd = fm.handleMouseMsg(msg)

	case tickMsg:
		return fm.handleTickMsg(msg)

	case runInfoMsg:
		fm.info = msg.info
		fm.processed = 0
		fm.progressPercent = 0
		fm.rendered = true

	case unitProcessedMsg:
		fm = fm.handleUnitProcessed(msg)

	case reportMsg:
		fm = fm.handleReport(msg)

	case closeMsg:
		fm.closed = true
		if !fm.finished || len(fm.results) == 0 {
			return fm, tea.Quit
		}
	}

	return fm, cmd
}

func (fm fixModel) handleUnitProcessed(msg unitProcessedMsg) fixModel {
	fm.processed++
	fm.counts[msg.status]++
	fm.rendered = true

	if fm.info.Units > 0 {
		fm.progressPercent = float64(fm.processed) / float64(fm.info.Units)
	}

	return fm
}

func (fm fixModel) handleReport(msg reportMsg) fixModel {
	if msg.report == nil {
		return fm
	}

	fm.results = resultItems(msg.report)
	fm.elapsed = msg.report.Elapsed
	fm.counts = make(map[m.Status]int, len(msg.report.Counts))

	for status, n := range msg.report.Counts {
		fm.counts[status] = n
	}

	items := make([]list.Item, 0, len(fm.results))
	for _, r := range fm.results {
		items = append(items, r)
	}

	fm.resultsList.SetItems(items)
	fm.progressPercent = 1
	fm.finished = true
	fm.rendered = true

	return fm
}

func (fm fixModel) View() string {
	if !fm.rendered {
		return "Initializing fixer…\n"
	}

	if fm.finished {
		return fm.viewResults()
	}

	return fm.viewProgress()
}

func (fm fixModel) viewProgress() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	title := titleStyle().Render("🔧 gofixer")

	mode := "write"
	if fm.info.DryRun {
		mode = "dry run"
	}

	summary := summaryStyle().Render(fmt.Sprintf(
		"Progress: %s / %s  •  Workers: %s  •  Rules: %s  •  Mode: %s",
		accentStyle.Render(fmt.Sprintf("%d", fm.processed)),
		accentStyle.Render(fmt.Sprintf("%d", fm.info.Units)),
		accentStyle.Render(fmt.Sprintf("%d", max(fm.info.Threads, 1))),
		accentStyle.Render(fmt.Sprintf("%d", len(fm.info.Rules))),
		accentStyle.Render(mode),
	))

	progressView := lipgloss.NewStyle().
		Padding(0, 2).
		Render(fm.progressBar.ViewAs(fm.progressPercent))

	countsView := lipgloss.NewStyle().
		Padding(1, 2).
		Render(fm.renderCounts())

	footer := footerStyle(fm.width).Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		countsView,
		footer,
	)
}

func (fm fixModel) renderCounts() string {
	parts := make([]string, 0, len(reportedStatuses))

	for _, status := range reportedStatuses {
		style := lipgloss.NewStyle().Foreground(statusColor(status.String()))

		parts = append(parts, fmt.Sprintf("%s %s %d",
			style.Bold(true).Render(status.Symbol()),
			statusLabel(status),
			fm.counts[status],
		))
	}

	return strings.Join(parts, "   ")
}

func (fm fixModel) viewResults() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle().Render("🔧 gofixer Results")

	changed := fm.counts[m.StatusFixed]
	errs := fm.counts[m.StatusInvalidSource] + fm.counts[m.StatusInvalidAfterFixing] + fm.counts[m.StatusRuntimeFailure]

	total := 0
	for _, n := range fm.counts {
		total += n
	}

	summary := summaryStyle().Render(fmt.Sprintf(
		"Units: %s  •  Fixed: %s  •  Errors: %s  •  Elapsed: %s",
		accentStyle.Render(fmt.Sprintf("%d", total)),
		accentStyle.Render(fmt.Sprintf("%d", changed)),
		accentStyle.Render(fmt.Sprintf("%d", errs)),
		accentStyle.Render(fm.elapsed.Round(time.Millisecond).String()),
	))

	if len(fm.results) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			summary,
			lipgloss.NewStyle().Padding(0, 2).Render("Nothing to fix."),
		)
	}

	resultsBox := fm.renderResultsBox()

	footer := footerStyle(fm.width).Render("↑/k up • ↓/j down • g/G top/bottom • / filter • enter/space/click diff • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		resultsBox,
		footer,
	)
}

func (fm fixModel) renderResultsBox() string {
	accentColor := lipgloss.Color("6")
	listWidth := fm.width - 4
	diffBoxHeight := fm.diffBoxHeight()

	listHeight := fm.height - 9 - diffBoxHeight
	if listHeight < 5 {
		listHeight = 5
	}

	fm.resultsList.SetHeight(listHeight)
	fm.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-10s  %s", "Status", "Path / Detail"))

	resultsStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1)

	resultsBox := resultsStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			fm.resultsList.View(),
		),
	)

	diffBox := fm.renderDiffBox(accentColor, listWidth)
	if diffBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, diffBox)
}

func (fm fixModel) handleKeyMsg(msg tea.KeyMsg) (fixModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		return fm, tea.Quit
	default:
		if !fm.finished {
			return fm, nil
		}

		if msg.String() == "enter" || msg.String() == " " {
			fm.toggleSelectedDiff()
			return fm, nil
		}

		fm.resultsList, cmd = fm.resultsList.Update(msg)
		fm.trackSelection()

		return fm, cmd
	}
}

func (fm fixModel) handleMouseMsg(msg tea.MouseMsg) (fixModel, tea.Cmd) {
	var cmd tea.Cmd

	if !fm.finished {
		return fm, nil
	}

	fm.resultsList, cmd = fm.resultsList.Update(msg)
	fm.trackSelection()

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && fm.resultsList.FilterState() != list.Filtering {
		fm.toggleSelectedDiff()
	}

	return fm, cmd
}

// trackSelection resets the scroll animation and hides the diff when the
// selected item changes.
func (fm *fixModel) trackSelection() {
	if fm.resultsList.Index() == fm.lastSelected {
		return
	}

	fm.lastSelected = fm.resultsList.Index()
	fm.animOffset = 0
	fm.delegate.offset = 0
	fm.resultsList.SetDelegate(fm.delegate)
	fm.showDiff = false
	fm.selectedDiff = nil
	fm.selectedDiffPath = ""
}

func (fm *fixModel) toggleSelectedDiff() {
	result, ok := fm.resultsList.SelectedItem().(resultItem)
	if !ok {
		return
	}

	if result.diff == nil || len(result.diff.Lines) == 0 {
		fm.showDiff = false
		fm.selectedDiff = nil

		return
	}

	if fm.showDiff && fm.selectedDiff == result.diff {
		fm.showDiff = false
		fm.selectedDiff = nil
		fm.selectedDiffPath = ""

		return
	}

	fm.showDiff = true
	fm.selectedDiff = result.diff
	fm.selectedDiffPath = result.path
}

func (fm fixModel) diffMaxLines() int {
	return min(max(fm.height/3, 6), 20)
}

func (fm fixModel) diffBoxHeight() int {
	if !fm.showDiff || fm.selectedDiff == nil {
		return 0
	}

	return min(len(fm.selectedDiff.Lines), fm.diffMaxLines()) + 3
}

func (fm fixModel) renderDiffBox(accentColor lipgloss.Color, width int) string {
	if !fm.showDiff || fm.selectedDiff == nil || len(fm.selectedDiff.Lines) == 0 {
		return ""
	}

	lines := fm.selectedDiff.Lines
	maxLines := fm.diffMaxLines()
	truncated := false

	if len(lines) > maxLines {
		lines = lines[:maxLines-1]
		truncated = true
	}

	contentWidth := max(width-4, 10)

	bodyLines := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		bodyLines = append(bodyLines, renderDiffLine(line, contentWidth))
	}

	if truncated {
		bodyLines = append(bodyLines, "…")
	}

	headerText := "Diff"
	if fm.selectedDiffPath != "" {
		headerText = fmt.Sprintf("Diff • %s", fm.selectedDiffPath)
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Render(truncateToWidth(headerText, contentWidth))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinVertical(lipgloss.Left, bodyLines...)))
}

func renderDiffLine(line m.DiffLine, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch line.Marker {
	case m.MarkerHeaderNew:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case m.MarkerHeaderOld:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case m.MarkerHunk:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case m.MarkerAdded:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case m.MarkerRemoved:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case m.MarkerContext:
	}

	text := line.Marker.Prefix() + line.Text
	if line.Marker == m.MarkerHeaderOld || line.Marker == m.MarkerHeaderNew {
		text = line.Marker.Prefix() + " " + line.Text
	}

	return style.Render(truncateToWidth(text, width))
}

func (fm fixModel) handleWindowSize(msg tea.WindowSizeMsg) fixModel {
	fm.width = msg.Width
	fm.height = msg.Height

	fm.progressBar.Width = max(fm.width-8, 20)

	return fm
}

func (fm fixModel) handleTickMsg(_ tickMsg) (fixModel, tea.Cmd) {
	if fm.finished && fm.resultsList.FilterState() != list.Filtering {
		fm.animOffset++
		fm.delegate.offset = fm.animOffset
		fm.resultsList.SetDelegate(fm.delegate)
	}

	return fm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)
}

func summaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)
}

func footerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(width)
}
