package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const ruleNameWidth = 32

// Simple delegate for rule list items.
type ruleDelegate struct {
	offset int
}

func (d ruleDelegate) Height() int  { return 1 }
func (d ruleDelegate) Spacing() int { return 0 }
func (d ruleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d ruleDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	rule, ok := item.(ruleItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var nameStyle, descStyle lipgloss.Style

	var displayDesc string

	width := m.Width() - ruleNameWidth - 2

	if isSelected {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(ruleNameWidth)
		descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))

		displayDesc = animateScroll(rule.description, width, d.offset)
	} else {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(ruleNameWidth)
		descStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		displayDesc = truncateToWidth(rule.description, width)
	}

	line := fmt.Sprintf("%s  %s",
		nameStyle.Render(truncateToWidth(rule.name, ruleNameWidth)),
		descStyle.Render(displayDesc),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	// Runes keep multi-byte characters intact.
	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// rulesModel lists the registered rules.
type rulesModel struct {
	width        int
	height       int
	ruleList     list.Model
	delegate     ruleDelegate
	total        int
	rendered     bool
	closed       bool
	animOffset   int
	lastSelected int
}

func newRulesModel() rulesModel {
	delegate := ruleDelegate{}
	ruleList := list.New([]list.Item{}, delegate, 80, 20)
	ruleList.SetShowPagination(false)
	ruleList.SetShowFilter(true)
	ruleList.SetShowHelp(false)
	ruleList.SetShowTitle(false)
	ruleList.SetShowStatusBar(false)
	ruleList.FilterInput.Placeholder = "Filter by name…"

	return rulesModel{
		ruleList:     ruleList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m rulesModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m rulesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ruleList.SetWidth(m.width)

	case tickMsg:
		if m.ruleList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.ruleList.SetDelegate(m.delegate)
		}

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var newList list.Model

			newList, cmd = m.ruleList.Update(msg)
			m.ruleList = newList

			// Detect selection change to reset animation
			if m.ruleList.Index() != m.lastSelected {
				m.lastSelected = m.ruleList.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.ruleList.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case rulesMsg:
		m = m.handleRulesMsg(msg)

	case closeMsg:
		m.closed = true
		if m.total == 0 {
			return m, tea.Quit
		}
	}

	return m, cmd
}

func (m rulesModel) handleRulesMsg(msg rulesMsg) rulesModel {
	items := make([]list.Item, 0, len(msg.rules))
	for _, rule := range msg.rules {
		items = append(items, ruleItem{name: rule.Name, description: rule.Description})
	}

	m.ruleList.SetItems(items)
	m.total = len(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m rulesModel) View() string {
	if !m.rendered {
		return "Loading rules…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	title := titleStyle.Render("🔧 gofixer Rules")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Registered rules: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
	))

	table := m.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (m rulesModel) renderTable() string {
	// Title, summary, footer, border and headers take nine lines.
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Margin, border and padding take two columns each.
	listWidth := m.width - 6

	m.ruleList.SetHeight(listHeight)
	m.ruleList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-*s  %s", ruleNameWidth, "Rule", "Description"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.ruleList.View(),
		),
	)
}
