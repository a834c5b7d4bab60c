package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// reportChromeHeight is the number of screen lines used by the title, summary,
// table border, column header and footer around the row list.
const reportChromeHeight = 9

const keyColumnWidth = 14

// Simple delegate for report rows.
type reportDelegate struct{}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(reportRow)
	if !ok {
		return
	}

	keyStyle, detailStyle := rowStyles(index == m.Index())
	width := m.Width() - keyColumnWidth - 2

	line := fmt.Sprintf("%s  %s",
		keyStyle.Render(truncateToWidth(row.key, keyColumnWidth)),
		detailStyle.Render(truncateToWidth(row.detail, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func rowStyles(selected bool) (lipgloss.Style, lipgloss.Style) {
	if selected {
		return lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("6")).
				Bold(true).
				Width(keyColumnWidth),
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("6")).
				Bold(true)
	}

	return lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(keyColumnWidth),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

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

// reportModel is a scrollable, filterable list of report rows.
type reportModel struct {
	width    int
	height   int
	title    string
	summary  string
	header   [2]string
	rows     []reportRow
	rowList  list.Model
	quitting bool
}

func newReportModel(title, summary string, header [2]string, rows []reportRow) reportModel {
	items := make([]list.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row)
	}

	rowList := list.New(items, reportDelegate{}, 80, 20)
	rowList.SetShowPagination(false)
	rowList.SetShowFilter(true)
	rowList.SetShowHelp(false)
	rowList.SetShowTitle(false)
	rowList.SetShowStatusBar(false)
	rowList.FilterInput.Placeholder = "Filter…"

	return reportModel{
		width:   80,
		title:   title,
		summary: summary,
		header:  header,
		rows:    rows,
		rowList: rowList,
	}
}

// needsPagination reports whether the rows do not fit the known terminal
// height. An unknown height never paginates.
func (m reportModel) needsPagination() bool {
	return m.height > 0 && len(m.rows)+reportChromeHeight > m.height
}

func (m reportModel) Init() tea.Cmd {
	return nil
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.rowList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			}
		}

		m.rowList, cmd = m.rowList.Update(msg)
	}

	return m, cmd
}

func (m reportModel) View() string {
	if m.quitting {
		return ""
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeading(),
		m.renderTable(),
		footer,
	)
}

// StaticView renders every row without list chrome, for output that fits on
// screen or is not interactive.
func (m reportModel) StaticView() string {
	var b strings.Builder

	b.WriteString(m.renderHeading())
	b.WriteString("\n")

	keyWidth := keyColumnWidth
	for _, row := range m.rows {
		keyWidth = max(keyWidth, lipgloss.Width(row.key))
	}

	keyStyle, detailStyle := rowStyles(false)
	keyStyle = keyStyle.Width(keyWidth)

	for _, row := range m.rows {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(row.key))
		b.WriteString("  ")
		b.WriteString(detailStyle.Render(row.detail))
		b.WriteString("\n")
	}

	return b.String()
}

func (m reportModel) renderHeading() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		summaryStyle.Render(m.summary),
	)
}

func (m reportModel) renderTable() string {
	listHeight := max(m.height-reportChromeHeight, 5)
	listWidth := m.width - 6

	m.rowList.SetHeight(listHeight)
	m.rowList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-*s  %s", keyColumnWidth, m.header[0], m.header[1]))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.rowList.View(),
		),
	)
}
