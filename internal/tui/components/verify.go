package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luminexhq/luminex-cli/internal/compare"
	"github.com/luminexhq/luminex-cli/internal/model"
	"github.com/luminexhq/luminex-cli/internal/tui/themes"
)

// VerifyModel renders the confidence gauge and the classified row table,
// and emits the approve / flag / re-upload intents.
type VerifyModel struct {
	theme   themes.Theme
	notice  string
	summary compare.Summary
	gauge   progress.Model
	table   table.Model
	width   int
}

// NewVerifyModel creates the verification screen for a normalized
// summary.
func NewVerifyModel(summary compare.Summary, theme themes.Theme) VerifyModel {
	gauge := progress.New(progress.WithDefaultGradient())
	gauge.ShowPercentage = false
	gauge.Width = 40

	columns := []table.Column{
		{Title: "Field", Width: 14},
		{Title: "Invoice", Width: 20},
		{Title: "Purchase Order", Width: 20},
		{Title: "Status", Width: 18},
	}

	rows := make([]table.Row, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		rows = append(rows, table.Row{
			row.Label,
			row.InvoiceValue,
			row.POValue,
			statusCell(row),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 12)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#fafafa")).
		Background(theme.Primary).
		Bold(false)
	t.SetStyles(styles)

	return VerifyModel{
		theme:   theme,
		summary: summary,
		gauge:   gauge,
		table:   t,
	}
}

// Update handles intent keys and table navigation.
func (m VerifyModel) Update(msg tea.Msg) (VerifyModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "a":
			return m, func() tea.Msg { return IntentMsg{Intent: IntentApprove} }
		case "f":
			return m, func() tea.Msg { return IntentMsg{Intent: IntentFlag} }
		case "u":
			return m, func() tea.Msg { return IntentMsg{Intent: IntentReupload} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// SetNotice sets the acknowledgement line under the table.
func (m *VerifyModel) SetNotice(notice string) {
	m.notice = notice
}

// Resize updates the component size.
func (m *VerifyModel) Resize(width int) {
	m.width = width
	m.gauge.Width = min(width-10, 60)
}

// View renders the gauge and the row table.
func (m VerifyModel) View() string {
	sections := []string{
		m.renderGauge(),
		m.table.View(),
	}
	if m.notice != "" {
		sections = append(sections, m.theme.StatusInfo.Render(m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderGauge renders the confidence score header and bar. The gauge
// width clamps the confidence into [0, 100] at render time; the stored
// value itself stays untouched.
func (m VerifyModel) renderGauge() string {
	display := strconv.FormatFloat(m.summary.Confidence, 'f', -1, 64)
	header := lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		m.theme.Subtitle.Render("Confidence Score"),
		"  ",
		m.theme.Bold.Render(display+" %"),
	)
	bar := m.gauge.ViewAs(compare.Clamp(m.summary.Confidence) / 100)

	return lipgloss.JoinVertical(lipgloss.Left, header, bar, "")
}

// statusCell renders, in priority order: the match badge, the difference
// string, or the error badge.
func statusCell(row model.ComparisonRow) string {
	switch row.Status {
	case model.RowMatched:
		return "✓ Match"
	case model.RowMismatch:
		return row.Difference
	default:
		return "✗ Error"
	}
}
