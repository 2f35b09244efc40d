package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	humanize "github.com/dustin/go-humanize"

	"github.com/luminexhq/luminex-cli/internal/model"
	"github.com/luminexhq/luminex-cli/internal/tui/themes"
)

// SlotPanelModel renders the two document slots of the intake screen and
// tracks which one has focus. The owning model holds the intake form
// itself; this component only displays slot snapshots and emits requests.
type SlotPanelModel struct {
	theme     themes.Theme
	rejection map[model.DocumentRole]string
	uploading map[model.DocumentRole]bool
	invoice   model.DocumentSlot
	po        model.DocumentSlot
	spinner   spinner.Model
	focus     model.DocumentRole
	width     int
}

// NewSlotPanelModel creates the panel with both slots idle and focus on
// the invoice slot.
func NewSlotPanelModel(theme themes.Theme) SlotPanelModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return SlotPanelModel{
		theme:     theme,
		focus:     model.RoleInvoice,
		invoice:   model.DocumentSlot{Role: model.RoleInvoice, State: model.StateIdle},
		po:        model.DocumentSlot{Role: model.RolePurchaseOrder, State: model.StateIdle},
		spinner:   s,
		uploading: make(map[model.DocumentRole]bool),
		rejection: make(map[model.DocumentRole]string),
	}
}

// Update handles focus movement and slot actions.
func (m SlotPanelModel) Update(msg tea.Msg) (SlotPanelModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "left", "right", "h", "l":
			m.focus = otherRole(m.focus)
		case "enter":
			return m, func() tea.Msg { return BrowseRequestMsg{Role: m.focus} }
		case "x", "delete":
			return m, func() tea.Msg { return ClearRequestMsg{Role: m.focus} }
		case "s":
			return m, func() tea.Msg { return SubmitRequestMsg{} }
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// Focused returns the role of the focused slot.
func (m SlotPanelModel) Focused() model.DocumentRole {
	return m.focus
}

// SetSlot replaces the displayed snapshot for the slot's role and drops
// any uploading affordance or rejection notice for it.
func (m *SlotPanelModel) SetSlot(slot model.DocumentSlot) {
	delete(m.uploading, slot.Role)
	delete(m.rejection, slot.Role)
	if slot.Role == model.RolePurchaseOrder {
		m.po = slot
	} else {
		m.invoice = slot
	}
}

// SetUploading marks a slot with the transient uploading affordance.
func (m *SlotPanelModel) SetUploading(role model.DocumentRole) tea.Cmd {
	m.uploading[role] = true
	return m.spinner.Tick
}

// SetRejection records a rejection notice for a slot.
func (m *SlotPanelModel) SetRejection(role model.DocumentRole, message string) {
	delete(m.uploading, role)
	m.rejection[role] = message
}

// Resize updates the component size.
func (m *SlotPanelModel) Resize(width int) {
	m.width = width
}

// View renders both slot panels side by side.
func (m SlotPanelModel) View() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSlot(m.invoice, "Invoice"),
		" ",
		m.renderSlot(m.po, "Purchase Order"),
	)
}

func (m SlotPanelModel) renderSlot(slot model.DocumentSlot, title string) string {
	var lines []string
	lines = append(lines, m.theme.Bold.Render(title))

	switch {
	case m.uploading[slot.Role]:
		lines = append(lines, m.spinner.View()+" "+m.theme.StatusPending.Render("Uploading…"))

	case m.rejection[slot.Role] != "":
		lines = append(lines, m.theme.StatusError.Render("✗ "+m.rejection[slot.Role]))
		lines = append(lines, m.theme.Muted.Render("Max 10 MiB, PDF/PNG/JPG only"))

	case slot.State == model.StateAccepted && slot.Doc != nil:
		lines = append(lines, m.theme.StatusSuccess.Render("✓ "+slot.Doc.Name))
		lines = append(lines, m.theme.Muted.Render(formatSize(slot.Doc.Size)))

	default:
		lines = append(lines, m.theme.Muted.Render("Press Enter to browse"))
		lines = append(lines, m.theme.Muted.Render("Supports: PDF, PNG, JPG"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	// Focus wins the border; accepted and rejected slots still announce
	// their state through the styled lines inside the box.
	box := m.theme.BorderedBox
	switch {
	case slot.Role == m.focus:
		box = m.theme.FocusedBox
	case m.rejection[slot.Role] != "":
		box = m.theme.RejectedBox
	case slot.State == model.StateAccepted:
		box = m.theme.AcceptedBox
	}

	width := 36
	if m.width > 80 {
		width = (m.width - 4) / 2
	}

	return box.Width(width).Render(content)
}

func otherRole(role model.DocumentRole) model.DocumentRole {
	if role == model.RoleInvoice {
		return model.RolePurchaseOrder
	}
	return model.RoleInvoice
}

func formatSize(size int64) string {
	return humanize.IBytes(uint64(size))
}
