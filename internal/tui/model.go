package tui

import (
	"errors"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luminexhq/luminex-cli/internal/common"
	"github.com/luminexhq/luminex-cli/internal/compare"
	"github.com/luminexhq/luminex-cli/internal/handoff"
	"github.com/luminexhq/luminex-cli/internal/intake"
	"github.com/luminexhq/luminex-cli/internal/model"
	"github.com/luminexhq/luminex-cli/internal/tui/components"
	"github.com/luminexhq/luminex-cli/internal/tui/themes"
)

// State represents the current state of the TUI.
type State int

// TUI states.
const (
	StateIntake State = iota
	StatePicking
	StateSubmitting
	StateVerify
)

// Model holds the main TUI state.
type Model struct {
	form       *intake.Form
	client     Comparer
	channel    handoff.Channel
	decider    Decider
	result     *model.ComparisonResult
	errText    string
	theme      themes.Theme
	keymap     KeyMap
	slots      components.SlotPanelModel
	verify     components.VerifyModel
	picker     filepicker.Model
	spinner    spinner.Model
	pickerRole model.DocumentRole
	width      int
	height     int
	submitSeq  int
	state      State
	quitting   bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	form := intake.NewForm()

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	picker := filepicker.New()
	picker.AllowedTypes = intake.AllowedExtensions
	picker.CurrentDirectory = cfg.StartDir
	if picker.CurrentDirectory == "" {
		if wd, err := os.Getwd(); err == nil {
			picker.CurrentDirectory = wd
		}
	}

	m := Model{
		state:   StateIntake,
		theme:   cfg.Theme,
		keymap:  DefaultKeyMap(),
		form:    form,
		client:  cfg.Client,
		channel: cfg.Channel,
		decider: cfg.Decider,
		slots:   components.NewSlotPanelModel(cfg.Theme),
		picker:  picker,
		spinner: s,
		width:   cfg.Width,
		height:  cfg.Height,
	}

	if cfg.InitialResult != nil {
		m.result = cfg.InitialResult
		m.verify = components.NewVerifyModel(compare.Normalize(cfg.InitialResult), cfg.Theme)
		m.state = StateVerify
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keymap.Quit) && (m.state == StateIntake || m.state == StateVerify) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case slotSettledMsg:
		return m.handleSlotSettled(msg)

	case compareFinishedMsg:
		// Responses from an abandoned submission are dropped, never
		// applied to a view that is no longer live.
		if m.state != StateSubmitting || msg.seq != m.submitSeq {
			return m, nil
		}
		return m.handleCompareFinished(msg.result)

	case compareFailedMsg:
		if m.state != StateSubmitting || msg.seq != m.submitSeq {
			return m, nil
		}
		m.errText = msg.err.Error()
		m.state = StateIntake
		return m, nil

	case decisionDoneMsg:
		m.handleDecisionDone(msg)
		return m, nil
	}

	switch m.state {
	case StateIntake:
		return m.updateIntake(msg)
	case StatePicking:
		return m.updatePicking(msg)
	case StateSubmitting:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case StateVerify:
		return m.updateVerify(msg)
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StatePicking:
		return m.renderPicking()
	case StateSubmitting:
		return m.renderSubmitting()
	case StateVerify:
		return m.renderVerify()
	default:
		return m.renderIntake()
	}
}

func (m Model) updateIntake(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSlots, cmd := m.slots.Update(msg)
	m.slots = newSlots

	switch msg := msg.(type) {
	case components.BrowseRequestMsg:
		m.errText = ""
		m.pickerRole = msg.Role
		m.state = StatePicking
		return m, m.picker.Init()

	case components.ClearRequestMsg:
		m.form.Clear(msg.Role)
		m.slots.SetSlot(m.form.Slot(msg.Role))
		return m, nil

	case components.SubmitRequestMsg:
		return m.handleSubmitRequest()
	}

	return m, cmd
}

func (m Model) updatePicking(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keymap.Cancel) {
		m.state = StateIntake
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	// A disabled selection still goes through intake so the rejection
	// reason is the form's, not the picker's.
	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m.startCapture(path)
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		return m.startCapture(path)
	}

	return m, cmd
}

func (m Model) updateVerify(msg tea.Msg) (tea.Model, tea.Cmd) {
	newVerify, cmd := m.verify.Update(msg)
	m.verify = newVerify

	if msg, ok := msg.(components.IntentMsg); ok {
		switch msg.Intent {
		case components.IntentReupload:
			m.form.Clear(model.RoleInvoice)
			m.form.Clear(model.RolePurchaseOrder)
			m.slots = components.NewSlotPanelModel(m.theme)
			m.result = nil
			m.errText = ""
			m.state = StateIntake
			return m, nil
		default:
			return m, m.decide(msg.Intent)
		}
	}

	return m, cmd
}

func (m Model) startCapture(path string) (tea.Model, tea.Cmd) {
	m.state = StateIntake
	spinCmd := m.slots.SetUploading(m.pickerRole)
	return m, tea.Batch(spinCmd, settleSlot(m.pickerRole, path))
}

func (m Model) handleSlotSettled(msg slotSettledMsg) (tea.Model, tea.Cmd) {
	outcome := m.form.SubmitCandidate(msg.role, msg.path)
	if outcome.Err != nil {
		m.slots.SetRejection(msg.role, rejectionText(outcome.Err))
		return m, nil
	}
	m.slots.SetSlot(m.form.Slot(msg.role))
	return m, nil
}

func (m Model) handleSubmitRequest() (tea.Model, tea.Cmd) {
	invoice, po, err := m.form.Files()
	if err != nil {
		m.errText = "Please select both Invoice and PO files"
		return m, nil
	}

	m.errText = ""
	m.submitSeq++
	m.state = StateSubmitting
	return m, tea.Batch(m.spinner.Tick, m.submit(invoice, po))
}

func (m Model) handleCompareFinished(result *model.ComparisonResult) (tea.Model, tea.Cmd) {
	if err := m.channel.Publish(result); err != nil {
		slog.Warn("Failed to publish comparison result", "error", err)
	}

	m.result = result
	m.verify = components.NewVerifyModel(compare.Normalize(result), m.theme)
	m.verify.Resize(m.width)
	m.state = StateVerify
	return m, nil
}

func (m *Model) handleDecisionDone(msg decisionDoneMsg) {
	if msg.err != nil {
		m.verify.SetNotice("Could not record decision: " + msg.err.Error())
		return
	}
	switch msg.intent {
	case components.IntentApprove:
		m.verify.SetNotice("Approved & saved")
	case components.IntentFlag:
		m.verify.SetNotice("Flagged for review")
	}
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	m.slots.Resize(m.width)
	m.verify.Resize(m.width)
	m.picker.Height = max(m.height-8, 5)
}

func (m Model) renderIntake() string {
	sections := []string{
		m.theme.Title.Render("Upload"),
		m.slots.View(),
	}

	if m.errText != "" {
		sections = append(sections, m.theme.StatusError.Render(m.errText))
	}

	help := "Tab switch slot · Enter browse · x clear · q quit"
	if m.form.Ready() {
		help = "s process · " + help
	}
	sections = append(sections, m.theme.Muted.Render(help))

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderPicking() string {
	title := "Select Invoice"
	if m.pickerRole == model.RolePurchaseOrder {
		title = "Select Purchase Order"
	}

	return m.theme.Box.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render(title),
		m.picker.View(),
		m.theme.Muted.Render("Enter select · Esc cancel"),
	))
}

func (m Model) renderSubmitting() string {
	return m.theme.Box.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Upload"),
		m.spinner.View()+" "+m.theme.StatusPending.Render("Processing…"),
	))
}

func (m Model) renderVerify() string {
	return m.theme.Box.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Verify"),
		m.verify.View(),
		m.theme.Muted.Render("a approve & save · f flag for review · u re-upload · q quit"),
	))
}

func rejectionText(err error) string {
	if errors.Is(err, common.ErrInputRejected) {
		return "Invalid file"
	}
	return err.Error()
}
