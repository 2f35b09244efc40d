package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luminexhq/luminex-cli/internal/model"
	"github.com/luminexhq/luminex-cli/internal/tui/components"
)

// uploadSettleDelay is the bounded uploading affordance shown while a
// picked file is captured. It has no semantic meaning beyond UX.
const uploadSettleDelay = 200 * time.Millisecond

const submitTimeout = 120 * time.Second

// settleSlot schedules the end of the uploading affordance for a picked
// file.
func settleSlot(role model.DocumentRole, path string) tea.Cmd {
	return tea.Tick(uploadSettleDelay, func(time.Time) tea.Msg {
		return slotSettledMsg{role: role, path: path}
	})
}

// submit issues the single in-flight comparison request.
func (m Model) submit(invoice, po *model.Document) tea.Cmd {
	client := m.client
	seq := m.submitSeq
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		result, err := client.Compare(ctx, invoice, po)
		if err != nil {
			return compareFailedMsg{seq: seq, err: err}
		}
		return compareFinishedMsg{seq: seq, result: result}
	}
}

// decide forwards an approve or flag intent to the workflow collaborator.
func (m Model) decide(intent components.Intent) tea.Cmd {
	decider := m.decider
	result := m.result
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var err error
		switch intent {
		case components.IntentApprove:
			err = decider.Approve(ctx, result)
		case components.IntentFlag:
			err = decider.Flag(ctx, result)
		}
		return decisionDoneMsg{intent: intent, err: err}
	}
}
