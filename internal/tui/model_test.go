package tui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminexhq/luminex-cli/internal/client"
	"github.com/luminexhq/luminex-cli/internal/handoff"
	"github.com/luminexhq/luminex-cli/internal/model"
	"github.com/luminexhq/luminex-cli/internal/tui/components"
)

// fakeComparer returns a canned result or error.
type fakeComparer struct {
	result *model.ComparisonResult
	err    error
	calls  int
}

func (f *fakeComparer) Compare(_ context.Context, _, _ *model.Document) (*model.ComparisonResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func testComparison() *model.ComparisonResult {
	return &model.ComparisonResult{
		AIResult: &model.AIComparison{
			ConfidenceScore: 87.0,
			FieldComparisons: []model.FieldComparison{
				{Field: "total_amount", InvoiceValue: 1000.0, POValue: 950.0, Match: false, Difference: 50.0},
			},
		},
	}
}

func writeTestFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))
	return path
}

func newTestModel(t *testing.T, comparer Comparer, channel handoff.Channel) Model {
	t.Helper()
	cfg := defaultConfig()
	cfg.Client = comparer
	if channel != nil {
		cfg.Channel = channel
	}
	return newModel(cfg)
}

func acceptBoth(t *testing.T, m Model) Model {
	t.Helper()

	updated, _ := m.Update(slotSettledMsg{role: model.RoleInvoice, path: writeTestFile(t, "invoice.pdf")})
	m = updated.(Model)
	updated, _ = m.Update(slotSettledMsg{role: model.RolePurchaseOrder, path: writeTestFile(t, "po.pdf")})
	m = updated.(Model)

	require.True(t, m.form.Ready())
	return m
}

func TestModel_StartsOnIntake(t *testing.T) {
	m := newTestModel(t, &fakeComparer{}, nil)

	assert.Equal(t, StateIntake, m.state)
	assert.Contains(t, m.View(), "Upload")
}

func TestModel_WithResultStartsOnVerify(t *testing.T) {
	cfg := defaultConfig()
	cfg.InitialResult = testComparison()
	m := newModel(cfg)

	assert.Equal(t, StateVerify, m.state)
	view := m.View()
	assert.Contains(t, view, "Verify")
	assert.Contains(t, view, "87 %")
	assert.Contains(t, view, "Total")
	assert.Contains(t, view, "+ $ 50")
}

func TestModel_RejectedSlotShowsNotice(t *testing.T) {
	m := newTestModel(t, &fakeComparer{}, nil)

	updated, _ := m.Update(slotSettledMsg{role: model.RoleInvoice, path: writeTestFile(t, "notes.txt")})
	m = updated.(Model)

	assert.Equal(t, StateIntake, m.state)
	assert.Contains(t, m.View(), "Invalid file")
	assert.False(t, m.form.Ready())
}

func TestModel_SubmitWithoutBothFiles(t *testing.T) {
	comparer := &fakeComparer{result: testComparison()}
	m := newTestModel(t, comparer, nil)

	updated, cmd := m.Update(components.SubmitRequestMsg{})
	m = updated.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, StateIntake, m.state)
	assert.Contains(t, m.View(), "Please select both Invoice and PO files")
	assert.Equal(t, 0, comparer.calls)
}

func TestModel_SubmitFlow(t *testing.T) {
	comparer := &fakeComparer{result: testComparison()}
	channel := handoff.NewMemory()
	m := acceptBoth(t, newTestModel(t, comparer, channel))

	updated, cmd := m.Update(components.SubmitRequestMsg{})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, StateSubmitting, m.state)

	updated, _ = m.Update(compareFinishedMsg{seq: m.submitSeq, result: testComparison()})
	m = updated.(Model)

	assert.Equal(t, StateVerify, m.state)
	assert.Contains(t, m.View(), "87 %")

	// Success also published the raw payload for the next view.
	published, ok := channel.Consume()
	require.True(t, ok)
	assert.Equal(t, testComparison(), published)
}

func TestModel_SubmitFailureReturnsToIntake(t *testing.T) {
	m := acceptBoth(t, newTestModel(t, &fakeComparer{}, nil))

	updated, _ := m.Update(components.SubmitRequestMsg{})
	m = updated.(Model)

	updated, _ = m.Update(compareFailedMsg{seq: m.submitSeq, err: errors.New("status 500")})
	m = updated.(Model)

	assert.Equal(t, StateIntake, m.state)
	assert.Contains(t, m.View(), "status 500")

	// The accepted files survive so the user can simply resubmit.
	assert.True(t, m.form.Ready())
}

func TestModel_LateResponseIsDropped(t *testing.T) {
	m := acceptBoth(t, newTestModel(t, &fakeComparer{result: testComparison()}, nil))

	updated, _ := m.Update(components.SubmitRequestMsg{})
	m = updated.(Model)

	// A response from an older submission must not reach the view.
	updated, _ = m.Update(compareFinishedMsg{seq: m.submitSeq - 1, result: testComparison()})
	m = updated.(Model)
	assert.Equal(t, StateSubmitting, m.state)

	updated, _ = m.Update(compareFailedMsg{seq: m.submitSeq - 1, err: errors.New("stale")})
	m = updated.(Model)
	assert.Equal(t, StateSubmitting, m.state)
	assert.Empty(t, m.errText)
}

func TestModel_ReuploadClearsSlots(t *testing.T) {
	cfg := defaultConfig()
	cfg.Client = &fakeComparer{}
	cfg.InitialResult = testComparison()
	m := newModel(cfg)

	updated, _ := m.Update(components.IntentMsg{Intent: components.IntentReupload})
	m = updated.(Model)

	assert.Equal(t, StateIntake, m.state)
	assert.False(t, m.form.Ready())
	assert.Nil(t, m.result)
}

func TestModel_ApproveAcknowledges(t *testing.T) {
	cfg := defaultConfig()
	cfg.Client = &fakeComparer{}
	cfg.InitialResult = testComparison()
	m := newModel(cfg)

	updated, cmd := m.Update(components.IntentMsg{Intent: components.IntentApprove})
	m = updated.(Model)
	require.NotNil(t, cmd)

	updated, _ = m.Update(cmd())
	m = updated.(Model)

	assert.Equal(t, StateVerify, m.state)
	assert.Contains(t, m.View(), "Approved & saved")
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t, &fakeComparer{}, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

// TestModel_EndToEnd drives the full pipeline against a real HTTP test
// backend: accept both files, submit, and verify the rendered result.
func TestModel_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload_advanced", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ai_result": {
				"confidence_score": 87,
				"field_comparisons": [
					{"field": "total_amount", "invoice_value": 1000, "po_value": 950, "match": false, "difference": 50}
				]
			}
		}`))
	}))
	defer server.Close()

	channel := handoff.NewMemory()
	m := acceptBoth(t, newTestModel(t, client.New(server.URL), channel))

	updated, cmd := m.Update(components.SubmitRequestMsg{})
	m = updated.(Model)
	require.NotNil(t, cmd)

	// Run the batched submit command and feed its messages back in until
	// the comparison response arrives.
	msg := drainForCompareMsg(t, cmd)
	updated, _ = m.Update(msg)
	m = updated.(Model)

	require.Equal(t, StateVerify, m.state)
	view := m.View()
	assert.Contains(t, view, "87 %")
	assert.Contains(t, view, "Total")
	assert.Contains(t, view, "+ $ 50")
}

// drainForCompareMsg executes a command tree and returns the first
// comparison message it produces.
func drainForCompareMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case compareFinishedMsg:
			return msg
		case compareFailedMsg:
			return msg
		case tea.BatchMsg:
			queue = append(queue, msg...)
		}
	}

	t.Fatal("no comparison message produced")
	return nil
}
