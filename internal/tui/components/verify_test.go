package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminexhq/luminex-cli/internal/compare"
	"github.com/luminexhq/luminex-cli/internal/model"
	"github.com/luminexhq/luminex-cli/internal/tui/themes"
)

func testSummary() compare.Summary {
	return compare.Summary{
		Confidence: 87,
		Rows: []model.ComparisonRow{
			{Label: "Total", InvoiceValue: "1000", POValue: "950", Difference: "+ $ 50", Status: model.RowMismatch},
			{Label: "Vendor", InvoiceValue: "Acme", POValue: "Acme", Match: true, Status: model.RowMatched},
			{Label: "Date", InvoiceValue: "2024-03-01", POValue: "—", Status: model.RowError},
		},
	}
}

func TestVerifyModel_ViewShowsGaugeAndRows(t *testing.T) {
	m := NewVerifyModel(testSummary(), themes.Default)

	view := m.View()
	assert.Contains(t, view, "Confidence Score")
	assert.Contains(t, view, "87 %")
	assert.Contains(t, view, "Total")
	assert.Contains(t, view, "+ $ 50")
	assert.Contains(t, view, "Vendor")
	assert.Contains(t, view, "✓ Match")
	assert.Contains(t, view, "✗ Error")
}

func TestVerifyModel_ViewShowsNotice(t *testing.T) {
	m := NewVerifyModel(testSummary(), themes.Default)
	m.SetNotice("Approved & saved")

	assert.Contains(t, m.View(), "Approved & saved")
}

func TestVerifyModel_IntentKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want Intent
	}{
		{name: "approve", key: "a", want: IntentApprove},
		{name: "flag", key: "f", want: IntentFlag},
		{name: "reupload", key: "u", want: IntentReupload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewVerifyModel(testSummary(), themes.Default)

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			require.NotNil(t, cmd)

			msg, ok := cmd().(IntentMsg)
			require.True(t, ok)
			assert.Equal(t, tt.want, msg.Intent)
		})
	}
}

func TestStatusCell_PriorityOrder(t *testing.T) {
	// Matched badge wins even when a difference string exists.
	matched := model.ComparisonRow{Match: true, Difference: "+ $ 50", Status: model.RowMatched}
	assert.Equal(t, "✓ Match", statusCell(matched))

	mismatch := model.ComparisonRow{Difference: "- $ 120.5", Status: model.RowMismatch}
	assert.Equal(t, "- $ 120.5", statusCell(mismatch))

	errored := model.ComparisonRow{Status: model.RowError}
	assert.Equal(t, "✗ Error", statusCell(errored))
}
