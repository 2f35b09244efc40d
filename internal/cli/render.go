package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luminexhq/luminex-cli/internal/compare"
	"github.com/luminexhq/luminex-cli/internal/model"
)

// RenderSummary renders a normalized comparison as plain styled text for
// non-interactive output.
func RenderSummary(summary compare.Summary) string {
	var b strings.Builder

	confidence := strconv.FormatFloat(summary.Confidence, 'f', -1, 64)
	b.WriteString(BoldStyle.Render("Confidence Score: "+confidence+" %") + "\n")
	b.WriteString(renderGauge(summary.Confidence) + "\n\n")

	header := fmt.Sprintf("%-14s %-22s %-22s %s", "FIELD", "INVOICE", "PURCHASE ORDER", "STATUS")
	b.WriteString(TableHeaderStyle.Render(header) + "\n")

	for _, row := range summary.Rows {
		b.WriteString(fmt.Sprintf("%-14s %-22s %-22s %s\n",
			truncate(row.Label, 14),
			truncate(row.InvoiceValue, 22),
			truncate(row.POValue, 22),
			renderStatus(row),
		))
	}

	return b.String()
}

// renderGauge draws the clamped confidence bar.
func renderGauge(confidence float64) string {
	const width = 40
	filled := int(compare.Clamp(confidence) / 100 * width)
	return SuccessStyle.Render(strings.Repeat("█", filled)) +
		SubtleStyle.Render(strings.Repeat("░", width-filled))
}

func renderStatus(row model.ComparisonRow) string {
	switch row.Status {
	case model.RowMatched:
		return SuccessStyle.Render("✓ Match")
	case model.RowMismatch:
		return ErrorStyle.Render(row.Difference)
	default:
		return ErrorStyle.Render("✗ Error")
	}
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
