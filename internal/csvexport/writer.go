// Package csvexport writes normalized comparison rows as CSV.
package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/luminexhq/luminex-cli/internal/compare"
	"github.com/luminexhq/luminex-cli/internal/model"
)

// columns defines the CSV header row.
var columns = []string{
	"Field",
	"Invoice",
	"Purchase Order",
	"Status",
	"Difference",
}

// Writer wraps csv.Writer for exporting a comparison summary as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteSummary writes the header, one row per comparison row, and a
// trailing confidence record, then flushes.
func (w *Writer) WriteSummary(summary compare.Summary) error {
	if err := w.csv.Write(columns); err != nil {
		return err
	}
	for _, row := range summary.Rows {
		if err := w.csv.Write(rowToRecord(row)); err != nil {
			return err
		}
	}
	confidence := strconv.FormatFloat(compare.Clamp(summary.Confidence), 'f', -1, 64)
	if err := w.csv.Write([]string{"Confidence", confidence + " %", "", "", ""}); err != nil {
		return err
	}
	w.csv.Flush()
	return w.csv.Error()
}

func rowToRecord(row model.ComparisonRow) []string {
	return []string{
		row.Label,
		row.InvoiceValue,
		row.POValue,
		statusText(row),
		row.Difference,
	}
}

func statusText(row model.ComparisonRow) string {
	switch row.Status {
	case model.RowMatched:
		return "Match"
	case model.RowMismatch:
		return "Mismatch"
	default:
		return "Error"
	}
}
