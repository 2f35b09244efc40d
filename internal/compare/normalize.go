// Package compare turns raw comparison payloads into display-ready,
// classified row sets. Normalization is pure: it performs no I/O, cannot
// fail, and degrades malformed entries to placeholders instead of
// aborting.
package compare

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/luminexhq/luminex-cli/internal/model"
)

// Placeholder renders in place of absent field names and values.
const Placeholder = "—"

// fieldLabels maps backend field identifiers to display labels. Unknown
// identifiers pass through unchanged.
var fieldLabels = map[string]string{
	"vendor_name":         "Vendor",
	"total_amount":        "Total",
	"date":                "Date",
	"quantity":            "Quantity",
	"unit_price":          "Unit Price",
	"service_description": "Service",
	"tax_amount":          "Tax",
}

var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// Summary is the normalized form of a comparison result.
type Summary struct {
	Rows       []model.ComparisonRow
	Confidence float64
}

// Normalize derives the confidence score and classified rows from a raw
// comparison result. Row order follows the payload. The confidence value
// is stored unclamped; clamping happens at render time via Clamp.
func Normalize(result *model.ComparisonResult) Summary {
	var s Summary
	if result == nil || result.AIResult == nil {
		return s
	}

	if v, ok := toNumber(result.AIResult.ConfidenceScore); ok {
		s.Confidence = v
	}

	s.Rows = make([]model.ComparisonRow, 0, len(result.AIResult.FieldComparisons))
	for _, fc := range result.AIResult.FieldComparisons {
		s.Rows = append(s.Rows, normalizeField(fc))
	}

	return s
}

// Clamp bounds a confidence score to [0, 100] for rendering.
func Clamp(confidence float64) float64 {
	return math.Max(0, math.Min(100, confidence))
}

// FieldLabel returns the display label for a backend field identifier.
func FieldLabel(field string) string {
	if field == "" {
		return Placeholder
	}
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

// FormatDifference renders a signed monetary delta, e.g. "+ $ 1,050" or
// "- $ 120.5". Zero is rendered with the positive sign.
func FormatDifference(d float64) string {
	sign := "+ "
	if d < 0 {
		sign = "- "
	}
	return sign + "$ " + amountPrinter.Sprintf("%v", number.Decimal(math.Abs(d), number.MaxFractionDigits(3)))
}

func normalizeField(fc model.FieldComparison) model.ComparisonRow {
	row := model.ComparisonRow{
		Label:        FieldLabel(fc.Field),
		InvoiceValue: displayValue(fc.InvoiceValue),
		POValue:      displayValue(fc.POValue),
		Match:        fc.Match,
	}

	if d, ok := toNumber(fc.Difference); ok {
		row.Difference = FormatDifference(d)
	}

	switch {
	case row.Match:
		row.Status = model.RowMatched
	case row.Difference != "":
		row.Status = model.RowMismatch
	default:
		row.Status = model.RowError
	}

	return row
}

// displayValue renders a raw scalar unmodified; absent or empty values
// render as the placeholder, never an empty cell. Numbers render in plain
// decimal form, never scientific notation.
func displayValue(v any) string {
	switch n := v.(type) {
	case nil:
		return Placeholder
	case string:
		if n == "" {
			return Placeholder
		}
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// toNumber coerces a loosely typed payload value to a finite float64.
func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
