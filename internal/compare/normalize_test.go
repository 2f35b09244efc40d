package compare

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminexhq/luminex-cli/internal/model"
)

func TestNormalize_NilInputs(t *testing.T) {
	assert.Equal(t, Summary{}, Normalize(nil))
	assert.Equal(t, Summary{}, Normalize(&model.ComparisonResult{}))
}

func TestNormalize_Confidence(t *testing.T) {
	tests := []struct {
		score any
		name  string
		want  float64
	}{
		{name: "numeric score", score: 87.0, want: 87},
		{name: "integer score", score: 42, want: 42},
		{name: "numeric string", score: "66.5", want: 66.5},
		{name: "absent score", score: nil, want: 0},
		{name: "non-numeric score", score: "high", want: 0},
		{name: "out of range score is stored unclamped", score: 150.0, want: 150},
		{name: "negative score is stored unclamped", score: -5.0, want: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &model.ComparisonResult{
				AIResult: &model.AIComparison{ConfidenceScore: tt.score},
			}
			assert.Equal(t, tt.want, Normalize(result).Confidence)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5))
	assert.Equal(t, 100.0, Clamp(150))
	assert.Equal(t, 42.0, Clamp(42))
	assert.Equal(t, 0.0, Clamp(0))
	assert.Equal(t, 100.0, Clamp(100))
}

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{field: "vendor_name", want: "Vendor"},
		{field: "total_amount", want: "Total"},
		{field: "date", want: "Date"},
		{field: "quantity", want: "Quantity"},
		{field: "unit_price", want: "Unit Price"},
		{field: "service_description", want: "Service"},
		{field: "tax_amount", want: "Tax"},
		{field: "unknown_key", want: "unknown_key"},
		{field: "", want: "—"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FieldLabel(tt.field), "field %q", tt.field)
	}
}

func TestFormatDifference(t *testing.T) {
	tests := []struct {
		name string
		want string
		d    float64
	}{
		{name: "negative", d: -120.5, want: "- $ 120.5"},
		{name: "zero keeps positive sign", d: 0, want: "+ $ 0"},
		{name: "positive", d: 50, want: "+ $ 50"},
		{name: "thousands separators", d: 1250000, want: "+ $ 1,250,000"},
		{name: "negative with separators", d: -1050.75, want: "- $ 1,050.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDifference(tt.d))
		})
	}
}

func TestNormalize_Rows(t *testing.T) {
	diff := 50.0
	result := &model.ComparisonResult{
		AIResult: &model.AIComparison{
			ConfidenceScore: 87.0,
			FieldComparisons: []model.FieldComparison{
				{Field: "vendor_name", InvoiceValue: "Acme Corp", POValue: "Acme Corp", Match: true},
				{Field: "total_amount", InvoiceValue: 1000.0, POValue: 950.0, Match: false, Difference: diff},
				{Field: "date", InvoiceValue: "2024-03-01", POValue: nil, Match: false},
				{Field: "", InvoiceValue: "", POValue: "x", Match: false},
			},
		},
	}

	summary := Normalize(result)
	require.Len(t, summary.Rows, 4)
	assert.Equal(t, 87.0, summary.Confidence)

	matched := summary.Rows[0]
	assert.Equal(t, "Vendor", matched.Label)
	assert.Equal(t, "Acme Corp", matched.InvoiceValue)
	assert.Equal(t, model.RowMatched, matched.Status)
	assert.Empty(t, matched.Difference)

	mismatch := summary.Rows[1]
	assert.Equal(t, "Total", mismatch.Label)
	assert.Equal(t, "1000", mismatch.InvoiceValue)
	assert.Equal(t, "950", mismatch.POValue)
	assert.Equal(t, "+ $ 50", mismatch.Difference)
	assert.Equal(t, model.RowMismatch, mismatch.Status)

	// No difference plus no match degrades to the error status.
	errRow := summary.Rows[2]
	assert.Equal(t, "Date", errRow.Label)
	assert.Equal(t, "—", errRow.POValue)
	assert.Empty(t, errRow.Difference)
	assert.Equal(t, model.RowError, errRow.Status)

	// Absent identifiers and empty values render the placeholder.
	placeholder := summary.Rows[3]
	assert.Equal(t, "—", placeholder.Label)
	assert.Equal(t, "—", placeholder.InvoiceValue)
	assert.Equal(t, "x", placeholder.POValue)
}

func TestNormalize_LargeValuesRenderPlainDecimal(t *testing.T) {
	// Values arrive as JSON numbers; a seven-figure total must not render
	// in scientific notation.
	raw := `{"ai_result":{"confidence_score":90,"field_comparisons":[
		{"field":"total_amount","invoice_value":1000000,"po_value":950000.25,"match":false,"difference":49999.75}]}}`

	var result model.ComparisonResult
	require.NoError(t, json.Unmarshal([]byte(raw), &result))

	summary := Normalize(&result)
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, "1000000", summary.Rows[0].InvoiceValue)
	assert.Equal(t, "950000.25", summary.Rows[0].POValue)
	assert.Equal(t, "+ $ 49,999.75", summary.Rows[0].Difference)
}

func TestNormalize_DifferenceIsTrustedNotRecomputed(t *testing.T) {
	// The backend's difference does not have to equal invoice - po.
	result := &model.ComparisonResult{
		AIResult: &model.AIComparison{
			FieldComparisons: []model.FieldComparison{
				{Field: "total_amount", InvoiceValue: 100.0, POValue: 90.0, Match: false, Difference: 7.0},
			},
		},
	}

	summary := Normalize(result)
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, "+ $ 7", summary.Rows[0].Difference)
}

func TestNormalize_NonNumericDifference(t *testing.T) {
	result := &model.ComparisonResult{
		AIResult: &model.AIComparison{
			FieldComparisons: []model.FieldComparison{
				{Field: "quantity", InvoiceValue: 3, POValue: 4, Match: false, Difference: "n/a"},
			},
		},
	}

	summary := Normalize(result)
	require.Len(t, summary.Rows, 1)
	assert.Empty(t, summary.Rows[0].Difference)
	assert.Equal(t, model.RowError, summary.Rows[0].Status)
}

func TestNormalize_PreservesPayloadOrder(t *testing.T) {
	result := &model.ComparisonResult{
		AIResult: &model.AIComparison{
			FieldComparisons: []model.FieldComparison{
				{Field: "tax_amount", Match: true},
				{Field: "vendor_name", Match: true},
				{Field: "date", Match: true},
			},
		},
	}

	summary := Normalize(result)
	require.Len(t, summary.Rows, 3)
	assert.Equal(t, "Tax", summary.Rows[0].Label)
	assert.Equal(t, "Vendor", summary.Rows[1].Label)
	assert.Equal(t, "Date", summary.Rows[2].Label)
}

func TestNormalize_IsPure(t *testing.T) {
	result := &model.ComparisonResult{
		AIResult: &model.AIComparison{
			ConfidenceScore: 87.0,
			FieldComparisons: []model.FieldComparison{
				{Field: "total_amount", InvoiceValue: 1000.0, POValue: 950.0, Match: false, Difference: 50.0},
				{Field: "vendor_name", InvoiceValue: "Acme", POValue: "Acme", Match: true},
			},
		},
	}

	first := Normalize(result)
	second := Normalize(result)
	assert.Equal(t, first, second)
}
