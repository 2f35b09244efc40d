package model

import "encoding/json"

// ComparisonResult is the payload returned by the comparison backend.
// Only the AI comparison is interpreted further; the rule-based result
// and the structured extractions are carried opaquely.
type ComparisonResult struct {
	AIResult          *AIComparison   `json:"ai_result"`
	RuleResult        json.RawMessage `json:"rule_result,omitempty"`
	InvoiceStructured json.RawMessage `json:"invoice_structured,omitempty"`
	POStructured      json.RawMessage `json:"po_structured,omitempty"`
}

// AIComparison is the AI-derived comparison of the two documents.
// ConfidenceScore is typed loosely because the backend does not guarantee
// a numeric value; coercion happens during normalization.
type AIComparison struct {
	ConfidenceScore  any               `json:"confidence_score"`
	FieldComparisons []FieldComparison `json:"field_comparisons"`
}

// FieldComparison is one compared field as supplied by the backend.
// Difference is only meaningful when both values are numeric, and is not
// guaranteed to equal InvoiceValue - POValue; the supplied value is
// trusted as-is.
type FieldComparison struct {
	InvoiceValue any    `json:"invoice_value"`
	POValue      any    `json:"po_value"`
	Difference   any    `json:"difference"`
	Field        string `json:"field"`
	Match        bool   `json:"match"`
}

// RowStatus classifies a comparison row for display.
type RowStatus string

// Row status constants.
const (
	RowMatched  RowStatus = "MATCHED"
	RowMismatch RowStatus = "MISMATCH"
	RowError    RowStatus = "ERROR"
)

// ComparisonRow is the UI-facing form of a FieldComparison. Derived once
// per render and never mutated or persisted.
type ComparisonRow struct {
	Label        string
	InvoiceValue string
	POValue      string
	Difference   string
	Status       RowStatus
	Match        bool
}
