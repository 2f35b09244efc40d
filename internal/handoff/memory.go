package handoff

import (
	"encoding/json"

	"github.com/luminexhq/luminex-cli/internal/model"
)

// Memory is an in-process Channel used by the single-process compare flow
// and by tests. The payload is held serialized so Consume round-trips
// through the same JSON shapes as the session store.
type Memory struct {
	raw []byte
}

// NewMemory creates an empty in-memory channel.
func NewMemory() *Memory {
	return &Memory{}
}

// Publish serializes the result into the slot, overwriting any prior
// value.
func (m *Memory) Publish(result *model.ComparisonResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	m.raw = raw
	return nil
}

// Consume reads the slot; absence or malformed content yields ok=false.
func (m *Memory) Consume() (*model.ComparisonResult, bool) {
	if len(m.raw) == 0 {
		return nil, false
	}
	var result model.ComparisonResult
	if err := json.Unmarshal(m.raw, &result); err != nil {
		return nil, false
	}
	return &result, true
}
