// Package handoff passes a comparison result from the submission flow to
// the verification view through a single fixed-key transient slot.
package handoff

import "github.com/luminexhq/luminex-cli/internal/model"

// Key identifies the last-uploaded comparison result within the current
// session.
const Key = "luminex:lastResult"

// Channel is the publish/consume contract for the transient slot. Publish
// overwrites any prior value. Consume reports absence with ok=false; an
// empty or malformed slot is not an error, the verification view renders
// an explicit empty state instead.
type Channel interface {
	Publish(result *model.ComparisonResult) error
	Consume() (result *model.ComparisonResult, ok bool)
}
