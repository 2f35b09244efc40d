// Package components contains the intake and verification screen models.
package components

import "github.com/luminexhq/luminex-cli/internal/model"

// Intent is a user decision emitted by the verification screen.
type Intent int

// Verification intents.
const (
	IntentApprove Intent = iota
	IntentFlag
	IntentReupload
)

// IntentMsg is sent when the user chooses a verification intent.
type IntentMsg struct {
	Intent Intent
}

// BrowseRequestMsg asks the parent to open the file picker for a role.
type BrowseRequestMsg struct {
	Role model.DocumentRole
}

// ClearRequestMsg asks the parent to clear the slot for a role.
type ClearRequestMsg struct {
	Role model.DocumentRole
}

// SubmitRequestMsg asks the parent to submit the accepted documents.
type SubmitRequestMsg struct{}
