package tui

import (
	"github.com/luminexhq/luminex-cli/internal/model"
	"github.com/luminexhq/luminex-cli/internal/tui/components"
)

// slotSettledMsg ends the bounded uploading affordance and hands the
// picked file to the intake form.
type slotSettledMsg struct {
	path string
	role model.DocumentRole
}

// compareFinishedMsg carries a successful backend response. seq ties the
// response to the submission that produced it so a late arrival after the
// submitting view is gone is dropped.
type compareFinishedMsg struct {
	result *model.ComparisonResult
	seq    int
}

// compareFailedMsg carries a failed submission.
type compareFailedMsg struct {
	err error
	seq int
}

// decisionDoneMsg reports the outcome of forwarding an intent to the
// workflow collaborator.
type decisionDoneMsg struct {
	err    error
	intent components.Intent
}
