// Package intake validates and holds candidate documents for one
// comparison submission: one invoice slot and one purchase order slot.
package intake

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luminexhq/luminex-cli/internal/common"
	"github.com/luminexhq/luminex-cli/internal/model"
)

// MaxFileSize is the intake ceiling for a single document.
const MaxFileSize = 10 << 20 // 10 MiB

// AllowedExtensions lists the file extensions intake accepts, in the
// form the file picker expects.
var AllowedExtensions = []string{".pdf", ".png", ".jpg", ".jpeg"}

// mediaTypes maps accepted extensions to their media types. Validation is
// extension-based only; file contents are never inspected.
var mediaTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// Outcome reports the result of submitting a candidate file.
type Outcome struct {
	Err   error
	State model.AcceptanceState
}

// Form owns exactly one document slot per role. It is not safe for
// concurrent use; the TUI drives it from a single goroutine.
type Form struct {
	slots    map[model.DocumentRole]*model.DocumentSlot
	onChange func(model.DocumentRole, *model.Document)
}

// NewForm creates a form with both slots idle.
func NewForm() *Form {
	return &Form{
		slots: map[model.DocumentRole]*model.DocumentSlot{
			model.RoleInvoice:       {Role: model.RoleInvoice, State: model.StateIdle},
			model.RolePurchaseOrder: {Role: model.RolePurchaseOrder, State: model.StateIdle},
		},
	}
}

// OnChange registers a hook invoked with the latest accepted document
// whenever a slot changes, so the owner can recompute the submit gate.
func (f *Form) OnChange(fn func(model.DocumentRole, *model.Document)) {
	f.onChange = fn
}

// SubmitCandidate validates the file at path and, on acceptance, replaces
// any previously accepted document for the role. A rejected candidate
// leaves a previously accepted document untouched.
func (f *Form) SubmitCandidate(role model.DocumentRole, path string) Outcome {
	slot, ok := f.slots[role]
	if !ok {
		return Outcome{State: model.StateRejected, Err: fmt.Errorf("unknown document role %q", role)}
	}

	doc, err := loadDocument(path)
	if err != nil {
		// Keep the prior accepted document; only an empty slot lands in
		// the rejected state.
		if slot.Doc == nil {
			slot.State = model.StateRejected
		}
		return Outcome{State: model.StateRejected, Err: err}
	}

	slot.Doc = doc
	slot.State = model.StateAccepted
	f.notify(role, doc)

	return Outcome{State: model.StateAccepted}
}

// Clear returns the slot for role to the idle state.
func (f *Form) Clear(role model.DocumentRole) {
	slot, ok := f.slots[role]
	if !ok {
		return
	}
	slot.Doc = nil
	slot.State = model.StateIdle
	f.notify(role, nil)
}

// Slot returns a snapshot of the slot for role.
func (f *Form) Slot(role model.DocumentRole) model.DocumentSlot {
	if slot, ok := f.slots[role]; ok {
		return *slot
	}
	return model.DocumentSlot{Role: role, State: model.StateIdle}
}

// Ready reports whether both slots hold accepted documents, which gates
// submission.
func (f *Form) Ready() bool {
	for _, slot := range f.slots {
		if slot.State != model.StateAccepted || slot.Doc == nil {
			return false
		}
	}
	return true
}

// Files returns the accepted invoice and purchase order documents, or
// ErrMissingInput when either slot is not accepted.
func (f *Form) Files() (invoice, po *model.Document, err error) {
	if !f.Ready() {
		return nil, nil, common.ErrMissingInput
	}
	return f.slots[model.RoleInvoice].Doc, f.slots[model.RolePurchaseOrder].Doc, nil
}

func (f *Form) notify(role model.DocumentRole, doc *model.Document) {
	if f.onChange != nil {
		f.onChange(role, doc)
	}
}

// loadDocument validates type and size and captures the file contents.
func loadDocument(path string) (*model.Document, error) {
	mediaType, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %s: unsupported type, want PDF, PNG or JPG", common.ErrInputRejected, filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrInputRejected, filepath.Base(path), err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s: exceeds 10 MiB limit", common.ErrInputRejected, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrInputRejected, filepath.Base(path), err)
	}

	return &model.Document{
		Name:      filepath.Base(path),
		MediaType: mediaType,
		Data:      data,
		Size:      info.Size(),
	}, nil
}
