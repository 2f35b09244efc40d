// Package model defines the core domain models used throughout the application.
package model

// DocumentRole identifies which side of the comparison a document belongs to.
type DocumentRole string

// Document role constants.
const (
	RoleInvoice       DocumentRole = "invoice"
	RolePurchaseOrder DocumentRole = "po"
)

// AcceptanceState tracks a document slot through intake.
type AcceptanceState string

// Acceptance state constants.
const (
	StateIdle      AcceptanceState = "IDLE"
	StateUploading AcceptanceState = "UPLOADING"
	StateAccepted  AcceptanceState = "ACCEPTED"
	StateRejected  AcceptanceState = "REJECTED"
)

// Document is a candidate file captured for one comparison slot.
type Document struct {
	Name      string
	MediaType string
	Data      []byte
	Size      int64
}

// DocumentSlot holds at most one candidate document for a role.
// Exactly one slot exists per role; a newly accepted document replaces
// the previous one.
type DocumentSlot struct {
	Doc   *Document
	Role  DocumentRole
	State AcceptanceState
}
