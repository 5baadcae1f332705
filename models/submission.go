package models

import "time"

// FormSubmission is one response to a published form. Submissions are
// append-only: there is no edit path, and deletion is possible only through
// the owning form's lifecycle.
type FormSubmission struct {
	ID     string `json:"id"`
	FormID string `json:"form_id"`

	// Responses maps field ids of the form's schema to submitted values.
	// Values are kept as strings; typed validation happens at submit time
	// against the field schema.
	Responses map[string]string `json:"responses"`

	// SubmittedBy optionally carries the submitter's self-reported name or
	// contact. Public submissions are anonymous by default.
	SubmittedBy string `json:"submitted_by,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
}

// CollectionKey returns the storage key of the form submissions collection.
func (s FormSubmission) CollectionKey() string {
	return "form_submissions"
}
