package models

import "time"

// ComplaintStatus is the workflow state of a complaint. Like TaskStatus,
// transitions are unconstrained.
type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

// Complaint is an issue reported by or about a client/farmer, tracked by an
// operator.
type Complaint struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      ComplaintStatus `json:"status"`
	Priority    Priority        `json:"priority"`

	// SubjectID optionally references the client or farmer the complaint
	// is about. Plain string reference, compared by value.
	SubjectID string `json:"subject_id,omitempty"`

	Ownership

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CollectionKey returns the storage key of the complaints collection.
func (c Complaint) CollectionKey() string {
	return "complaints"
}

// Owner returns the record's ownership relation.
func (c Complaint) Owner() Ownership {
	return c.Ownership
}
