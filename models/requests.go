// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package models

// DependencyReport is the result of scanning sibling collections for records
// that reference a user by either ownership field. It backs the decision
// between direct deletion and the reassignment flow, and the full record
// lists are returned for display purposes.
type DependencyReport struct {
	// UserID is the user the scan was run for.
	UserID string `json:"user_id"`

	// Clients and Farmers list every dependent record, matching on
	// created_by OR assigned_user_id.
	Clients []Client `json:"clients"`
	Farmers []Farmer `json:"farmers"`

	// Count is the total number of dependent records across all
	// collections.
	Count int `json:"count"`
}

// HasDependents reports whether any record still references the scanned
// user.
func (r DependencyReport) HasDependents() bool {
	return r.Count > 0
}

// ReassignRequest asks the server to rewrite every dependent record of the
// addressed user to a new owner and then delete the user.
type ReassignRequest struct {
	// ToUserID is the user receiving ownership of all dependent records.
	// Must exist, be active, and differ from the user being deleted.
	ToUserID string `json:"to_user_id"`
}

// DeleteUserRequest is the body of the destructive delete-without-
// reassignment path. Orphan must be true and Confirm must repeat the id of
// the user being deleted; anything else is rejected so the path can never be
// hit by accident.
type DeleteUserRequest struct {
	Orphan  bool   `json:"orphan"`
	Confirm string `json:"confirm"`
}

// LoginResponse is returned after successful authentication. The token also
// travels in the Authorization response header; it is duplicated here so
// non-browser clients need no header parsing.
type LoginResponse struct {
	Token       string       `json:"token"`
	User        User         `json:"user"`
	Permissions []Permission `json:"permissions"`
	IsAdmin     bool         `json:"is_admin"`
}

// SubmitFormRequest is the public submission payload for a published form.
type SubmitFormRequest struct {
	Responses   map[string]string `json:"responses"`
	SubmittedBy string            `json:"submitted_by,omitempty"`
}
