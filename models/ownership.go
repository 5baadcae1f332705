// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package models

// Ownership carries the dual-keyed owner relation shared by every scoped
// record type: the user who created the record and the user the record is
// assigned to. The two may differ, and either one alone makes a user the
// owner. All visibility and mutation decisions evaluate ownership through
// this one type instead of re-deriving the OR-condition per entity.
type Ownership struct {
	// CreatedBy is the id of the user who created the record. Empty on
	// orphaned records.
	CreatedBy string `json:"created_by"`

	// AssignedUserID is the id of the user the record is assigned to.
	// Empty when unassigned.
	AssignedUserID string `json:"assigned_user_id"`
}

// OwnedBy reports whether userID owns the record through either relation.
// An empty userID never owns anything, so orphaned records (both fields
// empty) stay invisible to non-privileged principals.
func (o Ownership) OwnedBy(userID string) bool {
	if userID == "" {
		return false
	}
	return o.CreatedBy == userID || o.AssignedUserID == userID
}

// References reports whether userID appears in either ownership field.
// It is the relation the dependency scanner unions over before a user can
// be deleted.
func (o Ownership) References(userID string) bool {
	return o.OwnedBy(userID)
}

// Reassign rewrites every ownership field equal to fromID so that it points
// at toID, returning the updated value and whether anything changed.
func (o Ownership) Reassign(fromID, toID string) (Ownership, bool) {
	changed := false
	if o.CreatedBy == fromID {
		o.CreatedBy = toID
		changed = true
	}
	if o.AssignedUserID == fromID {
		o.AssignedUserID = toID
		changed = true
	}
	return o, changed
}

// Orphan clears every ownership field equal to userID, returning the updated
// value and whether anything changed. Used by the explicit
// delete-without-reassignment path so no record is left with a dangling
// owner id.
func (o Ownership) Orphan(userID string) (Ownership, bool) {
	changed := false
	if o.CreatedBy == userID {
		o.CreatedBy = ""
		changed = true
	}
	if o.AssignedUserID == userID {
		o.AssignedUserID = ""
		changed = true
	}
	return o, changed
}
