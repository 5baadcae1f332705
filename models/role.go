// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package models

import "time"

// Role groups a named set of permissions. A user acts with exactly one role;
// the role's permission list is resolved into a policy.PermissionSet once per
// authenticated session.
type Role struct {
	// ID is the opaque unique identifier of the role ("role-<uuid>").
	ID string `json:"id"`

	// Name is the unique human-readable role name (e.g. "Agent").
	Name string `json:"name"`

	// Description is free-form text shown in the role editor.
	Description string `json:"description,omitempty"`

	// Permissions is the list of grants held by this role. Entries that do
	// not parse as known permissions are ignored during resolution rather
	// than silently denying the whole role.
	Permissions []Permission `json:"permissions"`

	// IsAdmin flags a role with unrestricted access: every permission is
	// treated as granted and ownership checks are bypassed.
	IsAdmin bool `json:"is_admin"`

	// IsActive controls whether users holding this role may authenticate.
	IsActive bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CollectionKey returns the storage key of the roles collection.
func (r Role) CollectionKey() string {
	return "roles"
}
