// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package policy

import "github.com/agrodesk/agrodesk/models"

// AllowCreate checks whether the principal may create a record of the given
// resource type. Creation requires only the flat create permission; there is
// no ownership to check because the creator becomes the owner.
func AllowCreate(principal models.Principal, perms PermissionSet, resource models.Resource) error {
	if perms.HasAction(resource, models.ActionCreate) {
		return nil
	}
	return ErrPermissionDenied
}

// AllowMutate checks whether the principal may apply action (update or
// delete) to an existing record.
//
// The principal needs the matching flat permission AND must either act with
// an administrator role or own the record through one of the two ownership
// fields. Administrators bypass the ownership half only; self-protection on
// user accounts is enforced separately by [GuardSelf].
func AllowMutate(record Owned, principal models.Principal, perms PermissionSet, resource models.Resource, action models.Action) error {
	if !perms.HasAction(resource, action) {
		return ErrPermissionDenied
	}
	if principal.IsAdmin {
		return nil
	}
	if !record.Owner().OwnedBy(principal.UserID) {
		return ErrPermissionDenied
	}
	return nil
}

// GuardSelf rejects a principal's attempt to delete or deactivate their own
// user account. The rule holds regardless of any permissions held, including
// administrator roles.
func GuardSelf(principal models.Principal, targetUserID string) error {
	if principal.UserID != "" && principal.UserID == targetUserID {
		return ErrSelfProtection
	}
	return nil
}
