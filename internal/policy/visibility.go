// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package policy

import "github.com/agrodesk/agrodesk/models"

// Visible returns the subset of records the principal may list or search.
//
// A principal holding the resource's view-all permission, or acting with an
// administrator role, sees every record. Everyone else sees only records
// they own through either ownership field. Records with neither field set
// are orphaned and stay invisible to non-privileged principals.
//
// Search-term filtering must be applied to the result of this function,
// never before it: a principal must not be able to search into records
// outside their scope.
func Visible[T Owned](records []T, principal models.Principal, perms PermissionSet, resource models.Resource) []T {
	if principal.IsAdmin || perms.HasAction(resource, models.ActionViewAll) {
		out := make([]T, len(records))
		copy(out, records)
		return out
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.Owner().OwnedBy(principal.UserID) {
			out = append(out, r)
		}
	}
	return out
}

// CanSee reports whether a single record is inside the principal's
// visibility scope. It is the single-record form of [Visible], used on
// get-by-id paths.
func CanSee(record Owned, principal models.Principal, perms PermissionSet, resource models.Resource) bool {
	if principal.IsAdmin || perms.HasAction(resource, models.ActionViewAll) {
		return true
	}
	return record.Owner().OwnedBy(principal.UserID)
}
