// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

// Package policy implements the permission-scoped visibility and mutation
// model shared by every record type in the application.
//
// The package is pure: it holds no storage handles and performs no IO, so a
// decision is always a function of the principal, the resolved permission
// set, and the record's ownership relation. Services apply these decisions
// before touching any store; transports only translate the returned
// sentinel errors into status codes.
package policy

import (
	"sort"

	"github.com/agrodesk/agrodesk/models"
)

// PermissionSet is a role's resolved set of grants, matched by exact
// identifier. It is resolved once per authenticated session and carried
// alongside the principal for the session's lifetime.
type PermissionSet map[models.Permission]struct{}

// Resolve builds a PermissionSet from a role's stored permission list.
// Entries outside the closed permission enum are skipped: an unknown or
// misspelled identifier must not silently deny (or grant) anything beyond
// itself.
func Resolve(role models.Role) PermissionSet {
	set := make(PermissionSet, len(role.Permissions))
	for _, p := range role.Permissions {
		if !p.Valid() {
			continue
		}
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the given permission.
func (s PermissionSet) Has(p models.Permission) bool {
	_, ok := s[p]
	return ok
}

// HasAction reports whether the set grants action on resource.
func (s PermissionSet) HasAction(r models.Resource, a models.Action) bool {
	return s.Has(models.Perm(r, a))
}

// List returns the set's permissions in stable sorted order, mainly for
// serialization into login responses.
func (s PermissionSet) List() []models.Permission {
	out := make([]models.Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Owned is implemented by every record type carrying the dual-keyed
// ownership relation.
type Owned interface {
	Owner() models.Ownership
}
