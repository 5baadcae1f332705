// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package models

// Resource identifies an entity type that permissions are granted on.
type Resource string

const (
	ResourceClient    Resource = "client"
	ResourceFarmer    Resource = "farmer"
	ResourceTask      Resource = "task"
	ResourceComplaint Resource = "complaint"
	ResourceForm      Resource = "form"
	ResourceUser      Resource = "user"
	ResourceRole      Resource = "role"
)

// Action identifies an operation performed on a resource.
type Action string

const (
	ActionRead    Action = "read"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionViewAll Action = "view_all"
)

// Permission is a single "<resource>_<action>" grant. The set of valid
// permissions is closed: values are built from the Resource and Action
// constants above, so a misspelled permission name cannot be constructed
// from typed code. Free-form strings read from storage are checked with
// [Permission.Valid] and ignored when unknown.
type Permission string

// Perm builds the canonical permission identifier for a resource/action
// pair, e.g. Perm(ResourceClient, ActionViewAll) == "client_view_all".
func Perm(r Resource, a Action) Permission {
	return Permission(string(r) + "_" + string(a))
}

var allResources = []Resource{
	ResourceClient,
	ResourceFarmer,
	ResourceTask,
	ResourceComplaint,
	ResourceForm,
	ResourceUser,
	ResourceRole,
}

var allActions = []Action{
	ActionRead,
	ActionCreate,
	ActionUpdate,
	ActionDelete,
	ActionViewAll,
}

// AllPermissions returns every valid permission identifier. The result is
// freshly allocated on each call; callers may modify it freely.
func AllPermissions() []Permission {
	perms := make([]Permission, 0, len(allResources)*len(allActions))
	for _, r := range allResources {
		for _, a := range allActions {
			perms = append(perms, Perm(r, a))
		}
	}
	return perms
}

// Valid reports whether p is one of the closed set of known permission
// identifiers.
func (p Permission) Valid() bool {
	for _, r := range allResources {
		for _, a := range allActions {
			if p == Perm(r, a) {
				return true
			}
		}
	}
	return false
}
