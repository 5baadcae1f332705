// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package service

import (
	"context"

	"github.com/agrodesk/agrodesk/internal/policy"
	"github.com/agrodesk/agrodesk/models"
)

// AuthService handles credential verification, token lifecycle, and
// per-request principal resolution.
type AuthService interface {
	// Login authenticates by email (case-insensitive) and password. The
	// credentials must carry a geolocation grant; sessions opened without
	// one are rejected regardless of the credential check.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolvePrincipal loads the user and their role and returns the
	// principal plus the resolved permission set. Inactive users and users
	// holding inactive roles are rejected.
	ResolvePrincipal(ctx context.Context, userID string) (models.Principal, policy.PermissionSet, error)
}

// RecordService is the ownership-scoped CRUD surface shared by clients,
// farmers, tasks, and complaints. Every method takes the authenticated
// principal and their resolved permission set; visibility and mutation
// rules are applied before any store write.
type RecordService[T policy.Owned] interface {
	// List returns the records visible to the principal, optionally
	// filtered by a case-insensitive substring search over the type's
	// searchable fields. Search applies after the visibility filter.
	List(ctx context.Context, principal models.Principal, perms policy.PermissionSet, search string) ([]T, error)

	Get(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) (T, error)
	Create(ctx context.Context, principal models.Principal, perms policy.PermissionSet, record T) (T, error)
	Update(ctx context.Context, principal models.Principal, perms policy.PermissionSet, record T) (T, error)
	Delete(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) error
}

// UserService manages operator accounts, including the dependency scan and
// the two deletion paths.
type UserService interface {
	List(ctx context.Context, principal models.Principal, perms policy.PermissionSet, search string) ([]models.User, error)
	Get(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) (models.User, error)
	Create(ctx context.Context, principal models.Principal, perms policy.PermissionSet, user models.User, password string) (models.User, error)
	Update(ctx context.Context, principal models.Principal, perms policy.PermissionSet, user models.User) (models.User, error)

	// Delete removes a user with no dependent records. When the dependency
	// scan still finds references it fails with ErrHasDependents; callers
	// must go through ReassignAndDelete or DeleteOrphaning instead.
	Delete(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) error

	// DependencyScan unions both ownership fields across the client and
	// farmer collections and returns every record still referencing id.
	DependencyScan(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) (models.DependencyReport, error)

	// ReassignAndDelete rewrites both ownership fields of every dependent
	// record from id to the request target, confirming each collection
	// write before deleting the user. A mid-sequence failure surfaces
	// ErrReassignIncomplete and leaves the user in place.
	ReassignAndDelete(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string, req models.ReassignRequest) error

	// DeleteOrphaning clears both ownership fields on every dependent
	// record and then deletes the user. The request must carry Orphan=true
	// and repeat the user id in Confirm.
	DeleteOrphaning(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string, req models.DeleteUserRequest) error
}

// RoleService manages named permission sets. Roles carry no ownership;
// access is decided by the flat role permissions alone.
type RoleService interface {
	List(ctx context.Context, principal models.Principal, perms policy.PermissionSet) ([]models.Role, error)
	Get(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) (models.Role, error)
	Create(ctx context.Context, principal models.Principal, perms policy.PermissionSet, role models.Role) (models.Role, error)
	Update(ctx context.Context, principal models.Principal, perms policy.PermissionSet, role models.Role) (models.Role, error)
	Delete(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) error
}

// FormService manages digital forms and their submissions. The public
// methods take no principal: they serve the unauthenticated submission
// endpoint and only ever expose published forms.
type FormService interface {
	List(ctx context.Context, principal models.Principal, perms policy.PermissionSet, search string) ([]models.DigitalForm, error)
	Get(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) (models.DigitalForm, error)
	Create(ctx context.Context, principal models.Principal, perms policy.PermissionSet, form models.DigitalForm) (models.DigitalForm, error)
	Update(ctx context.Context, principal models.Principal, perms policy.PermissionSet, form models.DigitalForm) (models.DigitalForm, error)
	Delete(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) error

	// GetPublished returns a form by id for the public endpoint. Draft and
	// archived forms read as not found.
	GetPublished(ctx context.Context, id string) (models.DigitalForm, error)

	// Submit validates a public submission against the published form's
	// field schema and appends it. Submissions are append-only.
	Submit(ctx context.Context, formID string, req models.SubmitFormRequest) (models.FormSubmission, error)

	// Submissions lists the stored submissions of a form the principal can
	// see.
	Submissions(ctx context.Context, principal models.Principal, perms policy.PermissionSet, formID string) ([]models.FormSubmission, error)
}
