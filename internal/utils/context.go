// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, JWT token
// generation and validation, HTTP response writing, and record-id
// generation.
package utils

import (
	"context"

	"github.com/agrodesk/agrodesk/internal/policy"
	"github.com/agrodesk/agrodesk/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated principal is
// stored in the request context by the auth middleware.
var PrincipalCtxKey = contextKey("principal")

// PermissionsCtxKey is the key under which the principal's resolved
// permission list is stored in the request context by the auth middleware.
var PermissionsCtxKey = contextKey("permissions")

// GetPrincipalFromContext retrieves the authenticated principal from the
// context.
//
// Returns the principal and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return principal, ok
}

// GetPermissionsFromContext retrieves the resolved permission set from the
// context. A missing value yields a nil set with ok == false.
func GetPermissionsFromContext(ctx context.Context) (policy.PermissionSet, bool) {
	perms, ok := ctx.Value(PermissionsCtxKey).(policy.PermissionSet)
	return perms, ok
}
