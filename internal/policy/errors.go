package policy

import "errors"

// Sentinel errors returned by guard checks. Callers must surface these to
// the user (never a silent no-op) and must leave the store untouched.
var (
	// ErrPermissionDenied is returned when the principal lacks the flat
	// permission for an action, or lacks ownership where ownership is
	// required.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrSelfProtection is returned when a principal attempts to delete or
	// deactivate their own user account.
	ErrSelfProtection = errors.New("own account cannot be deleted or deactivated")
)
