package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")
	ErrGeolocationRequired = errors.New("geolocation grant is required")
	ErrUserInactive        = errors.New("user account is inactive")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email is already in use")
	ErrRoleInUse  = errors.New("role is still assigned to users")

	ErrHasDependents         = errors.New("user still has dependent records")
	ErrReassignTargetInvalid = errors.New("reassignment target must exist, be active, and differ from the deleted user")
	ErrReassignIncomplete    = errors.New("reassignment partially applied")
	ErrOrphanNotConfirmed    = errors.New("orphaning delete requires explicit confirmation")
	ErrOrphanIncomplete      = errors.New("orphaning partially applied")

	ErrFormNotPublished = errors.New("form is not published")
)
