package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyRoleID      = errors.New("role id is required")
	ErrInvalidType      = errors.New("invalid client type")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrMissingLocation  = errors.New("geolocation grant is required")
	ErrNegativeAcres    = errors.New("land acres cannot be negative")
	ErrNoFormFields     = errors.New("form must declare at least one field")
	ErrEmptyFieldLabel  = errors.New("form field label is required")
	ErrInvalidFieldType = errors.New("invalid form field type")
	ErrNoSelectOptions  = errors.New("select field must declare options")

	ErrRequiredResponse = errors.New("response for required field is missing")
	ErrUnknownFieldID   = errors.New("response references unknown field id")
	ErrNotANumber       = errors.New("response is not a number")
	ErrNotAnOption      = errors.New("response is not one of the field options")
	ErrNotADate         = errors.New("response is not a date in YYYY-MM-DD form")
)
