package validators

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/agrodesk/agrodesk/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldName targets the display name of a user, client, or farmer.
	FieldName = "name"

	// FieldTitle targets the title of a task, complaint, or form.
	FieldTitle = "title"

	// FieldEmail targets an email address field.
	FieldEmail = "email"

	// FieldPassword targets a plaintext password supplied on login or
	// user creation.
	FieldPassword = "password"

	// FieldRoleID targets the role reference of a user account.
	FieldRoleID = "role_id"

	// FieldClientType targets the individual/corporate discriminator.
	FieldClientType = "client_type"

	// FieldStatus targets the lifecycle or workflow status field.
	FieldStatus = "status"

	// FieldPriority targets the priority field of tasks and complaints.
	FieldPriority = "priority"

	// FieldLocation targets the geolocation grant of a login request.
	FieldLocation = "location"

	// FieldLandAcres targets the farm size attribute of a farmer.
	FieldLandAcres = "land_acres"

	// FieldFormFields targets the field schema of a digital form.
	FieldFormFields = "form_fields"
)

// allowedFieldTypes is the exhaustive set of FieldType values accepted in a
// form schema. Any FieldType not present here is considered invalid.
var allowedFieldTypes = []models.FieldType{
	models.FieldText,
	models.FieldTextarea,
	models.FieldNumber,
	models.FieldEmail,
	models.FieldDate,
	models.FieldSelect,
	models.FieldCheckbox,
}

// RecordValidator implements the Validator interface for all CRM domain
// models: User, Client, Farmer, Task, Complaint, DigitalForm, and the
// Credentials login payload.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator
// and returns it as the Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.User / *models.User
//   - models.Client / *models.Client
//   - models.Farmer / *models.Farmer
//   - models.Task / *models.Task
//   - models.Complaint / *models.Complaint
//   - models.DigitalForm / *models.DigitalForm
//   - models.Credentials / *models.Credentials
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Client:
		return v.validateClient(ctx, value, fields...)
	case *models.Client:
		return v.validateClient(ctx, *value, fields...)

	case models.Farmer:
		return v.validateFarmer(ctx, value, fields...)
	case *models.Farmer:
		return v.validateFarmer(ctx, *value, fields...)

	case models.Task:
		return v.validateTask(ctx, value, fields...)
	case *models.Task:
		return v.validateTask(ctx, *value, fields...)

	case models.Complaint:
		return v.validateComplaint(ctx, value, fields...)
	case *models.Complaint:
		return v.validateComplaint(ctx, *value, fields...)

	case models.DigitalForm:
		return v.validateForm(ctx, value, fields...)
	case *models.DigitalForm:
		return v.validateForm(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidEmail reports whether s parses as a single RFC 5322 address.
func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func isValidFieldType(ft models.FieldType) bool {
	for _, t := range allowedFieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

func (v *RecordValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldRoleID, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if user.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !isValidEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldRoleID:
			if user.RoleID == "" {
				return ErrEmptyRoleID
			}
		case FieldStatus:
			if user.Status != models.UserActive && user.Status != models.UserInactive {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateClient(ctx context.Context, client models.Client, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldClientType, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if client.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if client.Email != "" && !isValidEmail(client.Email) {
				return ErrInvalidEmail
			}
		case FieldClientType:
			if client.Type != models.ClientIndividual && client.Type != models.ClientCorporate {
				return ErrInvalidType
			}
		case FieldStatus:
			if client.Status != models.RecordActive && client.Status != models.RecordInactive {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateFarmer(ctx context.Context, farmer models.Farmer, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldStatus, FieldLandAcres}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if farmer.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if farmer.Email != "" && !isValidEmail(farmer.Email) {
				return ErrInvalidEmail
			}
		case FieldStatus:
			if farmer.Status != models.RecordActive && farmer.Status != models.RecordInactive {
				return ErrInvalidStatus
			}
		case FieldLandAcres:
			if farmer.LandAcres < 0 {
				return ErrNegativeAcres
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateTask(ctx context.Context, task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldStatus, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if task.Title == "" {
				return ErrEmptyTitle
			}
		case FieldStatus:
			switch task.Status {
			case models.TaskPending, models.TaskInProgress, models.TaskCompleted, models.TaskCancelled:
			default:
				return ErrInvalidStatus
			}
		case FieldPriority:
			switch task.Priority {
			case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent:
			default:
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateComplaint(ctx context.Context, complaint models.Complaint, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldStatus, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if complaint.Title == "" {
				return ErrEmptyTitle
			}
		case FieldStatus:
			switch complaint.Status {
			case models.ComplaintOpen, models.ComplaintInProgress, models.ComplaintResolved, models.ComplaintClosed:
			default:
				return ErrInvalidStatus
			}
		case FieldPriority:
			switch complaint.Priority {
			case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent:
			default:
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateForm(ctx context.Context, form models.DigitalForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldFormFields}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if form.Title == "" {
				return ErrEmptyTitle
			}
		case FieldFormFields:
			if len(form.Fields) == 0 {
				return ErrNoFormFields
			}
			for _, field := range form.Fields {
				if field.Label == "" {
					return fmt.Errorf("field %q: %w", field.ID, ErrEmptyFieldLabel)
				}
				if !isValidFieldType(field.Type) {
					return fmt.Errorf("field %q: %w", field.ID, ErrInvalidFieldType)
				}
				if field.Type == models.FieldSelect && len(field.Options) == 0 {
					return fmt.Errorf("field %q: %w", field.ID, ErrNoSelectOptions)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldLocation}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(creds.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		case FieldLocation:
			if creds.Location == nil {
				return ErrMissingLocation
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
