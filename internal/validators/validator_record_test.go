package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/models"
)

func validUser() models.User {
	return models.User{
		Name:   "Asha Verma",
		Email:  "asha@agrodesk.local",
		RoleID: "role-agent",
		Status: models.UserActive,
	}
}

func validClient() models.Client {
	return models.Client{
		Name:   "Green Valley Traders",
		Type:   models.ClientCorporate,
		Status: models.RecordActive,
	}
}

func TestRecordValidator_UnsupportedType(t *testing.T) {
	v := NewRecordValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRecordValidator_User(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.User)
		wantErr error
	}{
		{"valid", func(u *models.User) {}, nil},
		{"empty name", func(u *models.User) { u.Name = "" }, ErrEmptyName},
		{"bad email", func(u *models.User) { u.Email = "not-an-email" }, ErrInvalidEmail},
		{"empty email", func(u *models.User) { u.Email = "" }, ErrInvalidEmail},
		{"missing role", func(u *models.User) { u.RoleID = "" }, ErrEmptyRoleID},
		{"bogus status", func(u *models.User) { u.Status = "frozen" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := v.Validate(ctx, u)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordValidator_User_PointerForm(t *testing.T) {
	v := NewRecordValidator()

	u := validUser()
	assert.NoError(t, v.Validate(context.Background(), &u))
}

func TestRecordValidator_User_FieldScoping(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	// Broken email, but only the name field is requested.
	u := validUser()
	u.Email = "broken"

	assert.NoError(t, v.Validate(ctx, u, FieldName))
	assert.ErrorIs(t, v.Validate(ctx, u, FieldEmail), ErrInvalidEmail)
	assert.ErrorIs(t, v.Validate(ctx, u, "no_such_field"), ErrUnknownField)
}

func TestRecordValidator_Client(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Client)
		wantErr error
	}{
		{"valid corporate", func(c *models.Client) {}, nil},
		{"valid individual", func(c *models.Client) { c.Type = models.ClientIndividual }, nil},
		{"empty name", func(c *models.Client) { c.Name = "" }, ErrEmptyName},
		{"bogus type", func(c *models.Client) { c.Type = "cooperative" }, ErrInvalidType},
		{"bogus status", func(c *models.Client) { c.Status = "dormant" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClient()
			tt.mutate(&c)

			err := v.Validate(ctx, c)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordValidator_Client_OptionalEmail(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	c := validClient()
	// Empty email is fine for clients; a malformed one is not.
	assert.NoError(t, v.Validate(ctx, c, FieldEmail))

	c.Email = "not-an-email"
	assert.ErrorIs(t, v.Validate(ctx, c, FieldEmail), ErrInvalidEmail)
}

func TestRecordValidator_Farmer(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	f := models.Farmer{
		Name:      "Ravi Kumar",
		Status:    models.RecordActive,
		LandAcres: 12.5,
	}
	require.NoError(t, v.Validate(ctx, f))

	f.LandAcres = -1
	assert.ErrorIs(t, v.Validate(ctx, f), ErrNegativeAcres)
}

func TestRecordValidator_Task(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	task := models.Task{
		Title:    "Visit storage site",
		Status:   models.TaskPending,
		Priority: models.PriorityHigh,
	}
	require.NoError(t, v.Validate(ctx, task))

	task.Title = ""
	assert.ErrorIs(t, v.Validate(ctx, task), ErrEmptyTitle)

	task = models.Task{Title: "t", Status: "parked", Priority: models.PriorityLow}
	assert.ErrorIs(t, v.Validate(ctx, task), ErrInvalidStatus)

	task = models.Task{Title: "t", Status: models.TaskPending, Priority: "whenever"}
	assert.ErrorIs(t, v.Validate(ctx, task), ErrInvalidPriority)
}

func TestRecordValidator_Complaint(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	complaint := models.Complaint{
		Title:    "Late seed delivery",
		Status:   models.ComplaintOpen,
		Priority: models.PriorityUrgent,
	}
	require.NoError(t, v.Validate(ctx, complaint))

	complaint.Status = "ignored"
	assert.ErrorIs(t, v.Validate(ctx, complaint), ErrInvalidStatus)
}

func TestRecordValidator_Form(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	form := models.DigitalForm{
		Title: "Harvest survey",
		Fields: []models.FormField{
			{ID: "field-1", Label: "Crop", Type: models.FieldText, Required: true},
			{ID: "field-2", Label: "Yield (tons)", Type: models.FieldNumber},
		},
	}
	require.NoError(t, v.Validate(ctx, form))

	form.Title = ""
	assert.ErrorIs(t, v.Validate(ctx, form), ErrEmptyTitle)

	form = models.DigitalForm{Title: "Empty"}
	assert.ErrorIs(t, v.Validate(ctx, form), ErrNoFormFields)

	form = models.DigitalForm{
		Title:  "Bad label",
		Fields: []models.FormField{{ID: "field-1", Type: models.FieldText}},
	}
	assert.ErrorIs(t, v.Validate(ctx, form), ErrEmptyFieldLabel)

	form = models.DigitalForm{
		Title:  "Bad type",
		Fields: []models.FormField{{ID: "field-1", Label: "x", Type: "slider"}},
	}
	assert.ErrorIs(t, v.Validate(ctx, form), ErrInvalidFieldType)

	form = models.DigitalForm{
		Title:  "Select without options",
		Fields: []models.FormField{{ID: "field-1", Label: "Region", Type: models.FieldSelect}},
	}
	assert.ErrorIs(t, v.Validate(ctx, form), ErrNoSelectOptions)
}

func TestRecordValidator_Credentials(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	creds := models.Credentials{
		Email:    "asha@agrodesk.local",
		Password: "secret",
		Location: &models.GeoPoint{Latitude: 12.97, Longitude: 77.59},
	}
	require.NoError(t, v.Validate(ctx, creds))

	creds.Location = nil
	assert.ErrorIs(t, v.Validate(ctx, creds), ErrMissingLocation)

	creds.Location = &models.GeoPoint{}
	creds.Password = ""
	assert.ErrorIs(t, v.Validate(ctx, creds), ErrEmptyPassword)

	creds.Password = "secret"
	creds.Email = "nope"
	assert.ErrorIs(t, v.Validate(ctx, creds), ErrInvalidEmail)
}
