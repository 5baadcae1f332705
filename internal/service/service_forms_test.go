// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/internal/policy"
	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/models"
)

func draftForm() models.DigitalForm {
	return models.DigitalForm{
		Title: "Harvest survey",
		Fields: []models.FormField{
			{Label: "Farmer name", Type: models.FieldText, Required: true},
			{Label: "Yield (tons)", Type: models.FieldNumber},
			{Label: "Crop", Type: models.FieldSelect, Options: []string{"wheat", "rice"}},
		},
	}
}

func TestFormService_Create_AssignsFieldIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.services.FormService.Create(ctx, f.agentA, f.agentPerms, draftForm())
	require.NoError(t, err)

	assert.Equal(t, models.FormDraft, created.Status)
	for _, field := range created.Fields {
		assert.NotEmpty(t, field.ID)
	}
	assert.Equal(t, f.agentAID, created.CreatedBy)
}

func TestFormService_GetPublished_DraftReadsAsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.services.FormService.Create(ctx, f.agentA, f.agentPerms, draftForm())
	require.NoError(t, err)

	_, err = f.services.FormService.GetPublished(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	created.Status = models.FormPublished
	published, err := f.services.FormService.Update(ctx, f.agentA, f.agentPerms, created)
	require.NoError(t, err)

	got, err := f.services.FormService.GetPublished(ctx, published.ID)
	require.NoError(t, err)
	assert.Equal(t, published.ID, got.ID)

	// Archiving hides it again.
	got.Status = models.FormArchived
	_, err = f.services.FormService.Update(ctx, f.agentA, f.agentPerms, got)
	require.NoError(t, err)
	_, err = f.services.FormService.GetPublished(ctx, published.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func publishForm(t *testing.T, f *fixture) models.DigitalForm {
	t.Helper()
	ctx := context.Background()

	created, err := f.services.FormService.Create(ctx, f.agentA, f.agentPerms, draftForm())
	require.NoError(t, err)
	created.Status = models.FormPublished
	published, err := f.services.FormService.Update(ctx, f.agentA, f.agentPerms, created)
	require.NoError(t, err)
	return published
}

func TestFormService_Submit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	form := publishForm(t, f)

	nameField := form.Fields[0].ID
	yieldField := form.Fields[1].ID

	sub, err := f.services.FormService.Submit(ctx, form.ID, models.SubmitFormRequest{
		Responses: map[string]string{
			nameField:  "Ravi Kumar",
			yieldField: "4.2",
		},
		SubmittedBy: "Ravi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, form.ID, sub.FormID)
	assert.False(t, sub.SubmittedAt.IsZero())

	subs, err := f.services.FormService.Submissions(ctx, f.agentA, f.agentPerms, form.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, sub.ID, subs[0].ID)
}

func TestFormService_Submit_ValidationFailureWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	form := publishForm(t, f)

	yieldField := form.Fields[1].ID

	// Required name missing.
	_, err := f.services.FormService.Submit(ctx, form.ID, models.SubmitFormRequest{
		Responses: map[string]string{yieldField: "not a number"},
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	subs, err := store.Load[models.FormSubmission](ctx, f.store, models.FormSubmission{}.CollectionKey())
	require.NoError(t, err)
	assert.Empty(t, subs.Items)
}

func TestFormService_Submit_UnpublishedForm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.services.FormService.Create(ctx, f.agentA, f.agentPerms, draftForm())
	require.NoError(t, err)

	_, err = f.services.FormService.Submit(ctx, created.ID, models.SubmitFormRequest{
		Responses: map[string]string{created.Fields[0].ID: "x"},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFormService_AssignedUserSeesForm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	form := draftForm()
	form.AssignedUserIDs = []string{f.agentBID}
	created, err := f.services.FormService.Create(ctx, f.agentA, f.agentPerms, form)
	require.NoError(t, err)

	// B neither created nor owns the form but is on the assignment list.
	got, err := f.services.FormService.Get(ctx, f.agentB, f.agentPerms, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	listed, err := f.services.FormService.List(ctx, f.agentB, f.agentPerms, "")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestFormService_UnrelatedAgentCannotSeeForm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.services.FormService.Create(ctx, f.agentA, f.agentPerms, draftForm())
	require.NoError(t, err)

	_, err = f.services.FormService.Get(ctx, f.agentB, f.agentPerms, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFormService_Delete_DropsSubmissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	form := publishForm(t, f)

	_, err := f.services.FormService.Submit(ctx, form.ID, models.SubmitFormRequest{
		Responses: map[string]string{form.Fields[0].ID: "Ravi"},
	})
	require.NoError(t, err)

	require.NoError(t, f.services.FormService.Delete(ctx, f.agentA, f.agentPerms, form.ID))

	subs, err := store.Load[models.FormSubmission](ctx, f.store, models.FormSubmission{}.CollectionKey())
	require.NoError(t, err)
	assert.Empty(t, subs.Items)
}

func TestFormService_Create_Invalid(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.FormService.Create(context.Background(), f.agentA, f.agentPerms, models.DigitalForm{Title: "No fields"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestFormService_Create_Denied(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.FormService.Create(context.Background(), f.agentA, policy.PermissionSet{}, draftForm())
	assert.ErrorIs(t, err, policy.ErrPermissionDenied)
}
