// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/policy"
	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/internal/utils"
	"github.com/agrodesk/agrodesk/internal/validators"
	"github.com/agrodesk/agrodesk/models"
)

type formService struct {
	store     store.CollectionStore
	validator validators.Validator

	logger *logger.Logger
}

// NewFormService constructs the digital form service. Forms extend the
// shared ownership relation with an assignment list: a user named in
// AssignedUserIDs sees the form even without owning it.
func NewFormService(cs store.CollectionStore, validator validators.Validator, logger *logger.Logger) FormService {
	return &formService{
		store:     cs,
		validator: validator,
		logger:    logger,
	}
}

// canSeeForm extends the policy scope check with the form's assignment
// list.
func canSeeForm(form models.DigitalForm, principal models.Principal, perms policy.PermissionSet) bool {
	if policy.CanSee(form, principal, perms, models.ResourceForm) {
		return true
	}
	return principal.UserID != "" && slices.Contains(form.AssignedUserIDs, principal.UserID)
}

func (s *formService) List(ctx context.Context, principal models.Principal, perms policy.PermissionSet, search string) ([]models.DigitalForm, error) {
	if !principal.IsAdmin && !perms.HasAction(models.ResourceForm, models.ActionRead) {
		return nil, policy.ErrPermissionDenied
	}

	forms, err := store.Load[models.DigitalForm](ctx, s.store, models.DigitalForm{}.CollectionKey())
	if err != nil {
		return nil, err
	}

	visible := make([]models.DigitalForm, 0, len(forms.Items))
	for _, f := range forms.Items {
		if canSeeForm(f, principal, perms) {
			visible = append(visible, f)
		}
	}

	if search == "" {
		return visible, nil
	}

	term := strings.ToLower(search)
	out := make([]models.DigitalForm, 0, len(visible))
	for _, f := range visible {
		if strings.Contains(strings.ToLower(f.Title), term) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *formService) Get(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) (models.DigitalForm, error) {
	if !principal.IsAdmin && !perms.HasAction(models.ResourceForm, models.ActionRead) {
		return models.DigitalForm{}, policy.ErrPermissionDenied
	}

	form, ok, err := s.find(ctx, id)
	if err != nil {
		return models.DigitalForm{}, err
	}
	if !ok || !canSeeForm(form, principal, perms) {
		return models.DigitalForm{}, ErrNotFound
	}
	return form, nil
}

func (s *formService) Create(ctx context.Context, principal models.Principal, perms policy.PermissionSet, form models.DigitalForm) (models.DigitalForm, error) {
	log := logger.FromContext(ctx)

	if err := policy.AllowCreate(principal, perms, models.ResourceForm); err != nil {
		return models.DigitalForm{}, err
	}

	if form.Status == "" {
		form.Status = models.FormDraft
	}
	if err := s.validator.Validate(ctx, form); err != nil {
		log.Err(err).Msg("form validation failed")
		return models.DigitalForm{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	forms, err := store.Load[models.DigitalForm](ctx, s.store, models.DigitalForm{}.CollectionKey())
	if err != nil {
		return models.DigitalForm{}, err
	}

	now := time.Now().UTC()
	form.ID = utils.NewRecordID("form")
	form.Ownership = models.Ownership{CreatedBy: principal.UserID, AssignedUserID: principal.UserID}
	form.CreatedAt = now
	form.UpdatedAt = now
	for i := range form.Fields {
		if form.Fields[i].ID == "" {
			form.Fields[i].ID = utils.NewRecordID("field")
		}
	}

	forms.Items = append(forms.Items, form)
	if err := store.Save(ctx, s.store, models.DigitalForm{}.CollectionKey(), forms); err != nil {
		return models.DigitalForm{}, err
	}
	return form, nil
}

func (s *formService) Update(ctx context.Context, principal models.Principal, perms policy.PermissionSet, form models.DigitalForm) (models.DigitalForm, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, form); err != nil {
		log.Err(err).Msg("form validation failed")
		return models.DigitalForm{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	forms, err := store.Load[models.DigitalForm](ctx, s.store, models.DigitalForm{}.CollectionKey())
	if err != nil {
		return models.DigitalForm{}, err
	}

	for i, stored := range forms.Items {
		if stored.ID != form.ID {
			continue
		}
		if !canSeeForm(stored, principal, perms) {
			return models.DigitalForm{}, ErrNotFound
		}
		if err := policy.AllowMutate(stored, principal, perms, models.ResourceForm, models.ActionUpdate); err != nil {
			return models.DigitalForm{}, err
		}

		form.Ownership = stored.Ownership
		form.CreatedAt = stored.CreatedAt
		form.UpdatedAt = time.Now().UTC()
		for j := range form.Fields {
			if form.Fields[j].ID == "" {
				form.Fields[j].ID = utils.NewRecordID("field")
			}
		}
		forms.Items[i] = form

		if err := store.Save(ctx, s.store, models.DigitalForm{}.CollectionKey(), forms); err != nil {
			return models.DigitalForm{}, err
		}
		return form, nil
	}

	return models.DigitalForm{}, ErrNotFound
}

// Delete removes a form along with its stored submissions. Submissions have
// no standalone deletion path; the owning form's lifecycle is the only way
// they go away.
func (s *formService) Delete(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) error {
	forms, err := store.Load[models.DigitalForm](ctx, s.store, models.DigitalForm{}.CollectionKey())
	if err != nil {
		return err
	}

	for i, stored := range forms.Items {
		if stored.ID != id {
			continue
		}
		if !canSeeForm(stored, principal, perms) {
			return ErrNotFound
		}
		if err := policy.AllowMutate(stored, principal, perms, models.ResourceForm, models.ActionDelete); err != nil {
			return err
		}

		forms.Items = append(forms.Items[:i], forms.Items[i+1:]...)
		if err := store.Save(ctx, s.store, models.DigitalForm{}.CollectionKey(), forms); err != nil {
			return err
		}

		return s.dropSubmissions(ctx, id)
	}

	return ErrNotFound
}

// GetPublished serves the public endpoint: only published forms resolve,
// draft and archived ones read as not found.
func (s *formService) GetPublished(ctx context.Context, id string) (models.DigitalForm, error) {
	form, ok, err := s.find(ctx, id)
	if err != nil {
		return models.DigitalForm{}, err
	}
	if !ok || form.Status != models.FormPublished {
		return models.DigitalForm{}, ErrNotFound
	}
	return form, nil
}

// Submit validates req against the published form's schema and appends the
// submission. Nothing is written when validation fails.
func (s *formService) Submit(ctx context.Context, formID string, req models.SubmitFormRequest) (models.FormSubmission, error) {
	log := logger.FromContext(ctx)

	form, err := s.GetPublished(ctx, formID)
	if err != nil {
		return models.FormSubmission{}, err
	}

	if err := validators.ValidateSubmission(form, req.Responses); err != nil {
		log.Warn().Err(err).Str("form_id", formID).Msg("submission rejected")
		return models.FormSubmission{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	subs, err := store.Load[models.FormSubmission](ctx, s.store, models.FormSubmission{}.CollectionKey())
	if err != nil {
		return models.FormSubmission{}, err
	}

	submission := models.FormSubmission{
		ID:          utils.NewRecordID("submission"),
		FormID:      formID,
		Responses:   req.Responses,
		SubmittedBy: req.SubmittedBy,
		SubmittedAt: time.Now().UTC(),
	}

	subs.Items = append(subs.Items, submission)
	if err := store.Save(ctx, s.store, models.FormSubmission{}.CollectionKey(), subs); err != nil {
		return models.FormSubmission{}, err
	}
	return submission, nil
}

// Submissions lists the stored submissions of a form inside the principal's
// scope.
func (s *formService) Submissions(ctx context.Context, principal models.Principal, perms policy.PermissionSet, formID string) ([]models.FormSubmission, error) {
	if _, err := s.Get(ctx, principal, perms, formID); err != nil {
		return nil, err
	}

	subs, err := store.Load[models.FormSubmission](ctx, s.store, models.FormSubmission{}.CollectionKey())
	if err != nil {
		return nil, err
	}

	out := make([]models.FormSubmission, 0, len(subs.Items))
	for _, sub := range subs.Items {
		if sub.FormID == formID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *formService) find(ctx context.Context, id string) (models.DigitalForm, bool, error) {
	forms, err := store.Load[models.DigitalForm](ctx, s.store, models.DigitalForm{}.CollectionKey())
	if err != nil {
		return models.DigitalForm{}, false, err
	}

	for _, f := range forms.Items {
		if f.ID == id {
			return f, true, nil
		}
	}
	return models.DigitalForm{}, false, nil
}

func (s *formService) dropSubmissions(ctx context.Context, formID string) error {
	subs, err := store.Load[models.FormSubmission](ctx, s.store, models.FormSubmission{}.CollectionKey())
	if err != nil {
		return err
	}

	kept := subs.Items[:0]
	for _, sub := range subs.Items {
		if sub.FormID != formID {
			kept = append(kept, sub)
		}
	}
	if len(kept) == len(subs.Items) {
		return nil
	}

	subs.Items = kept
	return store.Save(ctx, s.store, models.FormSubmission{}.CollectionKey(), subs)
}
