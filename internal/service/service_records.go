// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/policy"
	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/internal/utils"
	"github.com/agrodesk/agrodesk/internal/validators"
	"github.com/agrodesk/agrodesk/models"
)

// recordTraits binds the generic record service to one concrete record
// type: its collection key, permission resource, id prefix, and the three
// type-specific operations the generic code cannot express.
type recordTraits[T policy.Owned] struct {
	collection string
	resource   models.Resource
	idPrefix   string

	// id extracts the record's identifier.
	id func(T) string

	// searchable lists the field values matched by substring search.
	searchable func(T) []string

	// onCreate stamps a new record with its server-assigned id, the
	// creator-derived ownership, and creation timestamps.
	onCreate func(record T, id string, owner models.Ownership, now time.Time) T

	// onUpdate merges an incoming record into the stored one. Identity,
	// ownership, and creation time always come from the stored record.
	onUpdate func(stored, incoming T, now time.Time) T
}

// recordService is the shared implementation of RecordService. All four
// operator-facing record types (clients, farmers, tasks, complaints) run
// through this one code path so the visibility filter and mutation guard
// have a single evaluation point per operation.
type recordService[T policy.Owned] struct {
	store     store.CollectionStore
	validator validators.Validator
	traits    recordTraits[T]

	logger *logger.Logger
}

func newRecordService[T policy.Owned](cs store.CollectionStore, validator validators.Validator, traits recordTraits[T], logger *logger.Logger) RecordService[T] {
	return &recordService[T]{
		store:     cs,
		validator: validator,
		traits:    traits,
		logger:    logger,
	}
}

func (s *recordService[T]) List(ctx context.Context, principal models.Principal, perms policy.PermissionSet, search string) ([]T, error) {
	if !principal.IsAdmin && !perms.HasAction(s.traits.resource, models.ActionRead) {
		return nil, policy.ErrPermissionDenied
	}

	rec, err := store.Load[T](ctx, s.store, s.traits.collection)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.traits.collection, err)
	}

	visible := policy.Visible(rec.Items, principal, perms, s.traits.resource)
	if search == "" {
		return visible, nil
	}

	return s.search(visible, search), nil
}

// search keeps the records whose searchable fields contain term, compared
// case-insensitively. Called strictly after the visibility filter.
func (s *recordService[T]) search(records []T, term string) []T {
	term = strings.ToLower(term)
	out := make([]T, 0, len(records))
	for _, r := range records {
		for _, field := range s.traits.searchable(r) {
			if strings.Contains(strings.ToLower(field), term) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func (s *recordService[T]) Get(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) (T, error) {
	var zero T

	if !principal.IsAdmin && !perms.HasAction(s.traits.resource, models.ActionRead) {
		return zero, policy.ErrPermissionDenied
	}

	rec, err := store.Load[T](ctx, s.store, s.traits.collection)
	if err != nil {
		return zero, fmt.Errorf("loading %s: %w", s.traits.collection, err)
	}

	for _, r := range rec.Items {
		if s.traits.id(r) != id {
			continue
		}
		// Out-of-scope records read as not found, not as forbidden, so
		// their existence is not leaked.
		if !policy.CanSee(r, principal, perms, s.traits.resource) {
			return zero, ErrNotFound
		}
		return r, nil
	}

	return zero, ErrNotFound
}

func (s *recordService[T]) Create(ctx context.Context, principal models.Principal, perms policy.PermissionSet, record T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	if err := policy.AllowCreate(principal, perms, s.traits.resource); err != nil {
		return zero, err
	}

	now := time.Now().UTC()
	owner := models.Ownership{CreatedBy: principal.UserID, AssignedUserID: principal.UserID}
	created := s.traits.onCreate(record, utils.NewRecordID(s.traits.idPrefix), owner, now)

	// Validation runs after stamping so type-specific defaults (initial
	// status, priority) are in place.
	if err := s.validator.Validate(ctx, created); err != nil {
		log.Err(err).Str("collection", s.traits.collection).Msg("record validation failed")
		return zero, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	rec, err := store.Load[T](ctx, s.store, s.traits.collection)
	if err != nil {
		return zero, fmt.Errorf("loading %s: %w", s.traits.collection, err)
	}

	rec.Items = append(rec.Items, created)
	if err := store.Save(ctx, s.store, s.traits.collection, rec); err != nil {
		return zero, err
	}

	return created, nil
}

func (s *recordService[T]) Update(ctx context.Context, principal models.Principal, perms policy.PermissionSet, record T) (T, error) {
	log := logger.FromContext(ctx)
	var zero T

	if err := s.validator.Validate(ctx, record); err != nil {
		log.Err(err).Str("collection", s.traits.collection).Msg("record validation failed")
		return zero, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	rec, err := store.Load[T](ctx, s.store, s.traits.collection)
	if err != nil {
		return zero, fmt.Errorf("loading %s: %w", s.traits.collection, err)
	}

	id := s.traits.id(record)
	for i, stored := range rec.Items {
		if s.traits.id(stored) != id {
			continue
		}
		if !policy.CanSee(stored, principal, perms, s.traits.resource) {
			return zero, ErrNotFound
		}
		if err := policy.AllowMutate(stored, principal, perms, s.traits.resource, models.ActionUpdate); err != nil {
			return zero, err
		}

		updated := s.traits.onUpdate(stored, record, time.Now().UTC())
		rec.Items[i] = updated
		if err := store.Save(ctx, s.store, s.traits.collection, rec); err != nil {
			return zero, err
		}
		return updated, nil
	}

	return zero, ErrNotFound
}

func (s *recordService[T]) Delete(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) error {
	rec, err := store.Load[T](ctx, s.store, s.traits.collection)
	if err != nil {
		return fmt.Errorf("loading %s: %w", s.traits.collection, err)
	}

	for i, stored := range rec.Items {
		if s.traits.id(stored) != id {
			continue
		}
		if !policy.CanSee(stored, principal, perms, s.traits.resource) {
			return ErrNotFound
		}
		if err := policy.AllowMutate(stored, principal, perms, s.traits.resource, models.ActionDelete); err != nil {
			return err
		}

		rec.Items = append(rec.Items[:i], rec.Items[i+1:]...)
		return store.Save(ctx, s.store, s.traits.collection, rec)
	}

	return ErrNotFound
}
