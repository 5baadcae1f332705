// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agrodesk/agrodesk/internal/crypto"
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/policy"
	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/internal/utils"
	"github.com/agrodesk/agrodesk/internal/validators"
	"github.com/agrodesk/agrodesk/models"
)

type userService struct {
	store     store.CollectionStore
	hasher    crypto.PasswordHasher
	validator validators.Validator

	logger *logger.Logger
}

// NewUserService constructs the user account service. User records carry no
// ownership relation; access is decided by flat user permissions, the admin
// flag, and the self-protection rule.
func NewUserService(cs store.CollectionStore, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		store:     cs,
		hasher:    hasher,
		validator: validator,
		logger:    logger,
	}
}

func (s *userService) List(ctx context.Context, principal models.Principal, perms policy.PermissionSet, search string) ([]models.User, error) {
	if !principal.IsAdmin && !perms.HasAction(models.ResourceUser, models.ActionRead) {
		return nil, policy.ErrPermissionDenied
	}

	users, err := store.Load[models.User](ctx, s.store, models.User{}.CollectionKey())
	if err != nil {
		return nil, err
	}

	if search == "" {
		return users.Items, nil
	}

	term := strings.ToLower(search)
	out := make([]models.User, 0, len(users.Items))
	for _, u := range users.Items {
		if strings.Contains(strings.ToLower(u.Name), term) || strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *userService) Get(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) (models.User, error) {
	if !principal.IsAdmin && !perms.HasAction(models.ResourceUser, models.ActionRead) {
		return models.User{}, policy.ErrPermissionDenied
	}

	users, err := store.Load[models.User](ctx, s.store, models.User{}.CollectionKey())
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users.Items {
		if u.ID == id {
			return u, nil
		}
	}

	return models.User{}, ErrNotFound
}

// Create adds a new operator account. Email uniqueness is enforced
// case-insensitively; the plaintext password is hashed before the record is
// stored.
func (s *userService) Create(ctx context.Context, principal models.Principal, perms policy.PermissionSet, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := policy.AllowCreate(principal, perms, models.ResourceUser); err != nil {
		return models.User{}, err
	}
	if password == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyPassword)
	}

	if user.Status == "" {
		user.Status = models.UserActive
	}
	if err := s.validator.Validate(ctx, user); err != nil {
		log.Err(err).Msg("user validation failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	users, err := store.Load[models.User](ctx, s.store, models.User{}.CollectionKey())
	if err != nil {
		return models.User{}, err
	}

	for _, existing := range users.Items {
		if strings.EqualFold(existing.Email, user.Email) {
			return models.User{}, ErrEmailTaken
		}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user.ID = utils.NewRecordID("user")
	user.PasswordHash = hash
	user.CreatedAt = now
	user.UpdatedAt = now

	users.Items = append(users.Items, user)
	if err := store.Save(ctx, s.store, models.User{}.CollectionKey(), users); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Update rewrites an account's profile fields. The stored password digest
// and creation time are preserved. Deactivation (Status change to inactive)
// runs through the self-protection guard like deletion does.
func (s *userService) Update(ctx context.Context, principal models.Principal, perms policy.PermissionSet, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if !perms.HasAction(models.ResourceUser, models.ActionUpdate) {
		return models.User{}, policy.ErrPermissionDenied
	}
	if err := s.validator.Validate(ctx, user); err != nil {
		log.Err(err).Msg("user validation failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	users, err := store.Load[models.User](ctx, s.store, models.User{}.CollectionKey())
	if err != nil {
		return models.User{}, err
	}

	for i, stored := range users.Items {
		if stored.ID != user.ID {
			continue
		}

		if user.Status == models.UserInactive && stored.Status == models.UserActive {
			if err := policy.GuardSelf(principal, stored.ID); err != nil {
				return models.User{}, err
			}
		}
		for _, other := range users.Items {
			if other.ID != user.ID && strings.EqualFold(other.Email, user.Email) {
				return models.User{}, ErrEmailTaken
			}
		}

		user.PasswordHash = stored.PasswordHash
		user.CreatedAt = stored.CreatedAt
		user.UpdatedAt = time.Now().UTC()
		users.Items[i] = user

		if err := store.Save(ctx, s.store, models.User{}.CollectionKey(), users); err != nil {
			return models.User{}, err
		}
		return user, nil
	}

	return models.User{}, ErrNotFound
}

// Delete removes a user that has no dependent records. The dependency scan
// runs live at delete time; if anything still references the user the call
// fails with ErrHasDependents and the caller must pick a reassignment
// target or confirm the orphaning path.
func (s *userService) Delete(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) error {
	if !perms.HasAction(models.ResourceUser, models.ActionDelete) {
		return policy.ErrPermissionDenied
	}
	if err := policy.GuardSelf(principal, id); err != nil {
		return err
	}

	report, err := s.scan(ctx, id)
	if err != nil {
		return err
	}
	if report.HasDependents() {
		return fmt.Errorf("%w: %d records", ErrHasDependents, report.Count)
	}

	return s.removeUser(ctx, id)
}

// DependencyScan returns every client and farmer record still referencing
// the user through either ownership field.
func (s *userService) DependencyScan(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) (models.DependencyReport, error) {
	if !perms.HasAction(models.ResourceUser, models.ActionDelete) {
		return models.DependencyReport{}, policy.ErrPermissionDenied
	}

	return s.scan(ctx, id)
}

func (s *userService) scan(ctx context.Context, id string) (models.DependencyReport, error) {
	report := models.DependencyReport{UserID: id}

	clients, err := store.Load[models.Client](ctx, s.store, models.Client{}.CollectionKey())
	if err != nil {
		return models.DependencyReport{}, err
	}
	for _, c := range clients.Items {
		if c.Ownership.References(id) {
			report.Clients = append(report.Clients, c)
		}
	}

	farmers, err := store.Load[models.Farmer](ctx, s.store, models.Farmer{}.CollectionKey())
	if err != nil {
		return models.DependencyReport{}, err
	}
	for _, f := range farmers.Items {
		if f.Ownership.References(id) {
			report.Farmers = append(report.Farmers, f)
		}
	}

	report.Count = len(report.Clients) + len(report.Farmers)
	return report, nil
}

// ReassignAndDelete rewrites ownership of every dependent record to the
// request target and then deletes the user.
//
// Collections are rewritten one at a time, each write confirmed before the
// next begins; the user record is deleted last. A failure after the first
// successful write surfaces ErrReassignIncomplete naming which collections
// were and were not rewritten, and leaves the user in place so the
// operation can be retried.
func (s *userService) ReassignAndDelete(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string, req models.ReassignRequest) error {
	log := logger.FromContext(ctx)

	if !perms.HasAction(models.ResourceUser, models.ActionDelete) {
		return policy.ErrPermissionDenied
	}
	if err := policy.GuardSelf(principal, id); err != nil {
		return err
	}
	if err := s.checkReassignTarget(ctx, id, req.ToUserID); err != nil {
		return err
	}

	var rewritten []string
	steps := []struct {
		collection string
		rewrite    func(context.Context, string, string) (int, error)
	}{
		{models.Client{}.CollectionKey(), s.reassignClients},
		{models.Farmer{}.CollectionKey(), s.reassignFarmers},
	}

	for i, step := range steps {
		n, err := step.rewrite(ctx, id, req.ToUserID)
		if err != nil {
			if len(rewritten) > 0 {
				remaining := make([]string, 0, len(steps)-i)
				for _, rest := range steps[i:] {
					remaining = append(remaining, rest.collection)
				}
				log.Err(err).
					Strs("rewritten", rewritten).
					Strs("remaining", remaining).
					Msg("reassignment stopped mid-sequence")
				return fmt.Errorf("%w: rewrote %s; failed on %s: %w",
					ErrReassignIncomplete, strings.Join(rewritten, ", "), step.collection, err)
			}
			return err
		}
		if n > 0 {
			rewritten = append(rewritten, step.collection)
		}
	}

	if err := s.removeUser(ctx, id); err != nil {
		if len(rewritten) > 0 {
			return fmt.Errorf("%w: rewrote %s; failed deleting user: %w",
				ErrReassignIncomplete, strings.Join(rewritten, ", "), err)
		}
		return err
	}

	log.Info().Str("from", id).Str("to", req.ToUserID).Strs("rewritten", rewritten).Msg("user reassigned and deleted")
	return nil
}

// DeleteOrphaning clears ownership on every dependent record and deletes
// the user. The request must set Orphan and repeat the user id in Confirm;
// anything else rejects so this path can never be taken by accident.
//
// Like ReassignAndDelete, the collections are rewritten one at a time. A
// failure after the first successful write surfaces ErrOrphanIncomplete
// naming what was cleared, with the user left in place for a retry.
func (s *userService) DeleteOrphaning(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string, req models.DeleteUserRequest) error {
	log := logger.FromContext(ctx)

	if !perms.HasAction(models.ResourceUser, models.ActionDelete) {
		return policy.ErrPermissionDenied
	}
	if err := policy.GuardSelf(principal, id); err != nil {
		return err
	}
	if !req.Orphan || req.Confirm != id {
		return ErrOrphanNotConfirmed
	}

	var cleared []string
	steps := []struct {
		collection string
		orphan     func(context.Context, string) (int, error)
	}{
		{models.Client{}.CollectionKey(), s.orphanClients},
		{models.Farmer{}.CollectionKey(), s.orphanFarmers},
	}

	for _, step := range steps {
		n, err := step.orphan(ctx, id)
		if err != nil {
			if len(cleared) > 0 {
				return fmt.Errorf("%w: cleared %s; failed on %s: %w",
					ErrOrphanIncomplete, strings.Join(cleared, ", "), step.collection, err)
			}
			return err
		}
		if n > 0 {
			cleared = append(cleared, step.collection)
		}
	}

	if err := s.removeUser(ctx, id); err != nil {
		if len(cleared) > 0 {
			return fmt.Errorf("%w: cleared %s; failed deleting user: %w",
				ErrOrphanIncomplete, strings.Join(cleared, ", "), err)
		}
		return err
	}

	log.Warn().Str("user_id", id).Msg("user deleted, dependent records orphaned")
	return nil
}

// checkReassignTarget enforces the target rules: must differ from the
// deleted user, must exist, and must be active.
func (s *userService) checkReassignTarget(ctx context.Context, fromID, toID string) error {
	if toID == "" || toID == fromID {
		return ErrReassignTargetInvalid
	}

	users, err := store.Load[models.User](ctx, s.store, models.User{}.CollectionKey())
	if err != nil {
		return err
	}

	for _, u := range users.Items {
		if u.ID == toID {
			if !u.IsActive() {
				return ErrReassignTargetInvalid
			}
			return nil
		}
	}

	return ErrReassignTargetInvalid
}

func (s *userService) reassignClients(ctx context.Context, fromID, toID string) (int, error) {
	clients, err := store.Load[models.Client](ctx, s.store, models.Client{}.CollectionKey())
	if err != nil {
		return 0, err
	}

	changed := 0
	now := time.Now().UTC()
	for i, c := range clients.Items {
		if next, ok := c.Ownership.Reassign(fromID, toID); ok {
			clients.Items[i].Ownership = next
			clients.Items[i].UpdatedAt = now
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	return changed, store.Save(ctx, s.store, models.Client{}.CollectionKey(), clients)
}

func (s *userService) reassignFarmers(ctx context.Context, fromID, toID string) (int, error) {
	farmers, err := store.Load[models.Farmer](ctx, s.store, models.Farmer{}.CollectionKey())
	if err != nil {
		return 0, err
	}

	changed := 0
	now := time.Now().UTC()
	for i, f := range farmers.Items {
		if next, ok := f.Ownership.Reassign(fromID, toID); ok {
			farmers.Items[i].Ownership = next
			farmers.Items[i].UpdatedAt = now
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	return changed, store.Save(ctx, s.store, models.Farmer{}.CollectionKey(), farmers)
}

func (s *userService) orphanClients(ctx context.Context, id string) (int, error) {
	clients, err := store.Load[models.Client](ctx, s.store, models.Client{}.CollectionKey())
	if err != nil {
		return 0, err
	}

	changed := 0
	now := time.Now().UTC()
	for i, c := range clients.Items {
		if next, ok := c.Ownership.Orphan(id); ok {
			clients.Items[i].Ownership = next
			clients.Items[i].UpdatedAt = now
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	return changed, store.Save(ctx, s.store, models.Client{}.CollectionKey(), clients)
}

func (s *userService) orphanFarmers(ctx context.Context, id string) (int, error) {
	farmers, err := store.Load[models.Farmer](ctx, s.store, models.Farmer{}.CollectionKey())
	if err != nil {
		return 0, err
	}

	changed := 0
	now := time.Now().UTC()
	for i, f := range farmers.Items {
		if next, ok := f.Ownership.Orphan(id); ok {
			farmers.Items[i].Ownership = next
			farmers.Items[i].UpdatedAt = now
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	return changed, store.Save(ctx, s.store, models.Farmer{}.CollectionKey(), farmers)
}

func (s *userService) removeUser(ctx context.Context, id string) error {
	users, err := store.Load[models.User](ctx, s.store, models.User{}.CollectionKey())
	if err != nil {
		return err
	}

	for i, u := range users.Items {
		if u.ID == id {
			users.Items = append(users.Items[:i], users.Items[i+1:]...)
			return store.Save(ctx, s.store, models.User{}.CollectionKey(), users)
		}
	}

	return ErrNotFound
}
