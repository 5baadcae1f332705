package service

import (
	"context"
	"time"

	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/policy"
	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/internal/utils"
	"github.com/agrodesk/agrodesk/models"
)

type roleService struct {
	store store.CollectionStore

	logger *logger.Logger
}

// NewRoleService constructs the role management service. Role records carry
// no ownership; flat role permissions decide access, and permission entries
// outside the closed enum are kept in storage but ignored at resolution
// time.
func NewRoleService(cs store.CollectionStore, logger *logger.Logger) RoleService {
	return &roleService{store: cs, logger: logger}
}

func (s *roleService) List(ctx context.Context, principal models.Principal, perms policy.PermissionSet) ([]models.Role, error) {
	if !principal.IsAdmin && !perms.HasAction(models.ResourceRole, models.ActionRead) {
		return nil, policy.ErrPermissionDenied
	}

	roles, err := store.Load[models.Role](ctx, s.store, models.Role{}.CollectionKey())
	if err != nil {
		return nil, err
	}
	return roles.Items, nil
}

func (s *roleService) Get(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) (models.Role, error) {
	if !principal.IsAdmin && !perms.HasAction(models.ResourceRole, models.ActionRead) {
		return models.Role{}, policy.ErrPermissionDenied
	}

	roles, err := store.Load[models.Role](ctx, s.store, models.Role{}.CollectionKey())
	if err != nil {
		return models.Role{}, err
	}

	for _, r := range roles.Items {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Role{}, ErrNotFound
}

func (s *roleService) Create(ctx context.Context, principal models.Principal, perms policy.PermissionSet, role models.Role) (models.Role, error) {
	if err := policy.AllowCreate(principal, perms, models.ResourceRole); err != nil {
		return models.Role{}, err
	}
	if role.Name == "" {
		return models.Role{}, ErrInvalidDataProvided
	}

	roles, err := store.Load[models.Role](ctx, s.store, models.Role{}.CollectionKey())
	if err != nil {
		return models.Role{}, err
	}

	now := time.Now().UTC()
	role.ID = utils.NewRecordID("role")
	role.CreatedAt = now
	role.UpdatedAt = now

	roles.Items = append(roles.Items, role)
	if err := store.Save(ctx, s.store, models.Role{}.CollectionKey(), roles); err != nil {
		return models.Role{}, err
	}
	return role, nil
}

func (s *roleService) Update(ctx context.Context, principal models.Principal, perms policy.PermissionSet, role models.Role) (models.Role, error) {
	if !perms.HasAction(models.ResourceRole, models.ActionUpdate) {
		return models.Role{}, policy.ErrPermissionDenied
	}
	if role.Name == "" {
		return models.Role{}, ErrInvalidDataProvided
	}

	roles, err := store.Load[models.Role](ctx, s.store, models.Role{}.CollectionKey())
	if err != nil {
		return models.Role{}, err
	}

	for i, stored := range roles.Items {
		if stored.ID != role.ID {
			continue
		}

		role.CreatedAt = stored.CreatedAt
		role.UpdatedAt = time.Now().UTC()
		roles.Items[i] = role

		if err := store.Save(ctx, s.store, models.Role{}.CollectionKey(), roles); err != nil {
			return models.Role{}, err
		}
		return role, nil
	}

	return models.Role{}, ErrNotFound
}

// Delete removes a role that no user currently holds. Deleting a role still
// referenced by user accounts would strand those accounts without a
// permission set, so it fails with ErrRoleInUse.
func (s *roleService) Delete(ctx context.Context, principal models.Principal, perms policy.PermissionSet, id string) error {
	if !perms.HasAction(models.ResourceRole, models.ActionDelete) {
		return policy.ErrPermissionDenied
	}

	users, err := store.Load[models.User](ctx, s.store, models.User{}.CollectionKey())
	if err != nil {
		return err
	}
	for _, u := range users.Items {
		if u.RoleID == id {
			return ErrRoleInUse
		}
	}

	roles, err := store.Load[models.Role](ctx, s.store, models.Role{}.CollectionKey())
	if err != nil {
		return err
	}

	for i, r := range roles.Items {
		if r.ID == id {
			roles.Items = append(roles.Items[:i], roles.Items[i+1:]...)
			return store.Save(ctx, s.store, models.Role{}.CollectionKey(), roles)
		}
	}

	return ErrNotFound
}
