// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/crypto"
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/internal/utils"
	"github.com/agrodesk/agrodesk/models"
)

const (
	defaultAdminEmail    = "admin@agrodesk.local"
	defaultAdminPassword = "change-me"
)

// Seed bootstraps the baseline roles and the first administrator account.
// It runs only when the users collection is empty; every later start leaves
// the store untouched, so a deleted default role or a changed admin
// password is never resurrected.
func Seed(ctx context.Context, cs store.CollectionStore, hasher crypto.PasswordHasher, cfg config.App) error {
	log := logger.FromContext(ctx)

	users, err := store.Load[models.User](ctx, cs, models.User{}.CollectionKey())
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(users.Items) > 0 {
		return nil
	}

	now := time.Now().UTC()

	adminRole := models.Role{
		ID:          utils.NewRecordID("role"),
		Name:        "Administrator",
		Description: "Unrestricted access to every record and setting",
		Permissions: models.AllPermissions(),
		IsAdmin:     true,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	agentRole := models.Role{
		ID:          utils.NewRecordID("role"),
		Name:        "Agent",
		Description: "Field operator scoped to own records",
		Permissions: agentPermissions(),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	roles, err := store.Load[models.Role](ctx, cs, models.Role{}.CollectionKey())
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	roles.Items = append(roles.Items, adminRole, agentRole)
	if err := store.Save(ctx, cs, models.Role{}.CollectionKey(), roles); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}

	email := cfg.SeedAdminEmail
	if email == "" {
		email = defaultAdminEmail
	}
	password := cfg.SeedAdminPassword
	if password == "" {
		password = defaultAdminPassword
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("seed admin password: %w", err)
	}

	admin := models.User{
		ID:           utils.NewRecordID("user"),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		RoleID:       adminRole.ID,
		Status:       models.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	users.Items = append(users.Items, admin)
	if err := store.Save(ctx, cs, models.User{}.CollectionKey(), users); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	log.Info().Str("email", email).Msg("seeded baseline roles and administrator account")
	return nil
}

// agentPermissions is the scoped default grant set: full CRUD on field
// records, read-only access to users for assignment pickers, no role or
// user management.
func agentPermissions() []models.Permission {
	resources := []models.Resource{
		models.ResourceClient,
		models.ResourceFarmer,
		models.ResourceTask,
		models.ResourceComplaint,
		models.ResourceForm,
	}

	perms := make([]models.Permission, 0, len(resources)*4+1)
	for _, r := range resources {
		perms = append(perms,
			models.Perm(r, models.ActionRead),
			models.Perm(r, models.ActionCreate),
			models.Perm(r, models.ActionUpdate),
			models.Perm(r, models.ActionDelete),
		)
	}
	perms = append(perms, models.Perm(models.ResourceUser, models.ActionRead))
	return perms
}
