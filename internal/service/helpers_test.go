package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/crypto"
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/policy"
	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/models"
)

// fixture wires the full service aggregate onto a fresh in-memory store
// with two pre-created roles and three users: an administrator and two
// agents with identical scoped permissions.
type fixture struct {
	store    store.CollectionStore
	services *Services

	admin  models.Principal
	agentA models.Principal
	agentB models.Principal

	adminPerms policy.PermissionSet
	agentPerms policy.PermissionSet

	adminID  string
	agentAID string
	agentBID string

	agentRoleID string
	adminRoleID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	cs := store.NewMemoryStore()
	t.Cleanup(func() { _ = cs.Close() })

	cfg := config.ServerConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "agrodesk-test",
			TokenDuration: time.Hour,
		},
	}

	now := time.Now().UTC()
	adminRole := models.Role{
		ID: "role-admin", Name: "Administrator",
		Permissions: models.AllPermissions(),
		IsAdmin:     true, IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	}
	agentRole := models.Role{
		ID: "role-agent", Name: "Agent",
		Permissions: agentPermissions(),
		IsActive:    true,
		CreatedAt:   now, UpdatedAt: now,
	}

	roles := store.Records[models.Role]{Items: []models.Role{adminRole, agentRole}}
	require.NoError(t, store.Save(ctx, cs, models.Role{}.CollectionKey(), roles))

	hasher := crypto.NewPasswordHasher()
	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)

	users := store.Records[models.User]{Items: []models.User{
		{ID: "user-admin", Name: "Admin", Email: "admin@agrodesk.local", PasswordHash: hash, RoleID: adminRole.ID, Status: models.UserActive, CreatedAt: now, UpdatedAt: now},
		{ID: "user-a", Name: "Agent A", Email: "a@agrodesk.local", PasswordHash: hash, RoleID: agentRole.ID, Status: models.UserActive, CreatedAt: now, UpdatedAt: now},
		{ID: "user-b", Name: "Agent B", Email: "b@agrodesk.local", PasswordHash: hash, RoleID: agentRole.ID, Status: models.UserActive, CreatedAt: now, UpdatedAt: now},
	}}
	require.NoError(t, store.Save(ctx, cs, models.User{}.CollectionKey(), users))

	return &fixture{
		store:    cs,
		services: NewServices(cs, cfg, logger.Nop()),

		admin:  models.Principal{UserID: "user-admin", IsAdmin: true},
		agentA: models.Principal{UserID: "user-a"},
		agentB: models.Principal{UserID: "user-b"},

		adminPerms: policy.Resolve(adminRole),
		agentPerms: policy.Resolve(agentRole),

		adminID:  "user-admin",
		agentAID: "user-a",
		agentBID: "user-b",

		agentRoleID: agentRole.ID,
		adminRoleID: adminRole.ID,
	}
}

// seedClients writes clients owned by the given users, one per id pair.
func (f *fixture) seedClients(t *testing.T, clients ...models.Client) {
	t.Helper()
	ctx := context.Background()

	rec, err := store.Load[models.Client](ctx, f.store, models.Client{}.CollectionKey())
	require.NoError(t, err)
	rec.Items = append(rec.Items, clients...)
	require.NoError(t, store.Save(ctx, f.store, models.Client{}.CollectionKey(), rec))
}

func (f *fixture) seedFarmers(t *testing.T, farmers ...models.Farmer) {
	t.Helper()
	ctx := context.Background()

	rec, err := store.Load[models.Farmer](ctx, f.store, models.Farmer{}.CollectionKey())
	require.NoError(t, err)
	rec.Items = append(rec.Items, farmers...)
	require.NoError(t, store.Save(ctx, f.store, models.Farmer{}.CollectionKey(), rec))
}

func testClient(id, name string, owner models.Ownership) models.Client {
	return models.Client{
		ID:        id,
		Name:      name,
		Type:      models.ClientIndividual,
		Status:    models.RecordActive,
		Ownership: owner,
	}
}

func testFarmer(id, name string, owner models.Ownership) models.Farmer {
	return models.Farmer{
		ID:        id,
		Name:      name,
		Status:    models.RecordActive,
		Ownership: owner,
	}
}
