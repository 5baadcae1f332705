package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/crypto"
	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/models"
)

func TestSeed_EmptyStore(t *testing.T) {
	ctx := context.Background()
	cs := store.NewMemoryStore()
	t.Cleanup(func() { _ = cs.Close() })

	cfg := config.App{
		SeedAdminEmail:    "boss@agrodesk.local",
		SeedAdminPassword: "bootstrap",
	}
	require.NoError(t, Seed(ctx, cs, crypto.NewPasswordHasher(), cfg))

	users, err := store.Load[models.User](ctx, cs, models.User{}.CollectionKey())
	require.NoError(t, err)
	require.Len(t, users.Items, 1)
	admin := users.Items[0]
	assert.Equal(t, "boss@agrodesk.local", admin.Email)
	assert.NotEmpty(t, admin.PasswordHash)
	assert.NotEqual(t, "bootstrap", admin.PasswordHash)

	roles, err := store.Load[models.Role](ctx, cs, models.Role{}.CollectionKey())
	require.NoError(t, err)
	require.Len(t, roles.Items, 2)

	var adminRole, agentRole models.Role
	for _, r := range roles.Items {
		switch r.Name {
		case "Administrator":
			adminRole = r
		case "Agent":
			agentRole = r
		}
	}
	assert.True(t, adminRole.IsAdmin)
	assert.Equal(t, adminRole.ID, admin.RoleID)
	assert.False(t, agentRole.IsAdmin)
	assert.NotEmpty(t, agentRole.Permissions)
}

func TestSeed_RunsOnlyWhenUsersEmpty(t *testing.T) {
	ctx := context.Background()
	cs := store.NewMemoryStore()
	t.Cleanup(func() { _ = cs.Close() })

	hasher := crypto.NewPasswordHasher()
	require.NoError(t, Seed(ctx, cs, hasher, config.App{}))

	usersBefore, err := store.Load[models.User](ctx, cs, models.User{}.CollectionKey())
	require.NoError(t, err)

	// Second run must not touch anything, even with different seed config.
	require.NoError(t, Seed(ctx, cs, hasher, config.App{SeedAdminEmail: "other@agrodesk.local"}))

	usersAfter, err := store.Load[models.User](ctx, cs, models.User{}.CollectionKey())
	require.NoError(t, err)
	assert.Equal(t, usersBefore.Items, usersAfter.Items)

	roles, err := store.Load[models.Role](ctx, cs, models.Role{}.CollectionKey())
	require.NoError(t, err)
	assert.Len(t, roles.Items, 2)
}

func TestSeed_SkipsWhenUsersExist(t *testing.T) {
	ctx := context.Background()
	cs := store.NewMemoryStore()
	t.Cleanup(func() { _ = cs.Close() })

	existing := store.Records[models.User]{Items: []models.User{{ID: "user-1", Name: "Existing", Email: "e@x.local", RoleID: "role-x", Status: models.UserActive}}}
	require.NoError(t, store.Save(ctx, cs, models.User{}.CollectionKey(), existing))

	require.NoError(t, Seed(ctx, cs, crypto.NewPasswordHasher(), config.App{}))

	roles, err := store.Load[models.Role](ctx, cs, models.Role{}.CollectionKey())
	require.NoError(t, err)
	assert.Empty(t, roles.Items)
}
