// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/models"
)

func validCreds(email string) models.Credentials {
	return models.Credentials{
		Email:    email,
		Password: "correct horse",
		Location: &models.GeoPoint{Latitude: 28.61, Longitude: 77.21},
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.services.AuthService.Login(ctx, validCreds("a@agrodesk.local"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, f.agentAID, resp.User.ID)
	assert.False(t, resp.IsAdmin)
	assert.NotEmpty(t, resp.Permissions)

	// The issued token parses back to the same user.
	token, err := f.services.AuthService.ParseToken(ctx, resp.Token)
	require.NoError(t, err)
	userID, err := token.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, f.agentAID, userID)
}

func TestAuthService_Login_EmailCaseInsensitive(t *testing.T) {
	f := newFixture(t)

	resp, err := f.services.AuthService.Login(context.Background(), validCreds("A@AgroDesk.LOCAL"))
	require.NoError(t, err)
	assert.Equal(t, f.agentAID, resp.User.ID)
}

func TestAuthService_Login_MissingLocation(t *testing.T) {
	f := newFixture(t)

	creds := validCreds("a@agrodesk.local")
	creds.Location = nil

	_, err := f.services.AuthService.Login(context.Background(), creds)
	assert.ErrorIs(t, err, ErrGeolocationRequired)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newFixture(t)

	creds := validCreds("a@agrodesk.local")
	creds.Password = "wrong"

	_, err := f.services.AuthService.Login(context.Background(), creds)
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.AuthService.Login(context.Background(), validCreds("ghost@agrodesk.local"))
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	users, err := store.Load[models.User](ctx, f.store, models.User{}.CollectionKey())
	require.NoError(t, err)
	for i := range users.Items {
		if users.Items[i].ID == f.agentAID {
			users.Items[i].Status = models.UserInactive
		}
	}
	require.NoError(t, store.Save(ctx, f.store, models.User{}.CollectionKey(), users))

	_, err = f.services.AuthService.Login(ctx, validCreds("a@agrodesk.local"))
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestAuthService_Login_InactiveRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	roles, err := store.Load[models.Role](ctx, f.store, models.Role{}.CollectionKey())
	require.NoError(t, err)
	for i := range roles.Items {
		if roles.Items[i].ID == f.agentRoleID {
			roles.Items[i].IsActive = false
		}
	}
	require.NoError(t, store.Save(ctx, f.store, models.Role{}.CollectionKey(), roles))

	_, err = f.services.AuthService.Login(ctx, validCreds("a@agrodesk.local"))
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.AuthService.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ResolvePrincipal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	principal, perms, err := f.services.AuthService.ResolvePrincipal(ctx, f.adminID)
	require.NoError(t, err)
	assert.True(t, principal.IsAdmin)
	assert.NotEmpty(t, perms)

	principal, perms, err = f.services.AuthService.ResolvePrincipal(ctx, f.agentAID)
	require.NoError(t, err)
	assert.False(t, principal.IsAdmin)
	assert.True(t, perms.HasAction(models.ResourceClient, models.ActionRead))
	assert.False(t, perms.HasAction(models.ResourceClient, models.ActionViewAll))

	_, _, err = f.services.AuthService.ResolvePrincipal(ctx, "user-ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthService_ResolvePrincipal_DeactivationTakesEffectImmediately(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	users, err := store.Load[models.User](ctx, f.store, models.User{}.CollectionKey())
	require.NoError(t, err)
	for i := range users.Items {
		if users.Items[i].ID == f.agentBID {
			users.Items[i].Status = models.UserInactive
		}
	}
	require.NoError(t, store.Save(ctx, f.store, models.User{}.CollectionKey(), users))

	_, _, err = f.services.AuthService.ResolvePrincipal(ctx, f.agentBID)
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestAuthService_CreateToken_CarriesExpiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	token, err := f.services.AuthService.CreateToken(ctx, f.agentAID)
	require.NoError(t, err)
	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, time.Minute)
}
