// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/crypto"
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/internal/policy"
	"github.com/agrodesk/agrodesk/internal/store"
	"github.com/agrodesk/agrodesk/internal/utils"
	"github.com/agrodesk/agrodesk/models"
)

// authService is the concrete implementation of AuthService. It verifies
// argon2id password digests, issues HS256 JWT tokens, and resolves each
// authenticated user's role into a permission set.
type authService struct {
	store  store.CollectionStore
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the collection store
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(cs store.CollectionStore, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		store:         cs,
		hasher:        hasher,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates a user by email and password.
//
// The email comparison is case-insensitive. A missing geolocation grant
// rejects the session before the credential check runs, and a disabled
// account or role rejects it after. Failed email lookup and failed password
// verification are both reported as ErrWrongCredentials so the response
// does not reveal which half was wrong.
//
// Returns a LoginResponse carrying the signed token, the sanitized user,
// and the resolved permission list, or:
//   - ErrGeolocationRequired if no location was granted.
//   - ErrWrongCredentials on unknown email or wrong password.
//   - ErrUserInactive if the account or its role is deactivated.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		return models.LoginResponse{}, ErrInvalidDataProvided
	}
	if creds.Location == nil {
		log.Warn().Str("email", creds.Email).Msg("login attempt without geolocation grant")
		return models.LoginResponse{}, ErrGeolocationRequired
	}

	user, err := a.findUserByEmail(ctx, creds.Email)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("login failed: user lookup")
		return models.LoginResponse{}, ErrWrongCredentials
	}

	ok, err := a.hasher.Verify(creds.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("stored password digest is unreadable")
		return models.LoginResponse{}, ErrWrongCredentials
	}
	if !ok {
		log.Warn().Str("user_id", user.ID).Msg("wrong password")
		return models.LoginResponse{}, ErrWrongCredentials
	}

	principal, perms, err := a.resolve(ctx, user)
	if err != nil {
		return models.LoginResponse{}, err
	}

	token, err := a.CreateToken(ctx, user.ID)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		Token:       token.String(),
		User:        user,
		Permissions: perms.List(),
		IsAdmin:     principal.IsAdmin,
	}, nil
}

// CreateToken issues a signed JWT for the given user id.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolvePrincipal loads the user by id and resolves their role. Used by
// the auth middleware on every request so that deactivating a user or role
// takes effect immediately, not at next login.
func (a *authService) ResolvePrincipal(ctx context.Context, userID string) (models.Principal, policy.PermissionSet, error) {
	users, err := store.Load[models.User](ctx, a.store, models.User{}.CollectionKey())
	if err != nil {
		return models.Principal{}, nil, err
	}

	for _, u := range users.Items {
		if u.ID == userID {
			return a.resolve(ctx, u)
		}
	}

	return models.Principal{}, nil, ErrNotFound
}

// resolve checks the account and role lifecycle flags and builds the
// principal plus permission set.
func (a *authService) resolve(ctx context.Context, user models.User) (models.Principal, policy.PermissionSet, error) {
	log := logger.FromContext(ctx)

	if !user.IsActive() {
		log.Warn().Str("user_id", user.ID).Msg("inactive user rejected")
		return models.Principal{}, nil, ErrUserInactive
	}

	role, err := a.findRole(ctx, user.RoleID)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Str("role_id", user.RoleID).Msg("role lookup failed")
		return models.Principal{}, nil, err
	}
	if !role.IsActive {
		log.Warn().Str("user_id", user.ID).Str("role_id", role.ID).Msg("user holds an inactive role")
		return models.Principal{}, nil, ErrUserInactive
	}

	principal := models.Principal{UserID: user.ID, IsAdmin: role.IsAdmin}
	return principal, policy.Resolve(role), nil
}

func (a *authService) findUserByEmail(ctx context.Context, email string) (models.User, error) {
	users, err := store.Load[models.User](ctx, a.store, models.User{}.CollectionKey())
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users.Items {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}

	return models.User{}, ErrNotFound
}

func (a *authService) findRole(ctx context.Context, roleID string) (models.Role, error) {
	roles, err := store.Load[models.Role](ctx, a.store, models.Role{}.CollectionKey())
	if err != nil {
		return models.Role{}, err
	}

	for _, r := range roles.Items {
		if r.ID == roleID {
			return r, nil
		}
	}

	return models.Role{}, ErrNotFound
}
