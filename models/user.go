// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package models

import "time"

// UserStatus describes whether an account may authenticate and appear in
// assignment pickers.
type UserStatus string

const (
	// UserActive marks an account that can log in and own records.
	UserActive UserStatus = "active"

	// UserInactive marks a deactivated account. Inactive users cannot log
	// in but may still be referenced as owners of existing records until
	// their records are reassigned.
	UserInactive UserStatus = "inactive"
)

// User represents an operator account used for authentication and record
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the opaque unique identifier of the user ("user-<uuid>").
	ID string `json:"id"`

	// Name is the display name of the user. Non-sensitive, shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier. Uniqueness is enforced
	// case-insensitively at the service layer.
	Email string `json:"email"`

	// PasswordHash stores the argon2id digest of the user's password in
	// PHC string format. Never exposed via JSON.
	PasswordHash string `json:"-"`

	// RoleID references the Role whose permission set this user acts with.
	RoleID string `json:"role_id"`

	// Status controls whether the account may authenticate.
	Status UserStatus `json:"status"`

	Phone string `json:"phone,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation of this record.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActive reports whether the account is allowed to authenticate.
func (u User) IsActive() bool {
	return u.Status == UserActive
}

// CollectionKey returns the storage key of the users collection.
func (u User) CollectionKey() string {
	return "users"
}
