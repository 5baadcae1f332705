// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package client

import (
	"sync"

	"github.com/agrodesk/agrodesk/models"
)

// Session holds the authenticated console user between screens. It is a
// purely in-memory record of the most recent login response; closing the
// console ends the session.
type Session struct {
	mu     sync.RWMutex
	login  models.LoginResponse
	active bool
}

func NewSession() *Session {
	return &Session{}
}

// Establish stores the login response, replacing any previous session.
func (s *Session) Establish(login models.LoginResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.login = login
	s.active = true
}

// Clear drops the stored session.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.login = models.LoginResponse{}
	s.active = false
}

// Active reports whether a login has been established and not cleared.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// User returns the logged-in user record.
func (s *Session) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.login.User
}

// IsAdmin reports whether the logged-in user holds an administrator role.
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.login.IsAdmin
}

// Permissions returns the permission identifiers resolved at login. The
// server re-resolves permissions on every request; this copy only drives
// what the console offers to show.
func (s *Session) Permissions() []models.Permission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.login.Permissions
}

// Has reports whether the session carries the given permission. Admin
// sessions hold every permission.
func (s *Session) Has(perm models.Permission) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.login.IsAdmin {
		return true
	}
	for _, p := range s.login.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Token returns the bearer token of the session.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.login.Token
}
