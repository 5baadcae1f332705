// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

// Package adapter provides transport-layer abstractions for communicating
// with the AgroDesk server.
//
// The primary abstraction is [ServerAdapter], which decouples the console
// application from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/agrodesk/agrodesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the AgroDesk
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Login authenticates with the server. The credentials must carry a
	// geolocation grant or the server rejects the session. On success the
	// returned bearer token is stored via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	ListClients(ctx context.Context, search string) ([]models.Client, error)
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	UpdateClient(ctx context.Context, client models.Client) (models.Client, error)
	DeleteClient(ctx context.Context, id string) error

	ListFarmers(ctx context.Context, search string) ([]models.Farmer, error)
	CreateFarmer(ctx context.Context, farmer models.Farmer) (models.Farmer, error)
	UpdateFarmer(ctx context.Context, farmer models.Farmer) (models.Farmer, error)
	DeleteFarmer(ctx context.Context, id string) error

	ListTasks(ctx context.Context, search string) ([]models.Task, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListComplaints(ctx context.Context, search string) ([]models.Complaint, error)
	CreateComplaint(ctx context.Context, complaint models.Complaint) (models.Complaint, error)
	UpdateComplaint(ctx context.Context, complaint models.Complaint) (models.Complaint, error)
	DeleteComplaint(ctx context.Context, id string) error

	ListForms(ctx context.Context, search string) ([]models.DigitalForm, error)
	ListSubmissions(ctx context.Context, formID string) ([]models.FormSubmission, error)

	ListUsers(ctx context.Context, search string) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User, password string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes a user with no dependent records. The server
	// answers [ErrConflict] when the dependency scan still finds
	// references.
	DeleteUser(ctx context.Context, id string) error

	// UserDependents fetches the dependency report of a user: every
	// client and farmer record still referencing them by either ownership
	// field.
	UserDependents(ctx context.Context, id string) (models.DependencyReport, error)

	// ReassignUser rewrites all dependent records of id to toUserID and
	// deletes the user.
	ReassignUser(ctx context.Context, id, toUserID string) error

	// DeleteUserOrphaning clears the ownership fields of all dependent
	// records and deletes the user. The confirmation id is repeated in the
	// request body so the destructive path can never be hit by accident.
	DeleteUserOrphaning(ctx context.Context, id string) error

	ListRoles(ctx context.Context) ([]models.Role, error)
}
