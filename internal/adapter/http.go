// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/agrodesk/agrodesk/internal/config"
	"github.com/agrodesk/agrodesk/internal/logger"
	"github.com/agrodesk/agrodesk/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerURL and configures the underlying client with the resolved base
// URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the returned bearer token via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var login models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &login); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(login.Token)
	return login, nil
}

// listResource fetches a collection endpoint, optionally passing the search
// query the server applies after its visibility filter.
func listResource[T any](h *httpServerAdapter, ctx context.Context, path, search string) ([]T, error) {
	req := h.authedRequest(ctx)
	if search != "" {
		req.SetQueryParam("q", search)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []T
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	return items, nil
}

func createResource[T any](h *httpServerAdapter, ctx context.Context, path string, body any) (T, error) {
	var out T

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return out, fmt.Errorf("create %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", path, err)
	}
	return out, nil
}

func updateResource[T any](h *httpServerAdapter, ctx context.Context, path string, body any) (T, error) {
	var out T

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(path)
	if err != nil {
		return out, fmt.Errorf("update %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", path, err)
	}
	return out, nil
}

func (h *httpServerAdapter) deleteResource(ctx context.Context, path string, body any) error {
	req := h.authedRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListClients(ctx context.Context, search string) ([]models.Client, error) {
	return listResource[models.Client](h, ctx, "/api/clients/", search)
}

func (h *httpServerAdapter) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	return createResource[models.Client](h, ctx, "/api/clients/", client)
}

func (h *httpServerAdapter) UpdateClient(ctx context.Context, client models.Client) (models.Client, error) {
	return updateResource[models.Client](h, ctx, "/api/clients/"+client.ID, client)
}

func (h *httpServerAdapter) DeleteClient(ctx context.Context, id string) error {
	return h.deleteResource(ctx, "/api/clients/"+id, nil)
}

func (h *httpServerAdapter) ListFarmers(ctx context.Context, search string) ([]models.Farmer, error) {
	return listResource[models.Farmer](h, ctx, "/api/farmers/", search)
}

func (h *httpServerAdapter) CreateFarmer(ctx context.Context, farmer models.Farmer) (models.Farmer, error) {
	return createResource[models.Farmer](h, ctx, "/api/farmers/", farmer)
}

func (h *httpServerAdapter) UpdateFarmer(ctx context.Context, farmer models.Farmer) (models.Farmer, error) {
	return updateResource[models.Farmer](h, ctx, "/api/farmers/"+farmer.ID, farmer)
}

func (h *httpServerAdapter) DeleteFarmer(ctx context.Context, id string) error {
	return h.deleteResource(ctx, "/api/farmers/"+id, nil)
}

func (h *httpServerAdapter) ListTasks(ctx context.Context, search string) ([]models.Task, error) {
	return listResource[models.Task](h, ctx, "/api/tasks/", search)
}

func (h *httpServerAdapter) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return createResource[models.Task](h, ctx, "/api/tasks/", task)
}

func (h *httpServerAdapter) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	return updateResource[models.Task](h, ctx, "/api/tasks/"+task.ID, task)
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, id string) error {
	return h.deleteResource(ctx, "/api/tasks/"+id, nil)
}

func (h *httpServerAdapter) ListComplaints(ctx context.Context, search string) ([]models.Complaint, error) {
	return listResource[models.Complaint](h, ctx, "/api/complaints/", search)
}

func (h *httpServerAdapter) CreateComplaint(ctx context.Context, complaint models.Complaint) (models.Complaint, error) {
	return createResource[models.Complaint](h, ctx, "/api/complaints/", complaint)
}

func (h *httpServerAdapter) UpdateComplaint(ctx context.Context, complaint models.Complaint) (models.Complaint, error) {
	return updateResource[models.Complaint](h, ctx, "/api/complaints/"+complaint.ID, complaint)
}

func (h *httpServerAdapter) DeleteComplaint(ctx context.Context, id string) error {
	return h.deleteResource(ctx, "/api/complaints/"+id, nil)
}

func (h *httpServerAdapter) ListForms(ctx context.Context, search string) ([]models.DigitalForm, error) {
	return listResource[models.DigitalForm](h, ctx, "/api/forms/", search)
}

func (h *httpServerAdapter) ListSubmissions(ctx context.Context, formID string) ([]models.FormSubmission, error) {
	return listResource[models.FormSubmission](h, ctx, "/api/forms/"+formID+"/submissions", "")
}

func (h *httpServerAdapter) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	return listResource[models.User](h, ctx, "/api/users/", search)
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.User, password string) (models.User, error) {
	payload := struct {
		models.User
		Password string `json:"password"`
	}{User: user, Password: password}

	return createResource[models.User](h, ctx, "/api/users/", payload)
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	return updateResource[models.User](h, ctx, "/api/users/"+user.ID, user)
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, id string) error {
	return h.deleteResource(ctx, "/api/users/"+id, nil)
}

func (h *httpServerAdapter) UserDependents(ctx context.Context, id string) (models.DependencyReport, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/" + id + "/dependents")
	if err != nil {
		return models.DependencyReport{}, fmt.Errorf("dependents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DependencyReport{}, err
	}

	var report models.DependencyReport
	if err = json.Unmarshal(resp.Body(), &report); err != nil {
		return models.DependencyReport{}, fmt.Errorf("decode dependents response: %w", err)
	}
	return report, nil
}

func (h *httpServerAdapter) ReassignUser(ctx context.Context, id, toUserID string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ReassignRequest{ToUserID: toUserID}).
		Post("/api/users/" + id + "/reassign")
	if err != nil {
		return fmt.Errorf("reassign request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteUserOrphaning(ctx context.Context, id string) error {
	return h.deleteResource(ctx, "/api/users/"+id, models.DeleteUserRequest{Orphan: true, Confirm: id})
}

func (h *httpServerAdapter) ListRoles(ctx context.Context) ([]models.Role, error) {
	return listResource[models.Role](h, ctx, "/api/roles/", "")
}
