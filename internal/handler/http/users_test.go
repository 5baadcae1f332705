package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrodesk/agrodesk/models"
)

func TestUsers_CreateByAdmin(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(t, http.MethodPost, "/api/users/", tr.adminToken, map[string]any{
		"name":     "Agent C",
		"email":    "c@agrodesk.local",
		"role_id":  "role-agent",
		"password": "first pass",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.User](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.UserActive, created.Status)

	// password hash never leaves the server
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUsers_CreateDeniedForAgent(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(t, http.MethodPost, "/api/users/", tr.agentAToken, map[string]any{
		"name": "Agent C", "email": "c@agrodesk.local", "role_id": "role-agent", "password": "x",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "permission_denied", errorCode(t, rec))
}

func TestUsers_DuplicateEmail(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(t, http.MethodPost, "/api/users/", tr.adminToken, map[string]any{
		"name": "Dupe", "email": "A@agrodesk.local", "role_id": "role-agent", "password": "x",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email_taken", errorCode(t, rec))
}

func TestUsers_ListVisibleToAgents(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(t, http.MethodGet, "/api/users/", tr.agentAToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.User](t, rec), 3)
}

func TestUsers_Update(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(t, http.MethodGet, "/api/users/"+testAgentBID, tr.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeBody[models.User](t, rec)

	user.Phone = "+7 777 000 11 22"
	rec = tr.do(t, http.MethodPut, "/api/users/"+testAgentBID, tr.adminToken, user)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "+7 777 000 11 22", decodeBody[models.User](t, rec).Phone)
}

func TestUsers_SelfDeleteIsBlocked(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(t, http.MethodDelete, "/api/users/"+testAdminID, tr.adminToken, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "self_protection", errorCode(t, rec))
}

func TestUsers_DeleteWithoutDependents(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(t, http.MethodDelete, "/api/users/"+testAgentBID, tr.adminToken, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUsers_DeleteBlockedByDependents(t *testing.T) {
	tr := newTestRouter(t)
	createClientVia(t, tr, tr.agentAToken, "Green Valley Co-op")

	rec := tr.do(t, http.MethodDelete, "/api/users/"+testAgentAID, tr.adminToken, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "has_dependents", errorCode(t, rec))
}

func TestUsers_DependencyReport(t *testing.T) {
	tr := newTestRouter(t)
	createClientVia(t, tr, tr.agentAToken, "Green Valley Co-op")
	createClientVia(t, tr, tr.agentAToken, "Riverside Farms")

	rec := tr.do(t, http.MethodGet, "/api/users/"+testAgentAID+"/dependents", tr.adminToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	report := decodeBody[models.DependencyReport](t, rec)
	assert.Equal(t, testAgentAID, report.UserID)
	assert.Equal(t, 2, report.Count)
	assert.Len(t, report.Clients, 2)
}

func TestUsers_ReassignAndDelete(t *testing.T) {
	tr := newTestRouter(t)
	created := createClientVia(t, tr, tr.agentAToken, "Green Valley Co-op")

	rec := tr.do(t, http.MethodPost, "/api/users/"+testAgentAID+"/reassign", tr.adminToken, models.ReassignRequest{ToUserID: testAgentBID})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = tr.do(t, http.MethodGet, "/api/users/"+testAgentAID, tr.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = tr.do(t, http.MethodGet, "/api/clients/"+created.ID, tr.agentBToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	moved := decodeBody[models.Client](t, rec)
	assert.Equal(t, testAgentBID, moved.CreatedBy)
	assert.Equal(t, testAgentBID, moved.AssignedUserID)
}

func TestUsers_ReassignToInvalidTarget(t *testing.T) {
	tr := newTestRouter(t)
	createClientVia(t, tr, tr.agentAToken, "Green Valley Co-op")

	rec := tr.do(t, http.MethodPost, "/api/users/"+testAgentAID+"/reassign", tr.adminToken, models.ReassignRequest{ToUserID: "user-ghost"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "reassign_target_invalid", errorCode(t, rec))
}

func TestUsers_OrphaningRequiresConfirmation(t *testing.T) {
	tr := newTestRouter(t)
	createClientVia(t, tr, tr.agentAToken, "Green Valley Co-op")

	rec := tr.do(t, http.MethodDelete, "/api/users/"+testAgentAID, tr.adminToken, models.DeleteUserRequest{Orphan: true, Confirm: "wrong-id"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "orphan_not_confirmed", errorCode(t, rec))
}

func TestUsers_OrphaningDelete(t *testing.T) {
	tr := newTestRouter(t)
	created := createClientVia(t, tr, tr.agentAToken, "Green Valley Co-op")

	rec := tr.do(t, http.MethodDelete, "/api/users/"+testAgentAID, tr.adminToken, models.DeleteUserRequest{Orphan: true, Confirm: testAgentAID})
	require.Equal(t, http.StatusNoContent, rec.Code)

	// orphaned record keeps no owner and stays visible to admins only
	rec = tr.do(t, http.MethodGet, "/api/clients/"+created.ID, tr.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orphan := decodeBody[models.Client](t, rec)
	assert.Empty(t, orphan.CreatedBy)
	assert.Empty(t, orphan.AssignedUserID)

	rec = tr.do(t, http.MethodGet, "/api/clients/"+created.ID, tr.agentBToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoles_CRUD(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(t, http.MethodPost, "/api/roles/", tr.adminToken, models.Role{
		Name:        "Supervisor",
		Permissions: []models.Permission{models.Perm(models.ResourceClient, models.ActionViewAll)},
		IsActive:    true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Role](t, rec)
	require.NotEmpty(t, created.ID)

	rec = tr.do(t, http.MethodGet, "/api/roles/"+created.ID, tr.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	created.Name = "Field Supervisor"
	rec = tr.do(t, http.MethodPut, "/api/roles/"+created.ID, tr.adminToken, created)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Field Supervisor", decodeBody[models.Role](t, rec).Name)

	rec = tr.do(t, http.MethodDelete, "/api/roles/"+created.ID, tr.adminToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRoles_DeleteInUse(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(t, http.MethodDelete, "/api/roles/role-agent", tr.adminToken, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "role_in_use", errorCode(t, rec))
}

func TestRoles_DeniedForAgent(t *testing.T) {
	tr := newTestRouter(t)

	rec := tr.do(t, http.MethodGet, "/api/roles/", tr.agentAToken, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
