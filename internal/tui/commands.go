// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrodesk/agrodesk/internal/adapter"
	"github.com/agrodesk/agrodesk/models"
)

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	location := consoleLocation
	return func() tea.Msg {
		resp, err := m.adapter.Login(m.ctx, models.Credentials{
			Email:    email,
			Password: password,
			Location: &location,
		})
		return loginDoneMsg{login: resp, err: err}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.browser.Refresh(m.ctx)}
	}
}

func (m appModel) cmdSearch(kind resourceKind, query string) tea.Cmd {
	return func() tea.Msg {
		var (
			rows []listRow
			err  error
		)
		switch kind {
		case kindClients:
			var clients []models.Client
			clients, err = m.adapter.ListClients(m.ctx, query)
			rows = clientRows(clients)
		case kindFarmers:
			var farmers []models.Farmer
			farmers, err = m.adapter.ListFarmers(m.ctx, query)
			rows = farmerRows(farmers)
		case kindTasks:
			var tasks []models.Task
			tasks, err = m.adapter.ListTasks(m.ctx, query)
			rows = taskRows(tasks)
		case kindComplaints:
			var complaints []models.Complaint
			complaints, err = m.adapter.ListComplaints(m.ctx, query)
			rows = complaintRows(complaints)
		case kindForms:
			var forms []models.DigitalForm
			forms, err = m.adapter.ListForms(m.ctx, query)
			rows = formRows(forms)
		case kindUsers:
			var users []models.User
			users, err = m.adapter.ListUsers(m.ctx, query)
			rows = userRows(users)
		}
		return searchDoneMsg{kind: kind, rows: rows, err: err}
	}
}

func (m appModel) cmdDependents(userID string) tea.Cmd {
	return func() tea.Msg {
		report, err := m.adapter.UserDependents(m.ctx, userID)
		return dependentsLoadedMsg{report: report, err: err}
	}
}

func (m appModel) cmdReassign(fromID, toID string) tea.Cmd {
	return func() tea.Msg {
		return userDeletedMsg{err: m.adapter.ReassignUser(m.ctx, fromID, toID)}
	}
}

func (m appModel) cmdOrphan(userID string) tea.Cmd {
	return func() tea.Msg {
		return userDeletedMsg{err: m.adapter.DeleteUserOrphaning(m.ctx, userID)}
	}
}

func (m appModel) cmdDeleteUser(userID string) tea.Cmd {
	return func() tea.Msg {
		return userDeletedMsg{err: m.adapter.DeleteUser(m.ctx, userID)}
	}
}

func (m appModel) cmdDeleteRecord(kind resourceKind, id string) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch kind {
		case kindClients:
			err = m.adapter.DeleteClient(m.ctx, id)
		case kindFarmers:
			err = m.adapter.DeleteFarmer(m.ctx, id)
		case kindTasks:
			err = m.adapter.DeleteTask(m.ctx, id)
		case kindComplaints:
			err = m.adapter.DeleteComplaint(m.ctx, id)
		default:
			err = adapter.ErrBadRequest
		}
		return recordDeletedMsg{err: err}
	}
}

// humanizeError turns adapter sentinels into short messages suitable for a
// single status line. Unknown errors pass through verbatim.
func humanizeError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "session expired, log in again"
	case errors.Is(err, adapter.ErrForbidden):
		return "you do not have permission for that"
	case errors.Is(err, adapter.ErrNotFound):
		return "record not found, it may have been removed"
	case errors.Is(err, adapter.ErrConflict):
		return "conflict: " + err.Error()
	default:
		return err.Error()
	}
}
