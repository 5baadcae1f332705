// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/agrodesk/agrodesk/internal/client"
	"github.com/agrodesk/agrodesk/models"
)

// resourceKind selects which record list a list screen shows.
type resourceKind int

const (
	kindClients resourceKind = iota
	kindFarmers
	kindTasks
	kindComplaints
	kindForms
	kindUsers
)

func (k resourceKind) title() string {
	switch k {
	case kindClients:
		return "Clients"
	case kindFarmers:
		return "Farmers"
	case kindTasks:
		return "Tasks"
	case kindComplaints:
		return "Complaints"
	case kindForms:
		return "Forms"
	case kindUsers:
		return "Users"
	default:
		return "Records"
	}
}

// listRow is one rendered row of a record list. contact holds the value put
// on the clipboard by the copy key (email or phone where the record has
// one).
type listRow struct {
	id      string
	title   string
	meta    string
	contact string
}

type listModel struct {
	kind      resourceKind
	rows      []listRow
	idx       int
	searching bool
	search    textinput.Model
	status    string
	errMsg    string
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64
	search.Width = 32
	return listModel{search: search}
}

func (m listModel) current() (listRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return listRow{}, false
	}
	return m.rows[m.idx], true
}

func (m *listModel) clampIdx() {
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// rowsFor projects the cached snapshot into display rows for one resource
// kind.
func rowsFor(kind resourceKind, snap client.Snapshot) []listRow {
	switch kind {
	case kindClients:
		return clientRows(snap.Clients)
	case kindFarmers:
		return farmerRows(snap.Farmers)
	case kindTasks:
		return taskRows(snap.Tasks)
	case kindComplaints:
		return complaintRows(snap.Complaints)
	case kindForms:
		return formRows(snap.Forms)
	case kindUsers:
		return userRows(snap.Users)
	default:
		return nil
	}
}

func clientRows(clients []models.Client) []listRow {
	rows := make([]listRow, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, listRow{
			id:      c.ID,
			title:   c.Name,
			meta:    fmt.Sprintf("%s · %s", c.Type, c.Status),
			contact: firstNonEmpty(c.Phone, c.Email),
		})
	}
	return rows
}

func farmerRows(farmers []models.Farmer) []listRow {
	rows := make([]listRow, 0, len(farmers))
	for _, f := range farmers {
		meta := string(f.Status)
		if f.Village != "" {
			meta = f.Village + " · " + meta
		}
		rows = append(rows, listRow{
			id:      f.ID,
			title:   f.Name,
			meta:    meta,
			contact: firstNonEmpty(f.Phone, f.Email),
		})
	}
	return rows
}

func taskRows(tasks []models.Task) []listRow {
	rows := make([]listRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, listRow{
			id:    t.ID,
			title: t.Title,
			meta:  fmt.Sprintf("%s · %s", t.Status, t.Priority),
		})
	}
	return rows
}

func complaintRows(complaints []models.Complaint) []listRow {
	rows := make([]listRow, 0, len(complaints))
	for _, c := range complaints {
		rows = append(rows, listRow{
			id:    c.ID,
			title: c.Title,
			meta:  fmt.Sprintf("%s · %s", c.Status, c.Priority),
		})
	}
	return rows
}

func formRows(forms []models.DigitalForm) []listRow {
	rows := make([]listRow, 0, len(forms))
	for _, f := range forms {
		rows = append(rows, listRow{
			id:    f.ID,
			title: f.Title,
			meta:  fmt.Sprintf("%s · %d fields", f.Status, len(f.Fields)),
		})
	}
	return rows
}

func userRows(users []models.User) []listRow {
	rows := make([]listRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, listRow{
			id:      u.ID,
			title:   u.Name,
			meta:    fmt.Sprintf("%s · %s", u.Email, u.Status),
			contact: firstNonEmpty(u.Phone, u.Email),
		})
	}
	return rows
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (m listModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.kind.title()))
	b.WriteString("\n\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString("search: " + m.search.View() + "\n\n")
	}

	if len(m.rows) == 0 {
		b.WriteString("No records\n")
	}
	for i, row := range m.rows {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-30s %s", cursor, truncate(row.title, 30), row.meta)
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	help := "/ search  c copy contact  r reload  d delete  esc back  q quit"
	b.WriteString("\n" + helpStyle.Render(help))
	return appStyle.Render(b.String())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
