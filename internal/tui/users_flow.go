// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/agrodesk/agrodesk/models"
)

// dependentsModel shows the dependency report of a user about to be
// deleted: every client and farmer record still referencing them.
type dependentsModel struct {
	user    models.User
	report  models.DependencyReport
	loading bool
	errMsg  string
}

func (m dependentsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete user: " + m.user.Name))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Scanning dependent records...\n")
		return appStyle.Render(b.String())
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
		b.WriteString("\n" + helpStyle.Render("esc: back"))
		return appStyle.Render(b.String())
	}

	if !m.report.HasDependents() {
		b.WriteString("No dependent records.\n")
		b.WriteString("\n" + helpStyle.Render("enter: delete user  esc: back"))
		return appStyle.Render(b.String())
	}

	b.WriteString(fmt.Sprintf("%d dependent records:\n\n", m.report.Count))
	if len(m.report.Clients) > 0 {
		b.WriteString(fmt.Sprintf("Clients (%d)\n", len(m.report.Clients)))
		for _, c := range m.report.Clients {
			b.WriteString("  - " + c.Name + "\n")
		}
	}
	if len(m.report.Farmers) > 0 {
		b.WriteString(fmt.Sprintf("Farmers (%d)\n", len(m.report.Farmers)))
		for _, f := range m.report.Farmers {
			b.WriteString("  - " + f.Name + "\n")
		}
	}

	b.WriteString("\nThese records must be handed to another user, or released\n")
	b.WriteString("without an owner (visible to administrators only).\n")
	b.WriteString("\n" + helpStyle.Render("r: reassign to another user  o: release without owner  esc: back"))
	return appStyle.Render(b.String())
}

// reassignModel lets the operator pick the user receiving all dependent
// records.
type reassignModel struct {
	from       models.User
	candidates []models.User
	idx        int
	submitting bool
	errMsg     string
}

// reassignCandidates filters the cached user list down to valid targets:
// everyone but the user being deleted and inactive accounts.
func reassignCandidates(users []models.User, fromID string) []models.User {
	candidates := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID == fromID || !u.IsActive() {
			continue
		}
		candidates = append(candidates, u)
	}
	return candidates
}

func (m reassignModel) current() (models.User, bool) {
	if len(m.candidates) == 0 || m.idx < 0 || m.idx >= len(m.candidates) {
		return models.User{}, false
	}
	return m.candidates[m.idx], true
}

func (m reassignModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Reassign records of " + m.from.Name))
	b.WriteString("\n\n")

	if len(m.candidates) == 0 {
		b.WriteString("No active users to reassign to.\n")
		b.WriteString("\n" + helpStyle.Render("esc: back"))
		return appStyle.Render(b.String())
	}

	for i, u := range m.candidates {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s (%s)\n", cursor, u.Name, u.Email))
	}

	if m.submitting {
		b.WriteString("\nReassigning...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter: reassign and delete  esc: back"))
	return appStyle.Render(b.String())
}

// orphanModel is the type-to-confirm dialog for the destructive deletion
// path. The operator must type the user's id exactly before the console
// sends the request.
type orphanModel struct {
	user       models.User
	confirm    textinput.Model
	submitting bool
	errMsg     string
}

func newOrphanModel(user models.User) orphanModel {
	confirm := textinput.New()
	confirm.Placeholder = user.ID
	confirm.CharLimit = 64
	confirm.Width = 40
	confirm.Focus()
	return orphanModel{user: user, confirm: confirm}
}

func (m orphanModel) confirmed() bool {
	return strings.TrimSpace(m.confirm.Value()) == m.user.ID
}

func (m orphanModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Release records of " + m.user.Name))
	b.WriteString("\n\n")
	b.WriteString("All dependent records will lose their owner and remain\n")
	b.WriteString("visible to administrators only. This cannot be undone.\n\n")
	b.WriteString("Type the user id to confirm: " + m.user.ID + "\n\n")
	b.WriteString("[" + m.confirm.View() + "]\n")

	if m.submitting {
		b.WriteString("\nDeleting...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter: confirm  esc: back"))
	return overlayBoxStyle.Render(b.String())
}
