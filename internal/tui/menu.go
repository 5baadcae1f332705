package tui

import "strings"

type menuEntry struct {
	label string
	kind  resourceKind
}

type menuModel struct {
	entries []menuEntry
	idx     int
}

func newMenuModel() menuModel {
	return menuModel{
		entries: []menuEntry{
			{label: "Clients", kind: kindClients},
			{label: "Farmers", kind: kindFarmers},
			{label: "Tasks", kind: kindTasks},
			{label: "Complaints", kind: kindComplaints},
			{label: "Forms", kind: kindForms},
			{label: "Users", kind: kindUsers},
		},
	}
}

func (m menuModel) View(userName string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("AgroDesk Console"))
	if userName != "" {
		b.WriteString(helpStyle.Render("  signed in as " + userName))
	}
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + entry.label + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter: open  L: logout  q: quit"))
	return appStyle.Render(b.String())
}
