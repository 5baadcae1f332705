// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrodesk/agrodesk/internal/adapter"
	"github.com/agrodesk/agrodesk/internal/client"
	"github.com/agrodesk/agrodesk/models"
)

type screen int

const (
	screenLogin screen = iota
	screenMenu
	screenList
	screenDependents
	screenReassign
	screenOrphan
)

type appModel struct {
	ctx     context.Context
	session *client.Session
	browser *client.Browser
	adapter adapter.ServerAdapter

	currentScreen screen
	login         loginModel
	menu          menuModel
	list          listModel
	dependents    dependentsModel
	reassign      reassignModel
	orphan        orphanModel

	showConfirm bool
	confirmRow  listRow
}

func newAppModel(ctx context.Context, session *client.Session, browser *client.Browser, serverAdapter adapter.ServerAdapter) appModel {
	return appModel{
		ctx:           ctx,
		session:       session,
		browser:       browser,
		adapter:       serverAdapter,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		menu:          newMenuModel(),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) {
				m.login.errMsg = "invalid email or password"
			} else {
				m.login.errMsg = humanizeError(msg.err)
			}
			return m, nil
		}
		m.session.Establish(msg.login)
		m.login.reset()
		m.currentScreen = screenMenu
		return m, m.cmdRefresh()

	case refreshDoneMsg:
		if msg.err != nil {
			if m.currentScreen == screenList {
				m.list.errMsg = humanizeError(msg.err)
			}
			return m, nil
		}
		if m.currentScreen == screenList && m.list.search.Value() == "" {
			m.list.rows = rowsFor(m.list.kind, m.browser.Snapshot())
			m.list.clampIdx()
		}
		return m, nil

	case searchDoneMsg:
		if m.currentScreen != screenList || msg.kind != m.list.kind {
			return m, nil
		}
		if msg.err != nil {
			m.list.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.list.errMsg = ""
		m.list.rows = msg.rows
		m.list.clampIdx()
		return m, nil

	case dependentsLoadedMsg:
		m.dependents.loading = false
		if msg.err != nil {
			m.dependents.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.dependents.report = msg.report
		return m, nil

	case userDeletedMsg:
		m.reassign.submitting = false
		m.orphan.submitting = false
		if msg.err != nil {
			switch m.currentScreen {
			case screenReassign:
				m.reassign.errMsg = humanizeError(msg.err)
			case screenOrphan:
				m.orphan.errMsg = humanizeError(msg.err)
			default:
				m.dependents.errMsg = humanizeError(msg.err)
			}
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = "user deleted"
		return m, tea.Batch(m.cmdRefresh(), clearStatusLater())

	case recordDeletedMsg:
		if msg.err != nil {
			m.list.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.list.status = "record deleted"
		return m, tea.Batch(m.cmdRefresh(), clearStatusLater())

	case copiedMsg:
		m.list.status = "copied to clipboard"
		return m, clearStatusLater()

	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			return m, m.cmdDeleteRecord(m.list.kind, m.confirmRow.id)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
			m.confirmRow = listRow{}
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLoginKey(msg)
	case screenMenu:
		return m.updateMenuKey(msg)
	case screenList:
		return m.updateListKey(msg)
	case screenDependents:
		return m.updateDependentsKey(msg)
	case screenReassign:
		return m.updateReassignKey(msg)
	case screenOrphan:
		return m.updateOrphanKey(msg)
	}
	return m, nil
}

func (m appModel) updateLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		m.login.focusNext()
		return m, nil
	case "enter":
		if m.login.submitting {
			return m, nil
		}
		email := strings.TrimSpace(m.login.inputs[0].Value())
		password := m.login.inputs[1].Value()
		if email == "" || password == "" {
			m.login.errMsg = "email and password are required"
			return m, nil
		}
		m.login.errMsg = ""
		m.login.submitting = true
		return m, m.cmdLogin(email, password)
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.menu.idx > 0 {
			m.menu.idx--
		}
	case key.Matches(msg, keys.down):
		if m.menu.idx < len(m.menu.entries)-1 {
			m.menu.idx++
		}
	case key.Matches(msg, keys.logout):
		m.session.Clear()
		m.adapter.SetToken("")
		m.login = newLoginModel()
		m.currentScreen = screenLogin
		return m, textinput.Blink
	case key.Matches(msg, keys.enter):
		m.list = newListModel()
		m.list.kind = m.menu.entries[m.menu.idx].kind
		m.list.rows = rowsFor(m.list.kind, m.browser.Snapshot())
		m.currentScreen = screenList
		return m, m.cmdRefresh()
	}
	return m, nil
}

func (m appModel) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		switch msg.String() {
		case "esc":
			m.list.searching = false
			m.list.search.Blur()
			m.list.search.SetValue("")
			m.list.rows = rowsFor(m.list.kind, m.browser.Snapshot())
			m.list.clampIdx()
			return m, nil
		case "enter":
			m.list.searching = false
			m.list.search.Blur()
			return m, m.cmdSearch(m.list.kind, strings.TrimSpace(m.list.search.Value()))
		}

		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenMenu
	case key.Matches(msg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(msg, keys.down):
		if m.list.idx < len(m.list.rows)-1 {
			m.list.idx++
		}
	case key.Matches(msg, keys.search):
		m.list.searching = true
		m.list.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.reload):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.copy):
		row, ok := m.list.current()
		if !ok || row.contact == "" {
			m.list.status = "nothing to copy"
			return m, clearStatusLater()
		}
		return m, cmdCopy(row.contact)
	case key.Matches(msg, keys.del):
		row, ok := m.list.current()
		if !ok {
			return m, nil
		}
		switch m.list.kind {
		case kindUsers:
			return m.startUserDeletion(row)
		case kindForms:
			m.list.status = "forms are managed in the web console"
			return m, clearStatusLater()
		default:
			m.showConfirm = true
			m.confirmRow = row
		}
	}
	return m, nil
}

// startUserDeletion opens the dependency report screen for the selected
// user. Deleting your own account is refused up front; the server enforces
// the same rule.
func (m appModel) startUserDeletion(row listRow) (tea.Model, tea.Cmd) {
	if row.id == m.session.User().ID {
		m.list.errMsg = "you cannot delete your own account"
		return m, nil
	}

	user, ok := m.userByID(row.id)
	if !ok {
		m.list.errMsg = "user no longer present, reload the list"
		return m, nil
	}

	m.dependents = dependentsModel{user: user, loading: true}
	m.currentScreen = screenDependents
	return m, m.cmdDependents(user.ID)
}

func (m appModel) updateDependentsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.enter):
		if m.dependents.loading || m.dependents.report.HasDependents() {
			return m, nil
		}
		return m, m.cmdDeleteUser(m.dependents.user.ID)
	case key.Matches(msg, keys.reload):
		if m.dependents.loading || !m.dependents.report.HasDependents() {
			return m, nil
		}
		m.reassign = reassignModel{
			from:       m.dependents.user,
			candidates: reassignCandidates(m.browser.Snapshot().Users, m.dependents.user.ID),
		}
		m.currentScreen = screenReassign
	case msg.String() == "o":
		if m.dependents.loading || !m.dependents.report.HasDependents() {
			return m, nil
		}
		m.orphan = newOrphanModel(m.dependents.user)
		m.currentScreen = screenOrphan
		return m, textinput.Blink
	}
	return m, nil
}

func (m appModel) updateReassignKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenDependents
	case key.Matches(msg, keys.up):
		if m.reassign.idx > 0 {
			m.reassign.idx--
		}
	case key.Matches(msg, keys.down):
		if m.reassign.idx < len(m.reassign.candidates)-1 {
			m.reassign.idx++
		}
	case key.Matches(msg, keys.enter):
		if m.reassign.submitting {
			return m, nil
		}
		target, ok := m.reassign.current()
		if !ok {
			return m, nil
		}
		m.reassign.submitting = true
		m.reassign.errMsg = ""
		return m, m.cmdReassign(m.reassign.from.ID, target.ID)
	}
	return m, nil
}

func (m appModel) updateOrphanKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentScreen = screenDependents
		return m, nil
	case "enter":
		if m.orphan.submitting {
			return m, nil
		}
		if !m.orphan.confirmed() {
			m.orphan.errMsg = "typed id does not match"
			return m, nil
		}
		m.orphan.submitting = true
		m.orphan.errMsg = ""
		return m, m.cmdOrphan(m.orphan.user.ID)
	}

	var cmd tea.Cmd
	m.orphan.confirm, cmd = m.orphan.confirm.Update(msg)
	return m, cmd
}

func (m appModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScreen {
	case screenLogin:
		m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	case screenList:
		if m.list.searching {
			m.list.search, cmd = m.list.search.Update(msg)
		}
	case screenOrphan:
		m.orphan.confirm, cmd = m.orphan.confirm.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	if m.showConfirm {
		return overlayBoxStyle.Render("Delete \"" + m.confirmRow.title + "\"?\n\ny yes    n no")
	}

	switch m.currentScreen {
	case screenLogin:
		return m.login.View()
	case screenMenu:
		return m.menu.View(m.session.User().Name)
	case screenList:
		return m.list.View()
	case screenDependents:
		return m.dependents.View()
	case screenReassign:
		return m.reassign.View()
	case screenOrphan:
		return m.orphan.View()
	}
	return ""
}

func (m appModel) userByID(id string) (models.User, bool) {
	for _, u := range m.browser.Snapshot().Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		_ = clipboard.WriteAll(text)
		return copiedMsg{}
	}
}
