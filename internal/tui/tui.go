// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

// Package tui implements the terminal admin console.
//
// The console is a Bubble Tea program: a login screen, a resource menu,
// searchable record lists with clipboard copy of contact fields, and the
// user-deletion flow (dependency report, reassignment target selection, and
// a type-to-confirm dialog for the orphaning path).
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrodesk/agrodesk/internal/adapter"
	"github.com/agrodesk/agrodesk/internal/client"
	"github.com/agrodesk/agrodesk/internal/logger"
)

type TUI struct {
	session *client.Session
	browser *client.Browser
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func New(session *client.Session, browser *client.Browser, serverAdapter adapter.ServerAdapter, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		session: session,
		browser: browser,
		adapter: serverAdapter,
		logger:  logger,
	}, nil
}

// Run starts the interactive loop and blocks until the user exits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.session, t.browser, t.adapter)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
