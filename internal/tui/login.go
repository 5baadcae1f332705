// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AgroDesk Contributors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/agrodesk/agrodesk/models"
)

// consoleLocation is the geolocation grant the console reports at login.
// The server refuses sessions without one; the console is stationary office
// tooling, so it reports the head-office coordinates rather than a device
// position.
var consoleLocation = models.GeoPoint{Latitude: 43.238949, Longitude: 76.889709}

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{email, password}}
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginModel) reset() {
	m.submitting = false
	m.errMsg = ""
	m.inputs[1].SetValue("")
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("AgroDesk Console"))
	b.WriteString("\n\n")
	b.WriteString("Email    [" + m.inputs[0].View() + "]\n")
	b.WriteString("Password [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("tab: next field  enter: sign in  ctrl+c: quit"))
	return appStyle.Render(b.String())
}
