package tui

import (
	"github.com/agrodesk/agrodesk/models"
)

type loginDoneMsg struct {
	login models.LoginResponse
	err   error
}

type refreshDoneMsg struct {
	err error
}

type searchDoneMsg struct {
	kind resourceKind
	rows []listRow
	err  error
}

type dependentsLoadedMsg struct {
	report models.DependencyReport
	err    error
}

type userDeletedMsg struct {
	err error
}

type recordDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
