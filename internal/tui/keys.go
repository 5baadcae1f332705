package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	quit   key.Binding
	logout key.Binding
	search key.Binding
	copy   key.Binding
	del    key.Binding
	reload key.Binding
	yes    key.Binding
	no     key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout: key.NewBinding(key.WithKeys("L")),
	search: key.NewBinding(key.WithKeys("/")),
	copy:   key.NewBinding(key.WithKeys("c")),
	del:    key.NewBinding(key.WithKeys("d")),
	reload: key.NewBinding(key.WithKeys("r")),
	yes:    key.NewBinding(key.WithKeys("y")),
	no:     key.NewBinding(key.WithKeys("n")),
}
