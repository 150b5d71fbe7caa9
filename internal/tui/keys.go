package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	refresh   key.Binding
	city      key.Binding
	reminders key.Binding
	history   key.Binding
	settings  key.Binding
	newItem   key.Binding
	delete    key.Binding
	copy      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	city:      key.NewBinding(key.WithKeys("m")),
	reminders: key.NewBinding(key.WithKeys("n")),
	history:   key.NewBinding(key.WithKeys("i")),
	settings:  key.NewBinding(key.WithKeys("s")),
	newItem:   key.NewBinding(key.WithKeys("a")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
}
