package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	search    key.Binding
	reload    key.Binding
	pin       key.Binding
	clear     key.Binding
	copy      key.Binding
	info      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	search:    key.NewBinding(key.WithKeys("/")),
	reload:    key.NewBinding(key.WithKeys("r")),
	pin:       key.NewBinding(key.WithKeys("p")),
	clear:     key.NewBinding(key.WithKeys("x")),
	copy:      key.NewBinding(key.WithKeys("c")),
	info:      key.NewBinding(key.WithKeys("v")),
}
