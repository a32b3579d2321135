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
	parent    key.Binding
	root      key.Binding
	treeMode  key.Binding
	newFile   key.Binding
	newFolder key.Binding
	rename    key.Binding
	move      key.Binding
	delete    key.Binding
	save      key.Binding
	run       key.Binding
	search    key.Binding
	copy      key.Binding
	about     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	parent:    key.NewBinding(key.WithKeys("backspace", "left", "h")),
	root:      key.NewBinding(key.WithKeys("g")),
	treeMode:  key.NewBinding(key.WithKeys("t")),
	newFile:   key.NewBinding(key.WithKeys("n")),
	newFolder: key.NewBinding(key.WithKeys("N")),
	rename:    key.NewBinding(key.WithKeys("r")),
	move:      key.NewBinding(key.WithKeys("m")),
	delete:    key.NewBinding(key.WithKeys("d")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	run:       key.NewBinding(key.WithKeys("ctrl+r", "ctrl+enter")),
	search:    key.NewBinding(key.WithKeys("ctrl+p")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	about:     key.NewBinding(key.WithKeys("f1")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
