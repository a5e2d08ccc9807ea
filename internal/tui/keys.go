// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	top        key.Binding
	bottom     key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	filter     key.Binding
	toggle     key.Binding
	toggleAll  key.Binding
	refresh    key.Binding
	deleteOne  key.Binding
	deleteMany key.Binding
	rehashOne  key.Binding
	rehashAll  key.Binding
	newUser    key.Binding
	edit       key.Binding
	copyUser   key.Binding
	signOut    key.Binding
	info       key.Binding
	submit     key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	top:        key.NewBinding(key.WithKeys("home", "g")),
	bottom:     key.NewBinding(key.WithKeys("end", "G")),
	enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
	toggleAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select visible")),
	refresh:    key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
	deleteOne:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	deleteMany: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete selected")),
	rehashOne:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hash")),
	rehashAll:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "hash all")),
	newUser:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	copyUser:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy username")),
	signOut:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "sign out")),
	info:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "about")),
	submit:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	yes:        key.NewBinding(key.WithKeys("y", "enter")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}

// helpLine renders "key: action" pairs of bindings separated by " │ ".
func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		h := b.Help()
		if i > 0 {
			out += " │ "
		}
		out += h.Key + ": " + h.Desc
	}
	return out
}
