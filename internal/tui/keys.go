package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit, NextTab, PrevTab, Theme key.Binding

	// cart
	AddProduct, Up, Down, Inc, Dec, Remove, Clear key.Binding

	// todos
	AddTodo, EditTodo, ToggleTodo, DeleteTodo key.Binding

	// form
	Submit, Reset key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),

		AddProduct: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "add product")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Inc:        key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more")),
		Dec:        key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "less")),
		Remove:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),

		AddTodo:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		EditTodo:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		ToggleTodo: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		DeleteTodo: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
	}
}

func (k keyMap) cartHelp() []key.Binding {
	return []key.Binding{k.AddProduct, k.Inc, k.Dec, k.Remove, k.Clear, k.NextTab, k.Theme, k.Quit}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Submit, k.Reset, k.NextTab}
}
