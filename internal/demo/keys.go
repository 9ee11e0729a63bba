package demo

import "github.com/charmbracelet/bubbles/key"

// appKeyMap holds the bindings every screen shares.
type appKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

var appKeys = appKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// boxKeyMap holds the status box demo's control panel.
type boxKeyMap struct {
	Success   key.Binding
	Error     key.Binding
	Empty     key.Binding
	Loading   key.Binding
	Reload    key.Binding
	Increment key.Binding
	Decrement key.Binding
	Block     key.Binding
}

var boxKeys = boxKeyMap{
	Success:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
	Error:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
	Empty:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "empty")),
	Loading:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "loading")),
	Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "items")),
	Decrement: key.NewBinding(key.WithKeys("-", "_")),
	Block:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "block input")),
}

func (k boxKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Success, k.Error, k.Empty, k.Loading, k.Reload, k.Increment, k.Block, appKeys.Back}
}

func (k boxKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// listHelp combines the list bindings with the screen's own.
type listHelp struct {
	list  []key.Binding
	extra []key.Binding
}

func (h listHelp) ShortHelp() []key.Binding {
	out := append([]key.Binding{}, h.list...)
	out = append(out, h.extra...)
	return append(out, appKeys.Back)
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

var columnsKey = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "columns"))
