package ui

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// MenuItem is one entry of a MenuModel.
type MenuItem struct {
	ID       string // Stable identifier reported on selection
	Name     string // Title line
	Summary  string // Description line
	Keywords []string
}

// menuItem implements list.Item for the Bubbles list component.
type menuItem struct {
	item MenuItem
}

func (i menuItem) Title() string {
	return i.item.Name
}

func (i menuItem) Description() string {
	return i.item.Summary
}

func (i menuItem) FilterValue() string {
	value := i.item.Name
	for _, k := range i.item.Keywords {
		value += " " + k
	}
	return value
}

// MenuSelectedMsg is emitted when the user picks an entry.
type MenuSelectedMsg struct {
	Item MenuItem
}

// MenuModel is an embeddable Bubble Tea list of selectable entries.
type MenuModel struct {
	list   list.Model
	items  []MenuItem
	width  int
	height int
}

// menuKeyMap defines key bindings for the menu.
type menuKeyMap struct {
	Enter key.Binding
}

var menuKeys = menuKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
}

// NewMenuModel creates a menu with the given title and entries.
func NewMenuModel(title string, items []MenuItem) MenuModel {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = menuItem{item: it}
	}

	// Create list with custom delegate for styling
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorPrimary).
		BorderForeground(ColorSecondary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorMuted)

	l := list.New(listItems, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)
	l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	return MenuModel{
		list:   l,
		items:  items,
		width:  80,
		height: 15,
	}
}

// SetSize resizes the menu.
func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}

// Update handles navigation and emits MenuSelectedMsg on enter.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, menuKeys.Enter) {
		if it, ok := m.list.SelectedItem().(menuItem); ok {
			selected := it.item
			return m, func() tea.Msg { return MenuSelectedMsg{Item: selected} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	return m.list.View()
}

// Selected returns the highlighted entry.
func (m MenuModel) Selected() (MenuItem, bool) {
	if it, ok := m.list.SelectedItem().(menuItem); ok {
		return it.item, true
	}
	return MenuItem{}, false
}

// Items returns the menu entries in display order.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// IsTerminal returns true if the file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
