package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the browser.
type KeyMap struct {
	Home        key.Binding
	Resources   key.Binding
	Inspiration key.Binding
	About       key.Binding
	Tab         key.Binding
	Search      key.Binding
	Back        key.Binding
	FocusLeft   key.Binding
	FocusRight  key.Binding
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	Toggle      key.Binding
	Reset       key.Binding
	More        key.Binding
	Sidebar     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Home:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Resources:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "resources")),
		Inspiration: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "inspiration")),
		About:       key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "about")),
		Tab:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "financial/therapy")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		FocusLeft:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "filters")),
		FocusRight:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "results")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle filter")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset filters")),
		More:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "load more")),
		Sidebar:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sidebar")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Tab, k.Open, k.Toggle, k.More, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Resources, k.Inspiration, k.About},
		{k.Up, k.Down, k.FocusLeft, k.FocusRight, k.Open, k.Back},
		{k.Search, k.Tab, k.Toggle, k.Reset, k.More, k.Sidebar},
		{k.Help, k.Quit},
	}
}
