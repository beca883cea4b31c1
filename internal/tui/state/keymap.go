package state

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the list and profile screen bindings.
type keyMap struct {
	Quit        key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	SortGroup   key.Binding
	SortName    key.Binding
	SortEmail   key.Binding
	PageSize    key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	FirstPage   key.Binding
	LastPage    key.Binding
	JumpPage    key.Binding
	Theme       key.Binding
	Profile     key.Binding
	Back        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		SortGroup:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "sort by group")),
		SortName:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "sort by name")),
		SortEmail:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sort by email")),
		PageSize:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "page size")),
		PrevPage:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous page")),
		NextPage:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		FirstPage:   key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first page")),
		LastPage:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page")),
		JumpPage:    key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to page")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Profile:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
		Back:        key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	}
}
