package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Search   key.Binding
	Season   key.Binding
	Sort     key.Binding
	Order    key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Larger   key.Binding
	Smaller  key.Binding
	Detail   key.Binding
	Copy     key.Binding
	Reset    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Season:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "season")),
	Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Order:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PrevPage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev page")),
	NextPage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next page")),
	Larger:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "page size")),
	Smaller:  key.NewBinding(key.WithKeys("-")),
	Detail:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy url")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Search, k.Season, k.Sort, k.Order, k.PrevPage, k.NextPage, k.Larger, k.Detail, k.Copy, k.Reset, k.Quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.Back, k.Quit}
}

func helpLine(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return HelpStyle.Render(strings.Join(parts, " • "))
}

