package scenes

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Top, k.Bottom}
}

var listKeys = listKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
}

type sliderKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Increase key.Binding
	Decrease key.Binding
	Reset    key.Binding
}

func (k sliderKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Reset}
}

var sliderKeys = sliderKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
	Increase: key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/+", "increase")),
	Decrease: key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←/-", "decrease")),
	Reset:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
}

type optimizeKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Focus key.Binding
	Run   key.Binding
}

func (k optimizeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Focus, k.Run}
}

var optimizeKeys = optimizeKeyMap{
	Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous target")),
	Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next target")),
	Focus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "edit target value")),
	Run:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "solve")),
}

type compareKeyMap struct {
	Run key.Binding
}

func (k compareKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run}
}

var compareKeys = compareKeyMap{
	Run: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "re-run comparison")),
}

// helpLine renders a one-line key help for a scene
func helpLine(bindings []key.Binding) string {
	return help.New().ShortHelpView(bindings)
}
