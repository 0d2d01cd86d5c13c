package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the global shortcuts shown in the status bar
type keyMap struct {
	Home       key.Binding
	Scenarios  key.Binding
	Parameters key.Binding
	Compare    key.Binding
	Optimize   key.Binding
	Results    key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Home:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Scenarios:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scenarios")),
		Parameters: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "what-if")),
		Compare:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare")),
		Optimize:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "break-even")),
		Results:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "results")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Scenarios, k.Parameters, k.Compare, k.Optimize, k.Results, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Scenarios, k.Parameters},
		{k.Compare, k.Optimize, k.Results},
		{k.Back, k.Help, k.Quit},
	}
}

// sceneFor maps a navigation key to its scene
func (k keyMap) sceneFor(msg tea.KeyMsg) (Scene, bool) {
	switch {
	case key.Matches(msg, k.Home):
		return SceneHome, true
	case key.Matches(msg, k.Scenarios):
		return SceneScenarios, true
	case key.Matches(msg, k.Parameters):
		return SceneParameters, true
	case key.Matches(msg, k.Compare):
		return SceneCompare, true
	case key.Matches(msg, k.Optimize):
		return SceneOptimize, true
	case key.Matches(msg, k.Results):
		return SceneResults, true
	case key.Matches(msg, k.Help):
		return SceneHelp, true
	}
	return 0, false
}
