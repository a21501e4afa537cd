package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Pause      key.Binding
	Palette    key.Binding
	Kind       key.Binding
	DegreeDown key.Binding
	DegreeUp   key.Binding
	Panel      key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Save       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Pause:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Palette:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c/click", "palette")),
		Kind:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "mode")),
		DegreeDown: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "degree-")),
		DegreeUp:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "degree+")),
		Panel:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "tune")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select")),
		Down:       key.NewBinding(key.WithKeys("down", "j")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "adjust")),
		Right:      key.NewBinding(key.WithKeys("right", "l")),
		Save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save png")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Palette, k.Kind, k.DegreeDown, k.DegreeUp, k.Panel, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap. The second column only matters while the
// tuning panel is open.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.Up, k.Left},
	}
}

// panelHelp lists the bindings shown while the panel has focus.
func (k keyMap) panelHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Panel, k.Pause, k.Save, k.Quit}
}
