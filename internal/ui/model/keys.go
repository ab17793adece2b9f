package model

import "charm.land/bubbles/v2/key"

// KeyMap holds the key bindings for the application.
type KeyMap struct {
	// Results list navigation.
	List struct {
		Down          key.Binding
		Up            key.Binding
		UpDown        key.Binding
		DownOneItem   key.Binding
		UpOneItem     key.Binding
		UpDownOneItem key.Binding
		PageDown      key.Binding
		PageUp        key.Binding
		HalfPageDown  key.Binding
		HalfPageUp    key.Binding
		Home          key.Binding
		End           key.Binding
	}

	// Global key maps.
	Capture key.Binding
	Clear   key.Binding
	Images  key.Binding
	Quit    key.Binding
	Help    key.Binding
	Suspend key.Binding
	Tab     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Capture: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "capture"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "clear"),
		),
		Images: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "cycle image mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g", "?"),
			key.WithHelp("ctrl+g", "more"),
		),
		Suspend: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "suspend"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
	}

	km.List.Down = key.NewBinding(
		key.WithKeys("down", "ctrl+j", "j"),
		key.WithHelp("↓", "down"),
	)
	km.List.Up = key.NewBinding(
		key.WithKeys("up", "ctrl+k", "k"),
		key.WithHelp("↑", "up"),
	)
	km.List.UpDown = key.NewBinding(
		key.WithKeys("up", "down"),
		key.WithHelp("↑↓", "scroll"),
	)
	km.List.UpOneItem = key.NewBinding(
		key.WithKeys("shift+up", "K"),
		key.WithHelp("shift+↑", "previous item"),
	)
	km.List.DownOneItem = key.NewBinding(
		key.WithKeys("shift+down", "J"),
		key.WithHelp("shift+↓", "next item"),
	)
	km.List.UpDownOneItem = key.NewBinding(
		key.WithKeys("shift+up", "shift+down"),
		key.WithHelp("shift+↑↓", "select item"),
	)
	km.List.HalfPageDown = key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "half page down"),
	)
	km.List.PageDown = key.NewBinding(
		key.WithKeys("pgdown", "f"),
		key.WithHelp("f/pgdn", "page down"),
	)
	km.List.PageUp = key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("b/pgup", "page up"),
	)
	km.List.HalfPageUp = key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "half page up"),
	)
	km.List.Home = key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	)
	km.List.End = key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	)

	return km
}
