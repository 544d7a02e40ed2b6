package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the presenter.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Navigation
	Next         key.Binding
	Prev         key.Binding
	First        key.Binding
	Last         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	Slides       key.Binding

	// Slide toggles
	TogglePositive     key.Binding
	ToggleConstructive key.Binding
	ToggleGaps         key.Binding
	ToggleDetails      key.Binding
	TogglePanel        key.Binding
	ToggleModal        key.Binding
	NextTab            key.Binding
	PrevTab            key.Binding

	// Decks
	Decks    key.Binding
	Export   key.Binding
	Bookmark key.Binding
	Logs     key.Binding

	// Picker
	Up      key.Binding
	Down    key.Binding
	Search  key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close"),
		),

		Next: key.NewBinding(
			key.WithKeys("j", "down", "right", "l", " ", "space"),
			key.WithHelp("j/space", "Next slide"),
		),
		Prev: key.NewBinding(
			key.WithKeys("k", "up", "left", "backspace"),
			key.WithHelp("k", "Previous slide"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last slide"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Scroll down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
		Slides: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Go to slide"),
		),

		TogglePositive: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "What works"),
		),
		ToggleConstructive: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Constructive"),
		),
		ToggleGaps: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Gaps"),
		),
		ToggleDetails: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Details"),
		),
		TogglePanel: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Side panel"),
		),
		ToggleModal: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "Open overlay"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous tab"),
		),

		Decks: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Switch deck"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Export PDF"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Show link"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Log"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Type a deck id"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last, k.Slides},
		{k.PageDown, k.PageUp, k.HalfPageDown, k.HalfPageUp},
		{k.TogglePositive, k.ToggleConstructive, k.ToggleGaps, k.ToggleDetails},
		{k.TogglePanel, k.ToggleModal, k.NextTab, k.PrevTab},
		{k.Decks, k.Export, k.Bookmark},
		{k.Logs, k.CycleTheme, k.Help, k.Quit},
	}
}
