package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding
	Refresh    key.Binding

	// View switching
	ViewBoms        key.Binding
	ViewAllocations key.Binding
	ViewOrders      key.Binding
	ViewPricing     key.Binding
	ViewProducts    key.Binding
	ViewCompliance  key.Binding

	// List actions
	Open     key.Binding
	Filter   key.Binding
	PrevPage key.Binding
	NextPage key.Binding

	// Order actions
	Allocate key.Binding
	Confirm  key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next view"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous view"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back / clear filter"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload view"),
		),

		ViewBoms: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "BOMs"),
		),
		ViewAllocations: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Allocations"),
		),
		ViewOrders: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Orders"),
		),
		ViewPricing: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Pricing"),
		),
		ViewProducts: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "Products"),
		),
		ViewCompliance: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "Compliance"),
		),

		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open details"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Filter list"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Next page"),
		),

		Allocate: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Allocate order"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Confirm fulfillment"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
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
		{k.Tab, k.ViewBoms, k.ViewAllocations, k.ViewOrders},
		{k.ViewPricing, k.ViewProducts, k.ViewCompliance},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Open, k.Filter, k.PrevPage, k.NextPage, k.Refresh},
		{k.Allocate, k.Confirm},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
