package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// renderHelp renders the full-screen help overlay from the key map.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("forgetop — key bindings") + "\n\n")

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Views", []key.Binding{
			m.keys.ViewBoms, m.keys.ViewAllocations, m.keys.ViewOrders,
			m.keys.ViewPricing, m.keys.ViewProducts, m.keys.ViewCompliance,
			m.keys.Tab, m.keys.ShiftTab,
		}},
		{"Lists", []key.Binding{
			m.keys.Up, m.keys.Down, m.keys.Top, m.keys.Bottom,
			m.keys.Open, m.keys.Filter, m.keys.PrevPage, m.keys.NextPage,
			m.keys.Refresh, m.keys.Escape,
		}},
		{"Orders", []key.Binding{
			m.keys.Allocate, m.keys.Confirm,
		}},
		{"General", []key.Binding{
			m.keys.CycleTheme, m.keys.Help, m.keys.Quit,
		}},
	}

	for _, section := range sections {
		b.WriteString(styles.InfoText.Bold(true).Render(section.title) + "\n")
		for _, binding := range section.bindings {
			help := binding.Help()
			b.WriteString("  " + styles.AccentText.Render(padRight(help.Key, 12)))
			b.WriteString(styles.Text.Render(help.Desc) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedText.Render("Theme: " + m.theme.Name + "   (press h or ? to close)"))
	return b.String()
}
