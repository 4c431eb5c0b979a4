package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the key binding overlay.
func (m *Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Capture", []key.Binding{m.keys.ToggleCapture, m.keys.ClearBuffer}},
		{"Filtering", []key.Binding{m.keys.CycleLevel, m.keys.Filters}},
		{"Search", []key.Binding{m.keys.Search, m.keys.NextMatch, m.keys.PrevMatch}},
		{"Navigation", []key.Binding{
			m.keys.ToggleFollow, m.keys.Up, m.keys.Down, m.keys.Top, m.keys.Bottom,
			m.keys.PageUp, m.keys.PageDown, m.keys.HalfPageUp, m.keys.HalfPageDown,
		}},
		{"General", []key.Binding{m.keys.Help, m.keys.CycleTheme, m.keys.Quit}},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Key Bindings"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")

	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			help := binding.Help()
			b.WriteString("  ")
			b.WriteString(styles.Text.Render(padRight(help.Key, 12)))
			b.WriteString(styles.MutedText.Render(help.Desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Esc or ? to close"))

	modal := styles.Border.Padding(1, 2)
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
	)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
