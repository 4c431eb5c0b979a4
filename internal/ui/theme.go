package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the viewer.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text   string
	Muted  string
	Faint  string
	Accent string

	// Priority colors
	Verbose string
	Debug   string
	Info    string
	Warning string
	Error   string
	Fatal   string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		VerboseText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Verbose)),

		DebugText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Debug)),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		FatalText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Fatal)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style

	VerboseText lipgloss.Style
	DebugText   lipgloss.Style
	InfoText    lipgloss.Style
	WarningText lipgloss.Style
	ErrorText   lipgloss.Style
	FatalText   lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Border lipgloss.Style
}

// Themes lists the built-in themes in cycle order.
var Themes = []Theme{
	{
		Name:       "Dracula",
		Background: "#282A36",
		Surface:    "#44475A",
		Text:       "#F8F8F2",
		Muted:      "#6272A4",
		Faint:      "#525569",
		Accent:     "#BD93F9",
		Verbose:    "#6272A4",
		Debug:      "#8BE9FD",
		Info:       "#50FA7B",
		Warning:    "#F1FA8C",
		Error:      "#FF5555",
		Fatal:      "#FF79C6",
	},
	{
		Name:       "Nord",
		Background: "#2E3440",
		Surface:    "#3B4252",
		Text:       "#ECEFF4",
		Muted:      "#616E88",
		Faint:      "#4C566A",
		Accent:     "#88C0D0",
		Verbose:    "#616E88",
		Debug:      "#81A1C1",
		Info:       "#A3BE8C",
		Warning:    "#EBCB8B",
		Error:      "#BF616A",
		Fatal:      "#B48EAD",
	},
	{
		Name:       "Solarized",
		Background: "#002B36",
		Surface:    "#073642",
		Text:       "#839496",
		Muted:      "#586E75",
		Faint:      "#40545B",
		Accent:     "#268BD2",
		Verbose:    "#586E75",
		Debug:      "#2AA198",
		Info:       "#859900",
		Warning:    "#B58900",
		Error:      "#DC322F",
		Fatal:      "#D33682",
	},
}

// ThemeByName returns the named theme, falling back to the first one.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}
