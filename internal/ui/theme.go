package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
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

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Vulpine":  vulpineTheme(),
	"Midnight": midnightTheme(),
	"Tundra":   tundraTheme(),
}

var themeOrder = []string{"Vulpine", "Midnight", "Tundra"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return vulpineTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func vulpineTheme() Theme {
	// Warm rust-and-cream palette after the subject matter.
	return Theme{
		Name:       "Vulpine",
		Background: "#1f1410",
		Surface:    "#33231a",
		Text:       "#f2e5d5",
		Muted:      "#a8937d",
		Faint:      "#6e5c4a",
		Accent:     "#e8762b",
		Success:    "#8fb573",
		Warning:    "#e0af68",
		Danger:     "#d95f54",
	}
}

func midnightTheme() Theme {
	return Theme{
		Name:       "Midnight",
		Background: "#101419",
		Surface:    "#1c2430",
		Text:       "#dce3ec",
		Muted:      "#8a94a3",
		Faint:      "#525c6b",
		Accent:     "#6fa8dc",
		Success:    "#81b88b",
		Warning:    "#d7ba7d",
		Danger:     "#e06c75",
	}
}

func tundraTheme() Theme {
	return Theme{
		Name:       "Tundra",
		Background: "#f4f1ea",
		Surface:    "#e4ddd0",
		Text:       "#3a342c",
		Muted:      "#6f675b",
		Faint:      "#a39a8a",
		Accent:     "#b4551f",
		Success:    "#4f7942",
		Warning:    "#9c6f1f",
		Danger:     "#a83f39",
	}
}
