package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the chrome around the preview. The preview itself always shows
// the rendered colors.
type Theme struct {
	Name      string
	TitleFrom lipgloss.Color
	TitleTo   lipgloss.Color
	Label     lipgloss.Color
	Value     lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeNeon = Theme{
		Name:      "neon",
		TitleFrom: lipgloss.Color("#ff00ff"),
		TitleTo:   lipgloss.Color("#00ffff"),
		Label:     lipgloss.Color("#888899"),
		Value:     lipgloss.Color("#00ccff"),
		Muted:     lipgloss.Color("#555566"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemePhosphor = Theme{
		Name:      "phosphor",
		TitleFrom: lipgloss.Color("#00ff00"),
		TitleTo:   lipgloss.Color("#88ff88"),
		Label:     lipgloss.Color("#00aa00"),
		Value:     lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Error:     lipgloss.Color("#ffff00"),
	}

	ThemeEmber = Theme{
		Name:      "ember",
		TitleFrom: lipgloss.Color("#ff6b6b"),
		TitleTo:   lipgloss.Color("#feca57"),
		Label:     lipgloss.Color("#8b6b8c"),
		Value:     lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#5a4a5b"),
		Error:     lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{ThemeNeon, ThemePhosphor, ThemeEmber}
)

// GetTheme returns a theme by name, falling back to the first.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
