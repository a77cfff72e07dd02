package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/playback"
)

// Theme defines the chrome colors of the TUI. Bar colors come from palettes.
type Theme struct {
	Name     string
	Title    lipgloss.Color
	Button   lipgloss.Color // unselected algorithm button
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Playing  lipgloss.Color
	Idle     lipgloss.Color
	Progress lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Title:    lipgloss.Color("#00ffff"),
		Button:   lipgloss.Color("#363030"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666688"),
		Playing:  lipgloss.Color("#ff00ff"),
		Idle:     lipgloss.Color("#00ff88"),
		Progress: lipgloss.Color("#ffff00"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Title:    lipgloss.Color("#00ff00"), // green phosphor
		Button:   lipgloss.Color("#003300"),
		Text:     lipgloss.Color("#88ff88"),
		Muted:    lipgloss.Color("#005500"),
		Playing:  lipgloss.Color("#ffff00"),
		Idle:     lipgloss.Color("#00cc00"),
		Progress: lipgloss.Color("#88ff88"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Title:    lipgloss.Color("#ffffff"),
		Button:   lipgloss.Color("#333333"),
		Text:     lipgloss.Color("#cccccc"),
		Muted:    lipgloss.Color("#888888"),
		Playing:  lipgloss.Color("#0088ff"),
		Idle:     lipgloss.Color("#ffffff"),
		Progress: lipgloss.Color("#0088ff"),
	}

	Themes = []Theme{ThemeCyberpunk, ThemeRetroGreen, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after current in Themes.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
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

// Bar colors per algorithm: normal bars and the pair being compared.
var (
	DefaultPalette = playback.Palette{Normal: "#9b9b9b", Compare: "#ffffff"}

	Palettes = map[string]playback.Palette{
		"quick":  {Normal: "#68bbd6", Compare: "#1c6c87"},
		"heap":   {Normal: "#a977ea", Compare: "#50218d"},
		"merge":  {Normal: "#f47b89", Compare: "#8c1a27"},
		"bubble": {Normal: "#5abe91", Compare: "#15754a"},
	}
)

func PaletteFor(algorithm string) playback.Palette {
	if p, ok := Palettes[algorithm]; ok {
		return p
	}
	return DefaultPalette
}
