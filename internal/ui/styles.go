package ui

import "github.com/charmbracelet/lipgloss"

// --- Chrome Colors ---

var (
	ColorPrimary = lipgloss.Color("#7f57b4") // purple
	ColorMuted   = lipgloss.Color("#9ba0bf") // muted text
)

// --- Theme Palettes ---

// Palette holds the colors of one color mode.
type Palette struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Border     lipgloss.Color
	Brand      lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
}

var (
	LightPalette = Palette{
		Background: lipgloss.Color("#FFFFFF"),
		Text:       lipgloss.Color("#172B4D"),
		Border:     lipgloss.Color("#8590A2"),
		Brand:      lipgloss.Color("#0C66E4"),
		Accent:     lipgloss.Color("#1D7AFC"),
		Muted:      lipgloss.Color("#44546F"),
	}

	DarkPalette = Palette{
		Background: lipgloss.Color("#5E4DB2"),
		Text:       lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#9F8FEF"),
		Brand:      lipgloss.Color("#CCE0FF"),
		Accent:     lipgloss.Color("#85B8FF"),
		Muted:      lipgloss.Color("#DFD8FD"),
	}
)

func paletteFor(mode ThemeMode) Palette {
	if mode == ThemeDark {
		return DarkPalette
	}
	return LightPalette
}

// --- Reusable Styles ---

var (
	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			PaddingLeft(2).
			PaddingTop(1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	LozengeSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#216E4E")).
				Background(lipgloss.Color("#DCFFF1")).
				Bold(true).
				Padding(0, 1)

	LozengeRemovedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#AE2E24")).
				Background(lipgloss.Color("#FFECEB")).
				Bold(true).
				Padding(0, 1)
)
