package components

import "github.com/charmbracelet/lipgloss"

var (
	hintKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1)
	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
	statusBarStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingTop(1)
)

// StatusBar renders the bottom hint bar, wrapping hints to fit width.
func StatusBar(hints []string, width int) string {
	rows := wrapSegments(hints, width)
	if len(rows) == 0 {
		return ""
	}
	return statusBarStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Hint formats a single keybind hint like "Quit q".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + hintKeyStyle.Render(key) + "  "
}

func wrapSegments(segments []string, width int) []string {
	if len(segments) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, segments...)}
	}
	rows := make([]string, 0, 2)
	var current []string
	currentWidth := 0
	for _, seg := range segments {
		segWidth := lipgloss.Width(seg)
		if currentWidth > 0 && currentWidth+segWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = []string{seg}
			currentWidth = segWidth
			continue
		}
		current = append(current, seg)
		currentWidth += segWidth
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return rows
}
