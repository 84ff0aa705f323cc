package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/pagepanel/internal/ui/components"
)

// renderPanel paints layout elements inside a box colored for the theme,
// with title set into the top border.
func renderPanel(elements []Element, p Palette, width int, title string) string {
	contentWidth := components.BoxContentWidth(width)
	lines := make([]string, 0, len(elements))
	for _, el := range elements {
		lines = append(lines, renderElement(el, p, contentWidth))
	}
	box := components.BoxPalette{
		Border:     p.Border,
		Background: p.Background,
		Foreground: p.Text,
		Title:      p.Brand,
	}
	return components.TitledBox(title, strings.Join(lines, "\n\n"), width, box)
}

func renderElement(el Element, p Palette, width int) string {
	text := components.ClampTextWidth(el.Text, width)
	base := lipgloss.NewStyle().Foreground(p.Text).Background(p.Background)

	switch el.Kind {
	case ElementLoading:
		return base.Foreground(p.Muted).Render(text)

	case ElementHeading:
		style := base.Bold(true)
		if el.Variant == VariantBrand {
			style = style.Foreground(p.Brand)
		}
		if el.Size == HeadingXLarge {
			style = style.Underline(true)
		}
		return style.Render(text)

	case ElementThemeLabel:
		lozenge := LozengeSuccessStyle
		if el.Variant == VariantRemoved {
			lozenge = LozengeRemovedStyle
		}
		return base.Render(el.Text) + lozenge.Render(strings.ToUpper(el.Badge))

	case ElementComment:
		return base.Italic(true).Foreground(p.Muted).Render(text)
	}

	if el.Variant == VariantAccent {
		return base.Bold(true).Foreground(p.Accent).Render(text)
	}
	return base.Render(text)
}
