package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

var testPalette = BoxPalette{
	Border:     lipgloss.Color("#273540"),
	Background: lipgloss.Color("#16161d"),
	Foreground: lipgloss.Color("#d7d9da"),
	Title:      lipgloss.Color("#7f57b4"),
}

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 0, boxWidth(0))
	assert.Equal(t, 40, boxWidth(50))
	assert.Equal(t, 70, boxWidth(100))
	assert.Equal(t, 80, boxWidth(200))
	assert.Equal(t, 30, safeBoxWidth(30))
}

func TestBoxContainsContent(t *testing.T) {
	out := SanitizeText(Box("Hello World!", 100, testPalette))
	assert.Contains(t, out, "Hello World!")
	assert.Contains(t, out, "╭")
}

func TestTitledBoxPlacesTitleInBorder(t *testing.T) {
	out := SanitizeText(TitledBox("Page Engagement", "body", 100, testPalette))
	first := strings.Split(out, "\n")[0]
	assert.Contains(t, first, "[ Page Engagement ]")
	assert.True(t, strings.HasPrefix(first, "╭"))
	assert.Contains(t, out, "body")
}

func TestClampTextWidth(t *testing.T) {
	assert.Equal(t, "short", ClampTextWidth("short", 10))
	assert.Equal(t, "abcd…", ClampTextWidth("abcdefgh", 5))
	assert.Equal(t, "a b", ClampTextWidth("a\nb", 0))
}
