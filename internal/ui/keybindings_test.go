package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyHelpers(t *testing.T) {
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}))
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.False(t, isQuit(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}))

	assert.True(t, isRefresh(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}))
	assert.False(t, isRefresh(tea.KeyMsg{Type: tea.KeyEnter}))
}
