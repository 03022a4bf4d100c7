package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestViewShowsEntriesAndFormats(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 160, Height: 40})
	m, _ = send(t, m, keyRunes("2"))

	view := m.View()
	for _, e := range m.machine.Colors() {
		assert.Contains(t, view, e.Name)
		assert.Contains(t, view, e.Hex)
	}
	assert.Contains(t, view, "rgb(0, 0, 0)")
	assert.Contains(t, view, "1:HEX")
	assert.Contains(t, view, "q: quit")
}

func TestViewShowsEditorAndNotice(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, keyRunes("e"))
	assert.Contains(t, m.View(), "Editing color 1")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, keyRunes("n"))
	assert.Contains(t, m.View(), "Regenerated palette")
}

func TestPinGlyph(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Equal(t, "●", m.pinGlyph(true))
	assert.Equal(t, "○", m.pinGlyph(false))

	m.useUnicode = false
	assert.Equal(t, "*", m.pinGlyph(true))
	assert.Equal(t, "-", m.pinGlyph(false))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Red", truncate("Red", 10))
	assert.Equal(t, "Light Gol…", truncate("Light Goldenrod Yellow", 10))
}
