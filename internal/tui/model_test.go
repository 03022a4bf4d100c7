package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/export"
	"github.com/alexisbeaulieu97/swatch/internal/namer"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
	"github.com/alexisbeaulieu97/swatch/internal/reference"
	"github.com/alexisbeaulieu97/swatch/internal/store"
)

func newTestMachine(t *testing.T) *palette.Machine {
	t.Helper()
	list, err := reference.NewList("test", []reference.Entry{
		{Name: "Black", Hex: "#000000"},
		{Name: "White", Hex: "#ffffff"},
		{Name: "Red", Hex: "#ff0000"},
		{Name: "Ink", Hex: "#1a2b3c"},
		{Name: "Gold", Hex: "#ffd700"},
		{Name: "Teal", Hex: "#008080"},
	})
	require.NoError(t, err)

	next := 0
	gen := namer.New(list, namer.WithPicker(func(n int) int {
		i := next % n
		next++
		return i
	}))
	return palette.New(gen, palette.NewStoreAdapter(store.NewMemory(), nil))
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(newTestMachine(t), Options{
		Debounce:    500 * time.Millisecond,
		RemoveDelay: 300 * time.Millisecond,
		Unicode:     true,
	})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Equal(t, ViewPalette, m.Mode())
	assert.Equal(t, 0, m.Cursor())
	assert.False(t, m.Removing())
	assert.Nil(t, m.Init())
}

func TestWindowSize(t *testing.T) {
	t.Parallel()

	m, _ := send(t, newTestModel(t), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestCursorWraps(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 4, m.Cursor())

	m, _ = send(t, m, keyRunes("l"))
	assert.Equal(t, 0, m.Cursor())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.Cursor())
}

func TestRegenerateKeyKeepsPinned(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	pinned, _ := m.machine.At(0)
	require.True(t, pinned.Pinned)

	for _, key := range []string{"n", "N"} {
		m, _ = send(t, m, keyRunes(key))
		got, _ := m.machine.At(0)
		assert.Equal(t, pinned, got)
		assert.Equal(t, 5, m.machine.Len())
	}
	assert.Equal(t, "Regenerated palette", m.Notice())
}

func TestRegenerateOnePinnedShowsNotice(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, keyRunes("p"))
	before := m.machine.Colors()

	m, _ = send(t, m, keyRunes("r"))
	assert.Equal(t, before, m.machine.Colors())
	assert.Contains(t, m.Notice(), "cannot be regenerated")
}

func TestRemoveWaitsForDelay(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, keyRunes("l"))
	target, _ := m.machine.At(1)

	m, cmd := send(t, m, keyRunes("x"))
	require.NotNil(t, cmd)
	assert.True(t, m.Removing())
	assert.Equal(t, 5, m.machine.Len(), "entry stays until the delay elapses")

	m, _ = send(t, m, removeReadyMsg{Index: 1, Hex: target.Hex})
	assert.False(t, m.Removing())
	assert.Equal(t, 4, m.machine.Len())
}

func TestSecondRemovalDuringPendingRemovalIsIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	first, _ := m.machine.At(0)

	m, cmd := send(t, m, keyRunes("x"))
	require.NotNil(t, cmd)

	m, _ = send(t, m, keyRunes("l"))
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	assert.Nil(t, cmd)
	assert.Equal(t, "A removal is already in progress", m.Notice())
	assert.Equal(t, 0, m.removeIndex)

	m, _ = send(t, m, removeReadyMsg{Index: 0, Hex: first.Hex})
	assert.Equal(t, 4, m.machine.Len())
	assert.False(t, m.Removing())
}

func TestRemovePinnedIsRejected(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, keyRunes("p"))

	m, cmd := send(t, m, keyRunes("x"))
	assert.Nil(t, cmd)
	assert.False(t, m.Removing())
	assert.Contains(t, m.Notice(), "cannot be removed")
}

func TestRemovalSkippedWhenColorChanged(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, keyRunes("x"))
	m, _ = send(t, m, removeReadyMsg{Index: 0, Hex: "#abcdef"})

	assert.Equal(t, 5, m.machine.Len())
	assert.False(t, m.Removing())
	assert.Contains(t, m.Notice(), "skipped")
}

func TestRemoveLastEntryRegenerates(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	for i := 0; i < 5; i++ {
		e, _ := m.machine.At(0)
		m, _ = send(t, m, keyRunes("x"))
		m, _ = send(t, m, removeReadyMsg{Index: 0, Hex: e.Hex})
	}
	assert.Equal(t, 5, m.machine.Len())
	assert.Equal(t, 0, m.Cursor())
}

func typeHex(t *testing.T, m Model, hex string) Model {
	t.Helper()
	for range 7 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	for _, r := range hex {
		m, _ = send(t, m, keyRunes(string(r)))
	}
	return m
}

func TestEditorDebouncesCommits(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, keyRunes("e"))
	require.Equal(t, ViewEdit, m.Mode())
	original, _ := m.machine.At(0)
	assert.Equal(t, original.Hex, m.input.Value())

	m = typeHex(t, m, "#1A2B3C")
	assert.Equal(t, "#1A2B3C", m.input.Value())
	staleSeq := m.editSeq - 1

	m, _ = send(t, m, editCommitMsg{Seq: staleSeq})
	got, _ := m.machine.At(0)
	assert.Equal(t, original.Hex, got.Hex, "stale commit is discarded")

	m, _ = send(t, m, editCommitMsg{Seq: m.editSeq})
	got, _ = m.machine.At(0)
	assert.Equal(t, "#1A2B3C", got.Hex)
	assert.Equal(t, "Ink", got.Name)
	assert.Equal(t, ViewEdit, m.Mode())
}

func TestEditorRejectsNonHexKeystrokes(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, keyRunes("e"))
	m = typeHex(t, m, "#12")
	seq := m.editSeq

	m, cmd := send(t, m, keyRunes("z"))
	assert.Nil(t, cmd)
	assert.Equal(t, "#12", m.input.Value())
	assert.Equal(t, seq, m.editSeq)
}

func TestEditorPartialValueDoesNotCommit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	original, _ := m.machine.At(0)
	m, _ = send(t, m, keyRunes("e"))
	m = typeHex(t, m, "#12")

	m, _ = send(t, m, editCommitMsg{Seq: m.editSeq})
	got, _ := m.machine.At(0)
	assert.Equal(t, original, got)
	assert.Equal(t, "#12", m.input.Value())
}

func TestEditorEnterCommitsImmediately(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, keyRunes("p"))
	m, _ = send(t, m, keyRunes("e"))
	m = typeHex(t, m, "#fe0000")
	pending := m.editSeq

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ViewPalette, m.Mode())
	got, _ := m.machine.At(0)
	assert.Equal(t, palette.Entry{Hex: "#fe0000", Name: "Red", Pinned: true}, got)

	// the debounced commit that was already scheduled is now stale
	m, _ = send(t, m, editCommitMsg{Seq: pending})
	assert.Equal(t, ViewPalette, m.Mode())
}

func TestEditorEscCancels(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	original, _ := m.machine.At(0)
	m, _ = send(t, m, keyRunes("e"))
	m = typeHex(t, m, "#123456")
	pending := m.editSeq

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewPalette, m.Mode())

	m, _ = send(t, m, editCommitMsg{Seq: pending})
	got, _ := m.machine.At(0)
	assert.Equal(t, original, got)
}

func TestFormatKeysToggleInDeclarationOrder(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, keyRunes("6"))
	m, _ = send(t, m, keyRunes("2"))
	m, _ = send(t, m, keyRunes("1"))

	assert.Equal(t, []codec.Format{codec.FormatRGB, codec.FormatCMYK}, m.machine.Formats().List())
}

func TestExportKeys(t *testing.T) {
	t.Parallel()

	var gotKind export.Kind
	var gotSwatches []export.Swatch
	m := NewModel(newTestMachine(t), Options{
		Export: func(kind export.Kind, swatches []export.Swatch, _ codec.FormatSet) (string, error) {
			gotKind = kind
			gotSwatches = swatches
			return "/tmp/" + kind.FileName(), nil
		},
	})

	m, cmd := send(t, m, keyRunes("f"))
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(ExportDoneMsg)
	require.True(t, ok)
	assert.Equal(t, export.KindPDF, gotKind)
	assert.Len(t, gotSwatches, 5)

	m, _ = send(t, m, done)
	assert.Equal(t, "Exported pdf to /tmp/palette.pdf", m.Notice())
}

func TestExportFailureShowsBanner(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, ExportDoneMsg{Kind: export.KindPNG, Err: errors.New("disk full")})
	assert.True(t, m.showError)
	assert.Contains(t, m.errorMsg, "disk full")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

func TestExportWithoutExporter(t *testing.T) {
	t.Parallel()

	m, cmd := send(t, newTestModel(t), keyRunes("c"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Export is not configured", m.Notice())
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m, _ := send(t, newTestModel(t), keyRunes("?"))
	assert.Equal(t, ViewHelp, m.Mode())
	assert.Contains(t, m.View(), "swatch help")

	m, _ = send(t, m, keyRunes("q"))
	assert.Equal(t, ViewPalette, m.Mode())
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	_, cmd := send(t, newTestModel(t), keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = send(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
