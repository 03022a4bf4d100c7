package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/export"
	"github.com/alexisbeaulieu97/swatch/internal/hexcolor"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case removeReadyMsg:
		return m.finishRemoval(msg), nil

	case editCommitMsg:
		if msg.Seq != m.editSeq || m.viewMode != ViewEdit {
			// superseded by a later keystroke, or the editor was closed
			return m, nil
		}
		m.commitEdit()
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "export failed")
			m.showError = true
			m.errorMsg = fmt.Sprintf("Export failed: %v", msg.Err)
			return m, nil
		}
		m.notice = fmt.Sprintf("Exported %s to %s", msg.Kind, msg.Path)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewEdit:
		return m.handleEditKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handlePaletteKeys(msg)
	}
}

func (m Model) handlePaletteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit

	case "esc":
		m.showError = false
		m.errorMsg = ""
		m.notice = ""
		return m, nil

	// Navigation
	case "left", "h", "shift+tab":
		m.moveCursor(-1)
		return m, nil

	case "right", "l", "tab":
		m.moveCursor(1)
		return m, nil

	case "n", "N":
		m.machine.RegenerateAll()
		m.clampCursor()
		m.notice = "Regenerated palette"
		return m, nil

	case "r":
		if !m.machine.RegenerateOne(m.cursor) {
			m.notice = "Pinned colors cannot be regenerated"
		}
		return m, nil

	case " ", "p":
		if m.machine.TogglePin(m.cursor) {
			if e, _ := m.machine.At(m.cursor); e.Pinned {
				m.notice = "Pinned " + e.Name
			} else {
				m.notice = "Unpinned " + e.Name
			}
		}
		return m, nil

	case "x", "delete":
		return m.startRemoval()

	case "e", "enter":
		return m.openEditor()

	case "1", "2", "3", "4", "5", "6":
		f := codec.Formats()[int(key[0]-'1')]
		m.machine.ToggleFormat(f)
		return m, nil

	case "c", "i", "f":
		kinds := map[string]export.Kind{"c": export.KindCSS, "i": export.KindPNG, "f": export.KindPDF}
		return m.startExport(kinds[key])

	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.viewMode = ViewPalette
	}
	return m, nil
}

func (m Model) startRemoval() (tea.Model, tea.Cmd) {
	if m.removing {
		m.notice = "A removal is already in progress"
		return m, nil
	}
	e, ok := m.machine.At(m.cursor)
	if !ok {
		return m, nil
	}
	if e.Pinned {
		m.notice = "Pinned colors cannot be removed"
		return m, nil
	}

	m.removing = true
	m.removeIndex = m.cursor
	return m, removeAfterCmd(m.removeDelay, m.cursor, e.Hex)
}

func (m Model) finishRemoval(msg removeReadyMsg) Model {
	m.removing = false

	// the palette may have been regenerated while the entry faded out
	if e, ok := m.machine.At(msg.Index); !ok || e.Hex != msg.Hex || e.Pinned {
		m.notice = "Removal skipped: the color changed"
		return m
	}
	m.machine.Remove(msg.Index)
	m.clampCursor()
	return m
}

func (m Model) openEditor() (tea.Model, tea.Cmd) {
	e, ok := m.machine.At(m.cursor)
	if !ok {
		return m, nil
	}
	m.viewMode = ViewEdit
	m.editIndex = m.cursor
	m.input.SetValue(e.Hex)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editSeq++
		m.commitEdit()
		m.closeEditor()
		return m, nil
	case "esc":
		m.editSeq++
		m.closeEditor()
		return m, nil
	}

	candidate, cmd := m.input.Update(msg)
	if candidate.Value() == m.input.Value() {
		// cursor movement or blink
		m.input = candidate
		return m, cmd
	}
	if !hexcolor.IsPartial(candidate.Value()) {
		return m, nil
	}

	m.input = candidate
	m.editSeq++
	return m, tea.Batch(cmd, debounceCmd(m.debounce, m.editSeq))
}

// commitEdit applies the buffer when it is a complete hex color.
func (m *Model) commitEdit() {
	value := m.input.Value()
	if !hexcolor.IsValid(value) {
		return
	}
	if e, ok := m.machine.At(m.editIndex); ok && e.Hex == value {
		return
	}
	if m.machine.EditHex(m.editIndex, value) {
		e, _ := m.machine.At(m.editIndex)
		m.notice = fmt.Sprintf("Set color %d to %s (%s)", m.editIndex+1, e.Hex, e.Name)
	}
}

func (m *Model) closeEditor() {
	m.input.Blur()
	m.viewMode = ViewPalette
}

func (m Model) startExport(kind export.Kind) (tea.Model, tea.Cmd) {
	if m.exportFn == nil {
		m.notice = "Export is not configured"
		return m, nil
	}
	m.notice = fmt.Sprintf("Exporting %s...", kind)
	return m, exportCmd(m.exportFn, kind, export.FromPalette(m.machine.Colors()), m.machine.Formats())
}
