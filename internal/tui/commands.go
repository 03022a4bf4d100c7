package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/export"
)

// removeAfterCmd delivers removeReadyMsg once the fade-out delay elapses.
func removeAfterCmd(delay time.Duration, index int, hex string) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return removeReadyMsg{Index: index, Hex: hex}
	})
}

// debounceCmd schedules the commit of edit number seq.
func debounceCmd(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return editCommitMsg{Seq: seq}
	})
}

// exportCmd renders an artifact off the update loop from a snapshot.
func exportCmd(fn ExportFunc, kind export.Kind, swatches []export.Swatch, formats codec.FormatSet) tea.Cmd {
	return func() tea.Msg {
		path, err := fn(kind, swatches, formats)
		return ExportDoneMsg{Kind: kind, Path: path, Err: err}
	}
}
