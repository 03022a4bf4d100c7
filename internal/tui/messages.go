package tui

import (
	"github.com/alexisbeaulieu97/swatch/internal/export"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewPalette ViewMode = iota
	ViewEdit
	ViewHelp
)

// removeReadyMsg fires once the removal delay for an entry has elapsed.
type removeReadyMsg struct {
	Index int
	Hex   string
}

// editCommitMsg is a debounced hex commit. Seq identifies the keystroke
// that scheduled it; anything but the latest is stale.
type editCommitMsg struct {
	Seq int
}

// ExportDoneMsg reports the outcome of an export.
type ExportDoneMsg struct {
	Kind export.Kind
	Path string
	Err  error
}
