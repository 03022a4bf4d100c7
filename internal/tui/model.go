// Package tui is the interactive palette editor.
package tui

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/export"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
	"github.com/alexisbeaulieu97/swatch/internal/store"
)

// ExportFunc writes one artifact and returns where it went.
type ExportFunc func(kind export.Kind, swatches []export.Swatch, formats codec.FormatSet) (string, error)

// DirExporter writes artifacts under dir using their default file names.
func DirExporter(dir string, opts export.Options) ExportFunc {
	return func(kind export.Kind, swatches []export.Swatch, formats codec.FormatSet) (string, error) {
		path := filepath.Join(dir, kind.FileName())
		if err := export.WriteFile(path, kind, swatches, formats, opts); err != nil {
			return "", err
		}
		return path, nil
	}
}

// Options configures the model.
type Options struct {
	Debounce    time.Duration
	RemoveDelay time.Duration
	Export      ExportFunc
	Logger      *logger.Logger
	Unicode     bool
	Theme       store.ThemeConfig
}

// Model is the Bubbletea state of the palette editor.
type Model struct {
	machine *palette.Machine

	// UI state
	viewMode ViewMode
	cursor   int
	notice   string

	// Pending removal. Further removal requests are dropped until it lands.
	removing    bool
	removeIndex int

	// Hex editor
	input     textinput.Model
	editIndex int
	editSeq   int

	showError bool
	errorMsg  string

	width  int
	height int

	debounce    time.Duration
	removeDelay time.Duration
	exportFn    ExportFunc
	log         *logger.Logger
	useUnicode  bool
	theme       Theme
}

// NewModel creates a model over machine.
func NewModel(machine *palette.Machine, opts Options) Model {
	input := textinput.New()
	input.Prompt = "hex "
	input.CharLimit = 7
	input.Placeholder = "#rrggbb"

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return Model{
		machine:     machine,
		viewMode:    ViewPalette,
		input:       input,
		width:       80,
		height:      24,
		debounce:    opts.Debounce,
		removeDelay: opts.RemoveDelay,
		exportFn:    opts.Export,
		log:         log,
		useUnicode:  opts.Unicode,
		theme:       ThemeFrom(opts.Theme),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the selected entry index.
func (m Model) Cursor() int {
	return m.cursor
}

// Mode returns the active view.
func (m Model) Mode() ViewMode {
	return m.viewMode
}

// Notice returns the last status line message.
func (m Model) Notice() string {
	return m.notice
}

// Removing reports whether a removal is waiting for its delay.
func (m Model) Removing() bool {
	return m.removing
}

func (m *Model) moveCursor(delta int) {
	n := m.machine.Len()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) clampCursor() {
	if n := m.machine.Len(); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}
