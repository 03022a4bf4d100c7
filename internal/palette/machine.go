package palette

import (
	"fmt"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/hexcolor"
	"github.com/alexisbeaulieu97/swatch/internal/logger"
)

// Option customizes a Machine.
type Option func(*Machine)

// WithSize sets the minimum palette size restored by RegenerateAll.
func WithSize(n int) Option {
	return func(m *Machine) {
		if n > 0 {
			m.size = n
		}
	}
}

// WithDefaultFormats sets the formats used when none are stored.
func WithDefaultFormats(set codec.FormatSet) Option {
	return func(m *Machine) {
		m.formats = set
	}
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(m *Machine) {
		if log != nil {
			m.log = log
		}
	}
}

// Machine owns the palette and display formats. Every method is atomic and
// persists after a committed change. Machine is not safe for concurrent use.
type Machine struct {
	colors  []Entry
	formats codec.FormatSet
	size    int

	gen     Generator
	storage Storage
	log     *logger.Logger
}

// New restores state from storage. Stored entries with an invalid hex are
// dropped, and an empty palette is regenerated before New returns.
func New(gen Generator, storage Storage, opts ...Option) *Machine {
	if storage == nil {
		storage = nopStorage{}
	}

	m := &Machine{
		formats: codec.DefaultFormatSet(),
		size:    DefaultSize,
		gen:     gen,
		storage: storage,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if stored, ok := storage.LoadPalette(); ok {
		for i, e := range stored {
			if !e.Valid() {
				m.log.WithFields(map[string]any{"index": i, "hex": e.Hex}).Warn("dropping stored entry with invalid hex")
				continue
			}
			m.colors = append(m.colors, e)
		}
	}
	if formats, ok := storage.LoadFormats(); ok {
		m.formats = formats
	}

	if len(m.colors) == 0 {
		m.log.Debug("palette is empty, regenerating")
		m.RegenerateAll()
	}
	return m
}

// Colors returns a copy of the palette.
func (m *Machine) Colors() []Entry {
	return append([]Entry(nil), m.colors...)
}

// At returns entry i and whether it exists.
func (m *Machine) At(i int) (Entry, bool) {
	if !m.inRange(i) {
		return Entry{}, false
	}
	return m.colors[i], true
}

// Len returns the number of entries.
func (m *Machine) Len() int {
	return len(m.colors)
}

// Size returns the minimum size restored by RegenerateAll.
func (m *Machine) Size() int {
	return m.size
}

// Formats returns the display format set.
func (m *Machine) Formats() codec.FormatSet {
	return m.formats
}

// RegenerateAll replaces every unpinned entry with a fresh draw, then tops
// the palette up to the minimum size.
func (m *Machine) RegenerateAll() {
	next := make([]Entry, 0, max(len(m.colors), m.size))
	for _, e := range m.colors {
		if e.Pinned {
			next = append(next, e)
			continue
		}
		next = append(next, fromReference(m.gen.Random()))
	}
	for len(next) < m.size {
		next = append(next, fromReference(m.gen.Random()))
	}
	m.commit(next)
}

// RegenerateOne replaces unpinned entry i with a fresh draw.
func (m *Machine) RegenerateOne(i int) bool {
	if !m.inRange(i) || m.colors[i].Pinned {
		return false
	}
	next := m.Colors()
	next[i] = fromReference(m.gen.Random())
	m.commit(next)
	return true
}

// TogglePin flips the pin on entry i.
func (m *Machine) TogglePin(i int) bool {
	if !m.inRange(i) {
		return false
	}
	next := m.Colors()
	next[i].Pinned = !next[i].Pinned
	m.commit(next)
	return true
}

// Remove deletes unpinned entry i. Removing the last entry regenerates the
// palette.
func (m *Machine) Remove(i int) bool {
	if !m.inRange(i) || m.colors[i].Pinned {
		return false
	}
	next := make([]Entry, 0, len(m.colors)-1)
	next = append(next, m.colors[:i]...)
	next = append(next, m.colors[i+1:]...)
	if len(next) == 0 {
		m.colors = next
		m.RegenerateAll()
		return true
	}
	m.commit(next)
	return true
}

// EditHex sets entry i to hex and renames it. The pin is kept.
func (m *Machine) EditHex(i int, hex string) bool {
	if !m.inRange(i) || !hexcolor.IsValid(hex) {
		return false
	}
	next := m.Colors()
	next[i].Hex = hex
	next[i].Name = m.gen.Closest(hex)
	m.commit(next)
	return true
}

// SetFormats replaces the display format set.
func (m *Machine) SetFormats(set codec.FormatSet) {
	m.formats = set
	m.storage.SaveFormats(set)
}

// ToggleFormat flips a single display format.
func (m *Machine) ToggleFormat(f codec.Format) {
	m.SetFormats(m.formats.Toggle(f))
}

func (m *Machine) inRange(i int) bool {
	return i >= 0 && i < len(m.colors)
}

func (m *Machine) commit(next []Entry) {
	m.colors = next
	m.storage.SavePalette(m.Colors())
}

// Describe renders entry i for notices, e.g. `#1a2b3c "Ink" (pinned)`.
func (m *Machine) Describe(i int) string {
	e, ok := m.At(i)
	if !ok {
		return fmt.Sprintf("no entry at index %d", i)
	}
	s := fmt.Sprintf("%s %q", e.Hex, e.Name)
	if e.Pinned {
		s += " (pinned)"
	}
	return s
}
