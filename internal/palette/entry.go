// Package palette implements the palette state machine: the ordered list of
// color entries, their pins, and the display format selection.
package palette

import (
	"github.com/alexisbeaulieu97/swatch/internal/hexcolor"
	"github.com/alexisbeaulieu97/swatch/internal/reference"
)

// DefaultSize is the minimum number of entries after a regeneration.
const DefaultSize = 5

// Entry is one palette slot.
type Entry struct {
	Hex    string `json:"hex"`
	Name   string `json:"name"`
	Pinned bool   `json:"isPinned"`
}

// Valid reports whether the entry's hex is a six-digit color.
func (e Entry) Valid() bool {
	return hexcolor.IsValid(e.Hex)
}

func fromReference(r reference.Entry) Entry {
	return Entry{Hex: r.Hex, Name: r.Name}
}

// Generator draws random reference colors and names arbitrary ones.
type Generator interface {
	Random() reference.Entry
	Closest(hex string) string
}
