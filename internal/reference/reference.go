// Package reference holds the immutable table of named colors used for
// random draws and nearest-name lookups.
package reference

import (
	"fmt"

	"github.com/alexisbeaulieu97/swatch/internal/hexcolor"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Entry is a single named reference color.
type Entry struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Hex  string `json:"hex" yaml:"hex" toml:"hex"`
}

// List is an ordered, read-only collection of entries. Order is significant:
// nearest-name ties resolve to the earliest entry.
type List struct {
	entries []Entry
	source  string
}

// NewList validates entries and copies them into a List.
func NewList(source string, entries []Entry) (*List, error) {
	if len(entries) == 0 {
		return nil, swatcherrors.NewValidationError("colors", "reference list is empty", nil)
	}

	copied := make([]Entry, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, swatcherrors.NewValidationError(fmt.Sprintf("colors[%d].name", i), "name is required", nil)
		}
		if !hexcolor.IsValid(e.Hex) {
			return nil, swatcherrors.NewValidationError(fmt.Sprintf("colors[%d].hex", i),
				fmt.Sprintf("%q (%s) is not a #rrggbb color", e.Hex, e.Name), nil)
		}
		copied[i] = e
	}

	return &List{entries: copied, source: source}, nil
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// At returns the entry at index i.
func (l *List) At(i int) Entry {
	return l.entries[i]
}

// Entries returns a copy of every entry in order.
func (l *List) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Contains reports whether the exact (name, hex) pair is present.
func (l *List) Contains(e Entry) bool {
	for _, candidate := range l.entries {
		if candidate == e {
			return true
		}
	}
	return false
}

// Source describes where the list came from ("builtin" or a file path).
func (l *List) Source() string {
	return l.source
}
