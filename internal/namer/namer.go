// Package namer draws random reference colors and finds the reference name
// closest to an arbitrary hex color.
package namer

import (
	"math/rand/v2"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/reference"
)

// Picker returns an index in [0, n).
type Picker func(n int) int

// Option customizes a Namer.
type Option func(*Namer)

// WithPicker replaces the uniform random index source.
func WithPicker(p Picker) Option {
	return func(n *Namer) {
		if p != nil {
			n.pick = p
		}
	}
}

// Namer answers naming queries against one reference list.
type Namer struct {
	list *reference.List
	rgb  []codec.RGB
	pick Picker
}

// New builds a Namer over list. Reference channels are decoded once here.
func New(list *reference.List, opts ...Option) *Namer {
	n := &Namer{
		list: list,
		rgb:  make([]codec.RGB, list.Len()),
		pick: rand.IntN,
	}
	for i := 0; i < list.Len(); i++ {
		n.rgb[i] = codec.HexToRGB(list.At(i).Hex)
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// List exposes the underlying reference list.
func (n *Namer) List() *reference.List {
	return n.list
}

// Random draws an entry uniformly by index.
func (n *Namer) Random() reference.Entry {
	return n.list.At(n.pick(n.list.Len()))
}

// Closest returns the name of the reference entry at the smallest Euclidean
// RGB distance from hex. Ties go to the earliest entry.
func (n *Namer) Closest(hex string) string {
	return n.list.At(n.closestIndex(hex)).Name
}

// ClosestEntry is Closest returning the whole entry and its distance.
func (n *Namer) ClosestEntry(hex string) (reference.Entry, float64) {
	i := n.closestIndex(hex)
	return n.list.At(i), distance(codec.HexToRGB(hex), n.rgb[i])
}

func (n *Namer) closestIndex(hex string) int {
	query := codec.HexToRGB(hex)
	best := 0
	bestDist := -1
	for i, c := range n.rgb {
		d := squaredDistance(query, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	return best
}

func squaredDistance(a, b codec.RGB) int {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	return dr*dr + dg*dg + db*db
}
