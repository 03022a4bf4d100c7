// Package export renders a palette snapshot as CSS custom properties, a PNG
// image or a PDF document.
package export

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Swatch is the exported view of a palette entry.
type Swatch struct {
	Hex  string
	Name string
}

// FromPalette snapshots palette entries for export.
func FromPalette(entries []palette.Entry) []Swatch {
	out := make([]Swatch, len(entries))
	for i, e := range entries {
		out[i] = Swatch{Hex: e.Hex, Name: e.Name}
	}
	return out
}

// Hexes returns the hex value of every swatch.
func Hexes(swatches []Swatch) []string {
	out := make([]string, len(swatches))
	for i, s := range swatches {
		out[i] = s.Hex
	}
	return out
}

// Kind identifies an export artifact.
type Kind string

const (
	KindCSS Kind = "css"
	KindPNG Kind = "png"
	KindPDF Kind = "pdf"
)

// Kinds lists every artifact kind in the order All writes them.
func Kinds() []Kind {
	return []Kind{KindCSS, KindPNG, KindPDF}
}

// ParseKind accepts "css", "png"/"image" and "pdf"/"document".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "css":
		return KindCSS, nil
	case "png", "image":
		return KindPNG, nil
	case "pdf", "document":
		return KindPDF, nil
	default:
		return "", fmt.Errorf("unknown export kind %q (expected css, png or pdf)", s)
	}
}

// FileName is the default artifact name for k.
func (k Kind) FileName() string {
	return "palette." + string(k)
}

// Options bundles per-artifact settings.
type Options struct {
	Image    ImageOptions
	Document DocumentOptions
}

// DefaultOptions returns the default settings for every artifact.
func DefaultOptions() Options {
	return Options{Image: DefaultImageOptions(), Document: DefaultDocumentOptions()}
}

// Render produces the bytes of one artifact.
func Render(kind Kind, swatches []Swatch, formats codec.FormatSet, opts Options) ([]byte, error) {
	switch kind {
	case KindCSS:
		if len(swatches) == 0 {
			return nil, swatcherrors.NewExportError(string(kind), errEmpty)
		}
		return []byte(CSS(Hexes(swatches), formats)), nil
	case KindPNG:
		return Image(swatches, formats, opts.Image)
	case KindPDF:
		return Document(swatches, formats, opts.Document)
	default:
		return nil, swatcherrors.NewExportError(string(kind), fmt.Errorf("unsupported artifact"))
	}
}

var errEmpty = fmt.Errorf("palette has no colors")
