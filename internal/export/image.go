package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/hexcolor"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

const (
	minColumnWidth = 300
	footerHeight   = 100
	captionMargin  = 50

	nameSize    = 32
	formatSize  = 24
	captionSize = 48
	cellPadding = 24
	lineGap     = 10
)

// ImageOptions controls the PNG canvas.
type ImageOptions struct {
	Width      int
	Height     int
	Caption    string
	Background string
}

// DefaultImageOptions returns a white 1920x1080 canvas captioned "palette".
func DefaultImageOptions() ImageOptions {
	return ImageOptions{Width: 1920, Height: 1080, Caption: "palette", Background: "#ffffff"}
}

func (o ImageOptions) withDefaults() ImageOptions {
	d := DefaultImageOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= footerHeight {
		o.Height = d.Height
	}
	if o.Caption == "" {
		o.Caption = d.Caption
	}
	if !hexcolor.IsValid(o.Background) {
		o.Background = d.Background
	}
	return o
}

// ImageCell is one colored grid cell.
type ImageCell struct {
	Swatch Swatch
	Bounds image.Rectangle
	Fill   color.RGBA
	// Text is "black" or "white".
	Text  string
	Lines []string
}

// ImageLayout is the computed grid for a PNG export.
// CaptionText is "black" or "white", contrasting with Background.
type ImageLayout struct {
	Width       int
	Height      int
	Columns     int
	Rows        int
	CellHeight  int
	Cells       []ImageCell
	Background  color.RGBA
	Caption     string
	CaptionText string
	CaptionAt   image.Point
}

// PlanImage lays swatches out on a grid of min(n, width/300) columns. Rows
// share the canvas height above the caption footer.
func PlanImage(swatches []Swatch, formats codec.FormatSet, opts ImageOptions) ImageLayout {
	opts = opts.withDefaults()
	layout := ImageLayout{
		Width:       opts.Width,
		Height:      opts.Height,
		Background:  rgba(opts.Background),
		Caption:     opts.Caption,
		CaptionText: codec.TextColor(opts.Background),
		CaptionAt:   image.Pt(captionMargin, opts.Height-captionMargin),
	}

	n := len(swatches)
	if n == 0 {
		return layout
	}

	layout.Columns = max(1, min(n, opts.Width/minColumnWidth))
	layout.Rows = (n + layout.Columns - 1) / layout.Columns
	layout.CellHeight = (opts.Height - footerHeight) / layout.Rows

	layout.Cells = make([]ImageCell, n)
	for i, s := range swatches {
		col, row := i%layout.Columns, i/layout.Columns
		x0 := col * opts.Width / layout.Columns
		x1 := (col + 1) * opts.Width / layout.Columns
		y0 := row * layout.CellHeight

		layout.Cells[i] = ImageCell{
			Swatch: s,
			Bounds: image.Rect(x0, y0, x1, y0+layout.CellHeight),
			Fill:   rgba(s.Hex),
			Text:   codec.TextColor(s.Hex),
			Lines:  append([]string{s.Name}, codec.RenderAll(s.Hex, formats)...),
		}
	}
	return layout
}

func rgba(hex string) color.RGBA {
	c := codec.HexToRGB(hex)
	return color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
}

func inkFor(text string) image.Image {
	if text == "white" {
		return image.White
	}
	return image.Black
}

type faces struct {
	name, format, caption font.Face
}

func (f faces) Close() {
	for _, face := range []font.Face{f.name, f.format, f.caption} {
		if face != nil {
			_ = face.Close()
		}
	}
}

var (
	fontsOnce     sync.Once
	regular, bold *opentype.Font
	fontsErr      error
)

func parseFonts() error {
	fontsOnce.Do(func() {
		regular, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		bold, fontsErr = opentype.Parse(gobold.TTF)
	})
	return fontsErr
}

// newFaces builds fresh faces; a face must not be shared across goroutines.
func newFaces() (faces, error) {
	if err := parseFonts(); err != nil {
		return faces{}, fmt.Errorf("parse font: %w", err)
	}

	var fc faces
	specs := []struct {
		dst  *font.Face
		font *opentype.Font
		size float64
	}{
		{&fc.name, bold, nameSize},
		{&fc.format, regular, formatSize},
		{&fc.caption, bold, captionSize},
	}
	for _, spec := range specs {
		face, err := opentype.NewFace(spec.font, &opentype.FaceOptions{Size: spec.size, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			fc.Close()
			return faces{}, fmt.Errorf("create font face: %w", err)
		}
		*spec.dst = face
	}
	return fc, nil
}

// Image renders the planned grid to PNG bytes.
func Image(swatches []Swatch, formats codec.FormatSet, opts ImageOptions) ([]byte, error) {
	if len(swatches) == 0 {
		return nil, swatcherrors.NewExportError(string(KindPNG), errEmpty)
	}
	layout := PlanImage(swatches, formats, opts)

	fc, err := newFaces()
	if err != nil {
		return nil, swatcherrors.NewExportError(string(KindPNG), err)
	}
	defer fc.Close()

	canvas := image.NewRGBA(image.Rect(0, 0, layout.Width, layout.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(layout.Background), image.Point{}, draw.Src)

	for _, cell := range layout.Cells {
		draw.Draw(canvas, cell.Bounds, image.NewUniform(cell.Fill), image.Point{}, draw.Src)

		ink := inkFor(cell.Text)
		y := cell.Bounds.Min.Y + cellPadding
		for i, line := range cell.Lines {
			face := fc.format
			if i == 0 {
				face = fc.name
			}
			y += face.Metrics().Ascent.Ceil()
			if y > cell.Bounds.Max.Y-cellPadding {
				break
			}
			drawText(canvas, face, ink, cell.Bounds.Min.X+cellPadding, y, line)
			y += face.Metrics().Descent.Ceil() + lineGap
		}
	}

	if layout.Caption != "" {
		// vertically centered on the caption point
		m := fc.caption.Metrics()
		baseline := layout.CaptionAt.Y + (m.Ascent.Ceil()-m.Descent.Ceil())/2
		drawText(canvas, fc.caption, inkFor(layout.CaptionText), layout.CaptionAt.X, baseline, layout.Caption)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, swatcherrors.NewExportError(string(KindPNG), err)
	}
	return buf.Bytes(), nil
}

func drawText(dst draw.Image, face font.Face, ink image.Image, x, y int, text string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  ink,
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// DataURL encodes PNG bytes as a data URL.
func DataURL(pngBytes []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}
