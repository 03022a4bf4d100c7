package export

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	"github.com/alexisbeaulieu97/swatch/internal/palette"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

func swatches(n int) []Swatch {
	base := []Swatch{
		{Hex: "#ff0000", Name: "Red"},
		{Hex: "#00ff00", Name: "Lime"},
		{Hex: "#0000ff", Name: "Blue"},
		{Hex: "#ffffff", Name: "White"},
		{Hex: "#000000", Name: "Black"},
	}
	out := make([]Swatch, n)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out
}

func TestCSSSingleHex(t *testing.T) {
	t.Parallel()

	css := CSS([]string{"#ff0000"}, codec.NewFormatSet(codec.FormatHEX))
	assert.Contains(t, css, "--color-0-hex: #ff0000;")
	assert.Equal(t, "/* HEX Colors */\n--color-0-hex: #ff0000;\n", css)
}

func TestCSSGroupsFollowDeclarationOrder(t *testing.T) {
	t.Parallel()

	set := codec.NewFormatSet(codec.FormatCMYK, codec.FormatRGB, codec.FormatHEX)
	css := CSS([]string{"#ff0000", "#000000"}, set)

	want := strings.Join([]string{
		"/* HEX Colors */\n--color-0-hex: #ff0000;\n--color-1-hex: #000000;\n",
		"/* RGB Colors */\n--color-0-rgb: rgb(255, 0, 0);\n--color-1-rgb: rgb(0, 0, 0);\n",
		"/* CMYK Colors */\n--color-0-cmyk: cmyk(0.0%, 100.0%, 100.0%, 0.0%);\n--color-1-cmyk: cmyk(0.0%, 0.0%, 0.0%, 100.0%);\n",
	}, "\n")
	assert.Equal(t, want, css)
}

func TestCSSIsDeterministic(t *testing.T) {
	t.Parallel()

	set := codec.NewFormatSet(codec.Formats()...)
	hexes := Hexes(swatches(5))
	assert.Equal(t, CSS(hexes, set), CSS(hexes, set))
	assert.Empty(t, CSS(hexes, codec.NewFormatSet()))
}

func TestPlanImageGrid(t *testing.T) {
	t.Parallel()

	layout := PlanImage(swatches(7), codec.DefaultFormatSet(), DefaultImageOptions())
	assert.Equal(t, 6, layout.Columns)
	assert.Equal(t, 2, layout.Rows)
	assert.Equal(t, (1080-100)/2, layout.CellHeight)
	require.Len(t, layout.Cells, 7)

	seventh := layout.Cells[6]
	assert.Equal(t, 0, seventh.Bounds.Min.X)
	assert.Equal(t, layout.CellHeight, seventh.Bounds.Min.Y)
	assert.LessOrEqual(t, seventh.Bounds.Max.Y, 1080-100)
	assert.Equal(t, 1920, layout.Cells[5].Bounds.Max.X)
}

func TestPlanImageFewerSwatchesThanColumns(t *testing.T) {
	t.Parallel()

	layout := PlanImage(swatches(3), codec.DefaultFormatSet(), ImageOptions{})
	assert.Equal(t, 3, layout.Columns)
	assert.Equal(t, 1, layout.Rows)
	assert.Equal(t, 640, layout.Cells[0].Bounds.Dx())
	assert.Equal(t, "palette", layout.Caption)
}

func TestPlanImageNarrowCanvasKeepsOneColumn(t *testing.T) {
	t.Parallel()

	layout := PlanImage(swatches(2), codec.DefaultFormatSet(), ImageOptions{Width: 200, Height: 400})
	assert.Equal(t, 1, layout.Columns)
	assert.Equal(t, 2, layout.Rows)
}

func TestPlanImageCellContent(t *testing.T) {
	t.Parallel()

	set := codec.NewFormatSet(codec.FormatRGB, codec.FormatHEX)
	layout := PlanImage([]Swatch{{Hex: "#ffffff", Name: "White"}, {Hex: "#000000", Name: "Black"}}, set, DefaultImageOptions())

	white := layout.Cells[0]
	assert.Equal(t, []string{"White", "#ffffff", "rgb(255, 255, 255)"}, white.Lines)
	assert.Equal(t, "black", white.Text)
	assert.Equal(t, uint8(0xff), white.Fill.R)
	assert.Equal(t, "white", layout.Cells[1].Text)
}

func TestImageRendersPNG(t *testing.T) {
	t.Parallel()

	data, err := Image(swatches(4), codec.NewFormatSet(codec.FormatHEX, codec.FormatHSL), ImageOptions{Width: 640, Height: 360, Caption: "test"})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 360, img.Bounds().Dy())

	// top-left pixel belongs to the first (red) cell
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)

	assert.True(t, strings.HasPrefix(DataURL(data), "data:image/png;base64,"))
}

func TestImageRejectsEmptyPalette(t *testing.T) {
	t.Parallel()

	_, err := Image(nil, codec.DefaultFormatSet(), DefaultImageOptions())
	var exportErr *swatcherrors.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "png", exportErr.Artifact)
}

func TestPlanDocumentPaginates(t *testing.T) {
	t.Parallel()

	layout := PlanDocument(swatches(4), codec.DefaultFormatSet(), DocumentOptions{})
	require.Len(t, layout.Pages, 1)
	assert.Equal(t, "Palette", layout.Pages[0].Title)

	layout = PlanDocument(swatches(9), codec.DefaultFormatSet(), DefaultDocumentOptions())
	require.Len(t, layout.Pages, 3)
	assert.Len(t, layout.Pages[0].Rows, 4)
	assert.Len(t, layout.Pages[1].Rows, 4)
	assert.Len(t, layout.Pages[2].Rows, 1)

	for _, page := range layout.Pages {
		for _, row := range page.Rows {
			assert.LessOrEqual(t, row.Y+row.H, layout.PageHeight-docMargin)
		}
		assert.Equal(t, firstRowY(), page.Rows[0].Y)
	}
}

func TestPlanDocumentRowText(t *testing.T) {
	t.Parallel()

	layout := PlanDocument([]Swatch{{Hex: "#000000", Name: "Black"}}, codec.NewFormatSet(codec.FormatCMYK), DocumentOptions{Title: "Mine"})
	row := layout.Pages[0].Rows[0]
	assert.Equal(t, []string{"Black", "cmyk(0.0%, 0.0%, 0.0%, 100.0%)"}, row.Lines)
	assert.Greater(t, row.TextX, row.X+row.W)
	assert.Equal(t, "Mine", layout.Pages[0].Title)
}

func TestDocumentRendersPDF(t *testing.T) {
	t.Parallel()

	data, err := Document(swatches(6), codec.NewFormatSet(codec.Formats()...), DefaultDocumentOptions())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	_, err = Document(nil, codec.DefaultFormatSet(), DefaultDocumentOptions())
	require.Error(t, err)
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Kind{"css": KindCSS, "PNG": KindPNG, "image": KindPNG, "document": KindPDF, " pdf ": KindPDF} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("svg")
	require.Error(t, err)
	assert.Equal(t, "palette.pdf", KindPDF.FileName())
}

func TestAllWritesEveryArtifact(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := All(context.Background(), dir, swatches(5), codec.DefaultFormatSet(), DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "palette.css"),
		filepath.Join(dir, "palette.png"),
		filepath.Join(dir, "palette.pdf"),
	}, paths)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	css, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(css), "--color-4-hex: #000000;")
}

func TestAllStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := All(ctx, t.TempDir(), swatches(2), codec.DefaultFormatSet(), DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestFromPalette(t *testing.T) {
	t.Parallel()

	got := FromPalette([]palette.Entry{{Hex: "#000000", Name: "Black", Pinned: true}})
	assert.Equal(t, []Swatch{{Hex: "#000000", Name: "Black"}}, got)
}
