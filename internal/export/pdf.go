package export

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/alexisbeaulieu97/swatch/internal/codec"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

// Landscape A4 geometry in millimetres.
const (
	pageWidth  = 297.0
	pageHeight = 210.0

	docMargin     = 8.0
	titleFontSize = 16.0
	textFontSize  = 10.0
	boxWidth      = 40.0
	boxHeight     = 30.0
	rowGap        = 6.0
	textGap       = 6.0
	textLeading   = 4.2
)

// DocumentOptions controls the PDF export.
type DocumentOptions struct {
	Title string
}

// DefaultDocumentOptions titles each page "Palette".
func DefaultDocumentOptions() DocumentOptions {
	return DocumentOptions{Title: "Palette"}
}

// DocumentRow is one swatch box with its text beside it.
type DocumentRow struct {
	Swatch Swatch
	X, Y   float64
	W, H   float64
	Fill   codec.RGB
	TextX  float64
	Lines  []string
}

// DocumentPage holds the rows drawn below a page title.
type DocumentPage struct {
	Title string
	Rows  []DocumentRow
}

// DocumentLayout is the paginated plan for a PDF export.
type DocumentLayout struct {
	PageWidth  float64
	PageHeight float64
	Pages      []DocumentPage
}

// firstRowY is where rows start below the title.
func firstRowY() float64 {
	return docMargin + titleFontSize + 10
}

// PlanDocument places one swatch per row and starts a new page when the
// next row would cross the bottom margin.
func PlanDocument(swatches []Swatch, formats codec.FormatSet, opts DocumentOptions) DocumentLayout {
	if opts.Title == "" {
		opts.Title = DefaultDocumentOptions().Title
	}

	layout := DocumentLayout{PageWidth: pageWidth, PageHeight: pageHeight}
	if len(swatches) == 0 {
		return layout
	}

	page := DocumentPage{Title: opts.Title}
	y := firstRowY()
	for _, s := range swatches {
		if y+boxHeight > pageHeight-docMargin {
			layout.Pages = append(layout.Pages, page)
			page = DocumentPage{Title: opts.Title}
			y = firstRowY()
		}
		page.Rows = append(page.Rows, DocumentRow{
			Swatch: s,
			X:      docMargin,
			Y:      y,
			W:      boxWidth,
			H:      boxHeight,
			Fill:   codec.HexToRGB(s.Hex),
			TextX:  docMargin + boxWidth + textGap,
			Lines:  append([]string{s.Name}, codec.RenderAll(s.Hex, formats)...),
		})
		y += boxHeight + rowGap
	}
	layout.Pages = append(layout.Pages, page)
	return layout
}

// Document renders the planned pages to PDF bytes.
func Document(swatches []Swatch, formats codec.FormatSet, opts DocumentOptions) ([]byte, error) {
	if len(swatches) == 0 {
		return nil, swatcherrors.NewExportError(string(KindPDF), errEmpty)
	}
	layout := PlanDocument(swatches, formats, opts)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(layout.Pages[0].Title, true)
	pdf.SetCreator("swatch", true)
	pdf.SetAutoPageBreak(false, docMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range layout.Pages {
		pdf.AddPage()
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", titleFontSize)
		pdf.Text(docMargin, docMargin+titleFontSize, tr(page.Title))

		for _, row := range page.Rows {
			pdf.SetFillColor(row.Fill.R, row.Fill.G, row.Fill.B)
			pdf.SetDrawColor(200, 200, 200)
			pdf.Rect(row.X, row.Y, row.W, row.H, "FD")

			for i, line := range row.Lines {
				style := ""
				if i == 0 {
					style = "B"
				}
				pdf.SetFont("Helvetica", style, textFontSize)
				pdf.Text(row.TextX, row.Y+textLeading*float64(i+1), tr(line))
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, swatcherrors.NewExportError(string(KindPDF), err)
	}
	return buf.Bytes(), nil
}
