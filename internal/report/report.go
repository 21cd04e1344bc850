// Package report renders IEC 60949 short-circuit calculation reports as A4
// PDFs and merges them with the source datasheet.
//
// The layouts reproduce a fixed engineering template: everything is drawn at
// absolute positions in points from the top-left corner. Values come in as a
// loose Data map and are printed as-is; validating them is the caller's
// concern.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// Data carries the values a report prints. Keys mirror the frontend form
// field names. Missing keys render as blanks.
type Data map[string]any

// Str returns the display form of a value: strings pass through, numbers
// drop their JSON float formatting.
func (d Data) Str(key string) string {
	v, ok := d[key]
	if !ok {
		return ""
	}
	return display(v)
}

// StrOr is Str with a fallback for keys the frontend did not send at all.
func (d Data) StrOr(key, fallback string) string {
	v, ok := d[key]
	if !ok {
		return fallback
	}
	return display(v)
}

func display(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}

const (
	margin       = 60.0
	borderMargin = 30.0
	titleBoxH    = 30.0

	// Glyph bytes in the built-in Symbol font. The core fonts have no Greek
	// range, so formula symbols switch to Symbol for single characters.
	symTheta   = "q"
	symBeta    = "b"
	symEpsilon = "e"
	symSigma   = "s"
	symRho     = "r"
	symDelta   = "d"
	symRadical = "\xd6"
)

// reportStamp pins the PDF metadata dates so identical inputs produce
// identical bytes.
var reportStamp = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// builder wraps an fpdf document with the template's drawing vocabulary.
// Coordinates run top-down in points; the template was designed against A4
// (595 x 842 pt).
type builder struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	w   float64
	h   float64
}

func newBuilder() *builder {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(reportStamp)
	pdf.SetModificationDate(reportStamp)

	w, h := pdf.GetPageSize()
	return &builder{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		w:   w,
		h:   h,
	}
}

func (b *builder) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// newPage starts a page with the template's heavy outer border.
func (b *builder) newPage() {
	b.pdf.AddPage()
	b.pdf.SetDrawColor(0, 0, 0)
	b.pdf.SetLineWidth(2)
	b.pdf.Rect(borderMargin, borderMargin, b.w-2*borderMargin, b.h-2*borderMargin, "D")
}

// titleBox draws the boxed report title at the top of a page and returns the
// y cursor below it.
func (b *builder) titleBox(title string, size float64) float64 {
	y := 60.0
	b.pdf.SetLineWidth(1.5)
	b.pdf.Rect(margin, y, b.w-2*margin, titleBoxH, "D")
	b.centerText(b.w/2, y+20, "Helvetica", "B", size, title)
	return y + titleBoxH + 5
}

// infoRow draws the three-cell cable header: size and voltage, material,
// and the fixed "Conductor" cell. Returns the y cursor below the row.
func (b *builder) infoRow(y float64, cableSize, material string) float64 {
	const rowH = 20.0
	col1 := b.w - 2*margin - 160
	col2 := 80.0
	col3 := 80.0

	b.pdf.SetFillColor(255, 255, 0)
	b.pdf.Rect(margin, y, col1, rowH, "FD")
	b.text(margin+5, y+13, "Helvetica", "B", 9, cableSize)

	b.pdf.SetFillColor(255, 255, 0)
	b.pdf.Rect(margin+col1, y, col2, rowH, "FD")
	b.centerText(margin+col1+col2/2, y+13, "Helvetica", "B", 9, material)

	b.pdf.SetFillColor(255, 255, 255)
	b.pdf.Rect(margin+col1+col2, y, col3, rowH, "FD")
	b.centerText(margin+col1+col2+col3/2, y+13, "Helvetica", "B", 9, "Conductor")

	return y + rowH + 15
}

func (b *builder) text(x, y float64, family, style string, size float64, s string) {
	b.pdf.SetFont(family, style, size)
	b.pdf.Text(x, y, b.tr(s))
}

// symbol draws a single glyph from the Symbol font; s must already be in
// Symbol encoding (see the sym constants).
func (b *builder) symbol(x, y, size float64, s string) {
	b.pdf.SetFont("Symbol", "", size)
	b.pdf.Text(x, y, s)
}

func (b *builder) centerText(x, y float64, family, style string, size float64, s string) {
	b.pdf.SetFont(family, style, size)
	t := b.tr(s)
	b.pdf.Text(x-b.pdf.GetStringWidth(t)/2, y, t)
}

func (b *builder) rightText(x, y float64, family, style string, size float64, s string) {
	b.pdf.SetFont(family, style, size)
	t := b.tr(s)
	b.pdf.Text(x-b.pdf.GetStringWidth(t), y, t)
}

func (b *builder) stringWidth(family, style string, size float64, s string) float64 {
	b.pdf.SetFont(family, style, size)
	return b.pdf.GetStringWidth(b.tr(s))
}

func (b *builder) symbolWidth(size float64, s string) float64 {
	b.pdf.SetFont("Symbol", "", size)
	return b.pdf.GetStringWidth(s)
}

// eqArrow draws the blue callout arrow tagging an equation, centered on the
// equation baseline y.
func (b *builder) eqArrow(y, boxH float64, label string) {
	x := b.w - margin - 100

	b.pdf.SetFillColor(0x5B, 0x9B, 0xD5)
	b.pdf.Rect(x, y-boxH+4, 40, boxH, "F")
	b.pdf.Polygon([]fpdf.PointType{
		{X: x + 40, Y: y - boxH + 4},
		{X: x + 50, Y: y - boxH/2 + 4},
		{X: x + 40, Y: y + 4},
	}, "F")

	b.pdf.SetTextColor(255, 255, 255)
	b.centerText(x+20, y-boxH/2+7, "Helvetica", "B", 10, label)
	b.pdf.SetTextColor(0, 0, 0)
}

func (b *builder) line(x1, y1, x2, y2, width float64) {
	b.pdf.SetDrawColor(0, 0, 0)
	b.pdf.SetLineWidth(width)
	b.pdf.Line(x1, y1, x2, y2)
}
