package output

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"customer-pricing/core/quote"
	"customer-pricing/internal/errors"
)

// Page geometry in inches for a US Letter portrait page
const (
	marginLeft   = 0.75
	marginRight  = 0.75
	marginTop    = 1.0
	marginBottom = 0.75

	rowHeight  = 0.25
	gridWidth  = 0.25 / 72 // 0.25pt
	cellIndent = 4.0 / 72  // 4pt
)

var (
	materialWidths  = []float64{0.6, 3.5, 1.2}
	breakdownWidths = []float64{2.5, 1.2}
)

// PDFFormatter renders a paginated quote document
type PDFFormatter struct {
	compress bool
}

// PDFOption configures a PDFFormatter
type PDFOption func(*PDFFormatter)

// WithCompression toggles stream compression (on by default)
func WithCompression(enabled bool) PDFOption {
	return func(f *PDFFormatter) {
		f.compress = enabled
	}
}

// NewPDFFormatter creates a PDF formatter
func NewPDFFormatter(opts ...PDFOption) *PDFFormatter {
	f := &PDFFormatter{compress: true}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format returns FormatPDF
func (f *PDFFormatter) Format() Format {
	return FormatPDF
}

// Render writes the PDF document to w
func (f *PDFFormatter) Render(w io.Writer, q *quote.Quote) error {
	pdf, err := f.build(q)
	if err != nil {
		return err
	}
	if err := pdf.Output(w); err != nil {
		return errors.Render("write pdf", err)
	}
	return nil
}

// build lays out the document without writing it
func (f *PDFFormatter) build(q *quote.Quote) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "in", "Letter", "")
	pdf.SetCompression(f.compress)
	pdf.SetCreationDate(q.CreatedAt)
	pdf.SetTitle(q.Title, true)
	pdf.SetSubject("Quote "+q.ID, true)
	pdf.SetCreator("customer-pricing", false)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetCellMargin(cellIndent)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-marginBottom + 0.2)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 0.2, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	l := &layout{pdf: pdf, tr: tr}

	// Title block
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 0.3, tr(q.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(96, 96, 96)
	pdf.CellFormat(0, 0.2, tr(fmt.Sprintf("Quote %s - %s", q.ID, q.CreatedAt.Format("January 2, 2006"))), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(12.0 / 72)

	// Materials table
	header := []string{"Qty", "Item", "Line $"}
	l.table(materialWidths, header, []string{"C", "L", "R"}, func(emit func(cells ...string)) {
		for _, line := range q.Lines {
			emit(FormatQuantity(line.Quantity), line.Name, FormatMoney(line.Total, q.Currency))
		}
	})

	pdf.Ln(rowHeight)

	// Breakdown table
	l.table(breakdownWidths, nil, []string{"L", "R"}, func(emit func(cells ...string)) {
		for _, entry := range q.Breakdown().Entries {
			emit(entry.Key.String(), FormatMoney(entry.Amount, q.Currency))
		}
	})

	if err := pdf.Error(); err != nil {
		return nil, errors.Render("layout pdf", err)
	}
	return pdf, nil
}

// layout draws bordered, horizontally centered tables that break across pages
type layout struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (l *layout) left(widths []float64) float64 {
	total := 0.0
	for _, w := range widths {
		total += w
	}
	pageW, _ := l.pdf.GetPageSize()
	return marginLeft + (pageW-marginLeft-marginRight-total)/2
}

// table renders an optional shaded header followed by rows; the header repeats after a page break
func (l *layout) table(widths []float64, header, aligns []string, rows func(emit func(cells ...string))) {
	pdf := l.pdf
	x := l.left(widths)
	_, pageH := pdf.GetPageSize()

	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(gridWidth)
	pdf.SetFillColor(211, 211, 211)

	drawHeader := func() {
		if header == nil {
			return
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetX(x)
		for i, h := range header {
			pdf.CellFormat(widths[i], rowHeight, l.tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	drawHeader()
	pdf.SetFont("Helvetica", "", 10)
	rows(func(cells ...string) {
		if pdf.GetY()+rowHeight > pageH-marginBottom {
			pdf.AddPage()
			drawHeader()
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.SetX(x)
		for i, cell := range cells {
			pdf.CellFormat(widths[i], rowHeight, l.fit(cell, widths[i]-2*cellIndent), "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	})
}

// fit translates text for the core fonts and truncates it with an ellipsis to width
func (l *layout) fit(text string, width float64) string {
	encoded := l.tr(text)
	if l.pdf.GetStringWidth(encoded) <= width {
		return encoded
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := l.tr(string(runes) + "...")
		if l.pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}
