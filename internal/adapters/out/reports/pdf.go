package reports

import (
	"io"

	"parcelhub/internal/core/application/usecases/queries"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer writes the parcel listing as a landscape A4 table.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDF report renderer.
func NewPDFRenderer() PDFRenderer {
	return PDFRenderer{}
}

// Render lays out the listing as a paginated table and streams the
// document to the writer.
func (PDFRenderer) Render(w io.Writer, parcels []queries.AdminParcelQueryResponse) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Parcel Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	widths := []float64{44, 28, 28, 42, 42, 18, 12, 24, 38}

	writeRow := func(cells []string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 8)
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	writeRow(header, true)
	for _, p := range parcels {
		writeRow(row(p), false)
	}

	return pdf.Output(w)
}
