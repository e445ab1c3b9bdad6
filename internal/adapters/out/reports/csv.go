package reports

import (
	"encoding/csv"
	"io"

	"parcelhub/internal/core/application/usecases/queries"
)

// CSVRenderer writes the parcel listing as RFC 4180 CSV.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSV report renderer.
func NewCSVRenderer() CSVRenderer {
	return CSVRenderer{}
}

// Render writes the header and one row per parcel.
func (CSVRenderer) Render(w io.Writer, parcels []queries.AdminParcelQueryResponse) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return err
	}

	for _, p := range parcels {
		if err := writer.Write(row(p)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
