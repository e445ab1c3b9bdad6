package reports

import (
	"io"

	"parcelhub/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

// ExcelRenderer writes the parcel listing as an XLSX workbook with a
// single "Parcels" sheet.
type ExcelRenderer struct{}

// NewExcelRenderer creates an Excel report renderer.
func NewExcelRenderer() ExcelRenderer {
	return ExcelRenderer{}
}

// Render builds the workbook in memory and streams it to the writer.
func (ExcelRenderer) Render(w io.Writer, parcels []queries.AdminParcelQueryResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Parcels"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	writeRow := func(rowNum int, cells []string) error {
		for col, value := range cells {
			cell, cellErr := excelize.CoordinatesToCellName(col+1, rowNum)
			if cellErr != nil {
				return cellErr
			}
			if cellErr = f.SetCellValue(sheet, cell, value); cellErr != nil {
				return cellErr
			}
		}
		return nil
	}

	if err = writeRow(1, header); err != nil {
		return err
	}

	for i, p := range parcels {
		if err = writeRow(i+2, row(p)); err != nil {
			return err
		}
	}

	return f.Write(w)
}
