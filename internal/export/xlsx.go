package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// WriteXLSX writes leads as a single-sheet XLSX workbook at outputPath.
// Same column order as the CSV sink.
func WriteXLSX(leads []model.Lead, outputPath string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Leads")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range leadColumns {
		header.AddCell().Value = col
	}

	for _, l := range leads {
		row := sheet.AddRow()
		for _, v := range leadRow(l) {
			row.AddCell().Value = v
		}
	}

	if err := f.Save(outputPath); err != nil {
		return eris.Wrap(err, "export: save xlsx")
	}
	return nil
}
