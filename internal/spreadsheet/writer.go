package spreadsheet

import (
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"meteocli/internal/errors"
	"meteocli/pkg/contracts/domain"
)

// WritePivoted writes a pivoted table to a new workbook at filePath. The
// sheet keeps the name the series was read from; an empty name falls back to
// the excelize default.
func WritePivoted(filePath, sheetName string, table *domain.PivotedTable) error {
	f, err := buildWorkbook(sheetName, table)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(filePath); err != nil {
		return errors.NewAppError(errors.ErrTypeStorage, "failed to save workbook", err).
			WithContext("path", filePath)
	}

	slog.Info("pivoted workbook written",
		slog.String("path", filePath),
		slog.String("sheet", sheetName),
		slog.Int("years", len(table.Years)))
	return nil
}

// WritePivotedTo streams the workbook to w, for HTTP download responses.
func WritePivotedTo(w io.Writer, sheetName string, table *domain.PivotedTable) error {
	f, err := buildWorkbook(sheetName, table)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return errors.NewAppError(errors.ErrTypeStorage, "failed to stream workbook", err)
	}
	return nil
}

func buildWorkbook(sheetName string, table *domain.PivotedTable) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := f.GetSheetName(0)
	if sheetName != "" && sheetName != sheet {
		if err := f.SetSheetName(sheet, sheetName); err != nil {
			f.Close()
			return nil, errors.NewAppError(errors.ErrTypeStorage, "failed to rename sheet", err).
				WithContext("sheet", sheetName)
		}
		sheet = sheetName
	}

	for i, row := range pivotedRows(table) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			f.Close()
			return nil, errors.NewAppError(errors.ErrTypeStorage, "failed to compute cell coordinates", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, errors.NewAppError(errors.ErrTypeStorage, "failed to write sheet row", err).
				WithContext("row", i+1)
		}
	}

	return f, nil
}

// pivotedRows lays the table out rectangularly: header, ascending year rows,
// then the monthly-mean row. Missing cells become empty cells.
func pivotedRows(table *domain.PivotedTable) [][]interface{} {
	rows := make([][]interface{}, 0, len(table.Years)+2)

	header := make([]interface{}, 0, 14)
	for _, cell := range table.HeaderCells() {
		header = append(header, cell)
	}
	rows = append(rows, header)

	for _, year := range table.Years {
		row := make([]interface{}, 0, 14)
		row = append(row, year.Year)
		for _, obs := range year.Months {
			row = append(row, observationCell(obs))
		}
		row = append(row, year.AnnualSum)
		rows = append(rows, row)
	}

	mean := make([]interface{}, 0, 14)
	mean = append(mean, domain.MonthlyMeanLabel)
	for _, obs := range table.MonthlyMean.Months {
		mean = append(mean, observationCell(obs))
	}
	mean = append(mean, observationCell(table.MonthlyMean.MeanAnnualSum))
	rows = append(rows, mean)

	return rows
}

func observationCell(obs domain.Observation) interface{} {
	if !obs.Present {
		return nil
	}
	return obs.Value
}
