package spreadsheet

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"meteocli/internal/errors"
	"meteocli/pkg/contracts/domain"
)

// dateLayouts are the cell renderings accepted for the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01-02-06",
	"1/2/06 15:04",
}

// ReadSeries reads a single-variable series from the first sheet of a
// workbook. The date column is identified by its content; the data column is
// the last column, with its header cell becoming the variable label.
//
// Returns a MalformedInput error when the sheet is too narrow to hold a
// series or no date-typed column can be identified.
func ReadSeries(filePath string) (domain.RawSeries, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return domain.RawSeries{}, errors.NewAppError(errors.ErrTypeStorage, "failed to open workbook", err).
			WithContext("path", filePath)
	}
	defer f.Close()

	return readSeries(f)
}

// ReadSeriesFrom reads a series from an in-memory workbook, e.g. an HTTP
// upload body.
func ReadSeriesFrom(r io.Reader) (domain.RawSeries, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.RawSeries{}, errors.MalformedInput("upload is not a readable workbook")
	}
	defer f.Close()

	return readSeries(f)
}

func readSeries(f *excelize.File) (domain.RawSeries, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.RawSeries{}, errors.MalformedInput("workbook has no sheets")
	}
	sheetName := sheets[0]

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return domain.RawSeries{}, errors.NewAppError(errors.ErrTypeParsing, "failed to read sheet rows", err).
			WithContext("sheet", sheetName)
	}

	return seriesFromRows(rows, sheetName)
}

// seriesFromRows builds a raw series out of a rectangular header-plus-data
// row set. Split out from ReadSeries so the HTTP upload path can reuse it.
func seriesFromRows(rows [][]string, sheetName string) (domain.RawSeries, error) {
	if len(rows) == 0 || len(rows[0]) < 2 {
		return domain.RawSeries{}, errors.MalformedInput("table needs a date column and at least one data column")
	}

	header := rows[0]
	dataCol := len(header) - 1

	series := domain.RawSeries{
		VariableLabel: strings.TrimSpace(header[dataCol]),
		SheetName:     sheetName,
	}

	dataRows := rows[1:]
	if len(dataRows) == 0 {
		// Zero records is the engine's EmptySeries case, not a codec failure.
		return series, nil
	}

	dateCol, ok := findDateColumn(dataRows, dataCol)
	if !ok {
		return domain.RawSeries{}, errors.MalformedInput("no date-typed column identified in the table")
	}

	slog.Debug("identified series columns",
		slog.String("sheet", sheetName),
		slog.Int("date_column", dateCol),
		slog.Int("data_column", dataCol),
		slog.String("variable_label", series.VariableLabel))

	for i, row := range dataRows {
		if blankRow(row) {
			continue
		}
		if dateCol >= len(row) {
			return domain.RawSeries{}, errors.MalformedInput(
				fmt.Sprintf("row %d has no date cell", i+2))
		}
		date, ok := parseDate(row[dateCol])
		if !ok {
			return domain.RawSeries{}, errors.MalformedInput(
				fmt.Sprintf("row %d has an unparseable date %q", i+2, row[dateCol]))
		}
		cell := ""
		if dataCol < len(row) {
			cell = row[dataCol]
		}
		series.Records = append(series.Records, domain.RawRecord{Date: date, Cell: cell})
	}

	return series, nil
}

// blankRow reports whether every cell is empty, as excelize emits for rows
// that only carry formatting.
func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// findDateColumn scans columns left to right for the first one whose
// non-empty cells all parse as dates. The data column is excluded.
func findDateColumn(dataRows [][]string, dataCol int) (int, bool) {
	probe := len(dataRows)
	if probe > 10 {
		probe = 10
	}

	width := 0
	for _, row := range dataRows[:probe] {
		if len(row) > width {
			width = len(row)
		}
	}

	for col := 0; col < width; col++ {
		if col == dataCol {
			continue
		}
		nonEmpty := 0
		allDates := true
		for _, row := range dataRows[:probe] {
			if col >= len(row) || strings.TrimSpace(row[col]) == "" {
				continue
			}
			nonEmpty++
			if _, ok := parseDate(row[col]); !ok {
				allDates = false
				break
			}
		}
		if allDates && nonEmpty > 0 {
			return col, true
		}
	}
	return 0, false
}

// parseDate accepts the known cell renderings plus raw Excel serial dates.
func parseDate(cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	// Cells left in General format surface as serial day numbers.
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 20000 && serial < 80000 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
