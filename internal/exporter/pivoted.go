package exporter

import (
	"strconv"

	"meteocli/pkg/contracts/domain"
)

// PivotedRecords flattens a pivoted table into CSV headers and records:
// the header row, ascending year rows, then the monthly-mean row.
func PivotedRecords(table *domain.PivotedTable) ([]string, [][]string) {
	headers := table.HeaderCells()

	records := make([][]string, 0, len(table.Years)+1)
	for _, year := range table.Years {
		row := make([]string, 0, 14)
		row = append(row, strconv.Itoa(year.Year))
		for _, obs := range year.Months {
			row = append(row, obs.String())
		}
		row = append(row, strconv.FormatFloat(year.AnnualSum, 'f', -1, 64))
		records = append(records, row)
	}

	mean := make([]string, 0, 14)
	mean = append(mean, domain.MonthlyMeanLabel)
	for _, obs := range table.MonthlyMean.Months {
		mean = append(mean, obs.String())
	}
	mean = append(mean, table.MonthlyMean.MeanAnnualSum.String())
	records = append(records, mean)

	return headers, records
}

// WritePivoted exports a pivoted table as a CSV file.
func (w *CSVWriter) WritePivoted(filePath string, table *domain.PivotedTable) error {
	headers, records := PivotedRecords(table)
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}
