package domain

// Labels for the summary column and row of a pivoted table. These literals
// appear verbatim in the generated spreadsheets regardless of the selected
// month-name locale, matching the source data conventions.
const (
	AnnualSumLabel   = "Suma Anual"
	MonthlyMeanLabel = "Media Mensual"
)

// YearRow holds one calendar year of a pivoted table: twelve monthly cells in
// calendar order plus the year's total.
type YearRow struct {
	Year   int              `json:"year"`
	Months [12]Observation  `json:"months"`
	// AnnualSum is the sum of the present monthly values. A year with no
	// present months sums over the empty set and is 0, never missing.
	AnnualSum float64       `json:"annual_sum"`
}

// SummaryRow is the trailing long-run average row of a pivoted table.
type SummaryRow struct {
	// Months holds the arithmetic mean of present values for each month
	// across all years. A month with no present values is missing, not zero.
	Months [12]Observation `json:"months"`
	// MeanAnnualSum is the mean of the per-year totals.
	MeanAnnualSum Observation `json:"mean_annual_sum"`
}

// PivotedTable is the year-by-month matrix view of a long-format series.
// Header, year rows and the summary row are separate typed fields; they are
// never co-indexed with the year keys.
type PivotedTable struct {
	// VariableLabel occupies the header row's first cell.
	VariableLabel string     `json:"variable_label"`
	MonthNames    MonthNames `json:"month_names"`
	// Years is ordered strictly ascending by calendar year.
	Years       []YearRow  `json:"years"`
	MonthlyMean SummaryRow `json:"monthly_mean"`
}

// YearRow returns the row for the given calendar year, if present.
func (t *PivotedTable) YearRow(year int) (YearRow, bool) {
	for _, row := range t.Years {
		if row.Year == year {
			return row, true
		}
	}
	return YearRow{}, false
}

// HeaderCells returns the header row as output cells: variable label, twelve
// month names, then the annual-sum label.
func (t *PivotedTable) HeaderCells() []string {
	cells := make([]string, 0, 14)
	cells = append(cells, t.VariableLabel)
	cells = append(cells, t.MonthNames[:]...)
	cells = append(cells, AnnualSumLabel)
	return cells
}
