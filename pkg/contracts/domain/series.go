package domain

import (
	"time"
)

// RawRecord is one (date, cell) pair as read from the source table.
// The cell keeps its original text so that sentinel normalization happens in
// exactly one place, inside the aggregation engine.
type RawRecord struct {
	Date time.Time `json:"date"`
	Cell string    `json:"cell"`
}

// RawSeries is a single-variable meteorological time series in long format,
// one record per date. It is read-only input owned by the caller.
type RawSeries struct {
	// VariableLabel names the measured variable, taken from the source
	// table's data column header (e.g. "Chuvia").
	VariableLabel string      `json:"variable_label"`
	// SheetName is the name of the sheet the series was read from, reused
	// when the pivoted result is written back.
	SheetName string          `json:"sheet_name,omitempty"`
	Records   []RawRecord     `json:"records"`
}

// MonthNames holds the twelve display names for the month columns, in
// calendar order. The engine treats them as opaque labels; locale selection
// happens in the caller.
type MonthNames [12]string
