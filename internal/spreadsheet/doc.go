// Package spreadsheet is the table codec boundary of the application. It
// reads a long-format meteorological series out of a workbook's first sheet
// and writes pivoted summary tables back to workbook form.
//
// The aggregation engine never touches file paths or container internals;
// everything it sees arrives through this package as already-shaped rows.
package spreadsheet
