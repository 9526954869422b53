// Package pivot implements the reorganization and aggregation engine for
// single-variable meteorological time series.
//
// The engine is a pure, synchronous transform: it takes a long-format
// (date, value) series and produces a year-by-month pivoted table with
// per-year totals and per-month long-run averages. It performs no I/O and
// never depends on ambient locale or timezone state; month display names are
// passed in by the caller.
//
// Basic usage:
//
//	table, err := pivot.Reorganize(series, "Chuvia", locale.Months(locale.Spanish))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Missing-data semantics: the sentinel value -9999 and blank cells both mean
// "no observation" and are collapsed into the missing state exactly once, at
// ingestion. Sum-based reductions treat missing as absent (a year with no
// present months still gets an annual sum of 0); mean-based reductions over
// an empty set stay missing. The asymmetry is intentional and load-bearing.
package pivot
