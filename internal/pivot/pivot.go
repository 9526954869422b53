package pivot

import (
	"sort"

	"meteocli/internal/errors"
	"meteocli/pkg/contracts/domain"
)

// cellKey identifies one pivot cell.
type cellKey struct {
	year  int
	month int
}

// cellAccum accumulates records mapping to the same (year, month) cell.
// Duplicates reduce by summation with missing treated as absent.
type cellAccum struct {
	sum     float64
	present bool
}

// Reorganize transforms a long-format series into its pivoted year-by-month
// summary table. The variable label fills the header row's first cell; the
// month names fill the rest of the header in calendar order.
//
// Returns an EmptySeries error when the series has no records.
func Reorganize(series domain.RawSeries, variableLabel string, months domain.MonthNames) (*domain.PivotedTable, error) {
	if len(series.Records) == 0 {
		return nil, errors.EmptySeries()
	}

	cells := make(map[cellKey]*cellAccum)
	for _, rec := range series.Records {
		obs := domain.ParseObservation(rec.Cell)
		key := cellKey{year: rec.Date.Year(), month: int(rec.Date.Month())}
		acc := cells[key]
		if acc == nil {
			acc = &cellAccum{}
			cells[key] = acc
		}
		if obs.Present {
			acc.sum += obs.Value
			acc.present = true
		}
	}

	var years []int
	seen := make(map[int]bool)
	for key := range cells {
		if !seen[key.year] {
			seen[key.year] = true
			years = append(years, key.year)
		}
	}
	sort.Ints(years)

	table := &domain.PivotedTable{
		VariableLabel: variableLabel,
		MonthNames:    months,
		Years:         make([]domain.YearRow, 0, len(years)),
	}

	for _, year := range years {
		row := domain.YearRow{Year: year}
		for m := 1; m <= 12; m++ {
			acc, ok := cells[cellKey{year: year, month: m}]
			if ok && acc.present {
				row.Months[m-1] = domain.Present(acc.sum)
				row.AnnualSum += acc.sum
			}
		}
		table.Years = append(table.Years, row)
	}

	table.MonthlyMean = summarize(table.Years)
	return table, nil
}

// summarize computes the trailing long-run average row over the year rows.
// Means cover present values only; a month with no present years stays
// missing rather than becoming zero.
func summarize(years []domain.YearRow) domain.SummaryRow {
	var row domain.SummaryRow

	for m := 0; m < 12; m++ {
		var sum float64
		var n int
		for _, y := range years {
			if y.Months[m].Present {
				sum += y.Months[m].Value
				n++
			}
		}
		if n > 0 {
			row.Months[m] = domain.Present(sum / float64(n))
		}
	}

	// Every year row carries at least one record, so every annual sum is
	// defined and contributes to the long-run average of yearly totals.
	if len(years) > 0 {
		var total float64
		for _, y := range years {
			total += y.AnnualSum
		}
		row.MeanAnnualSum = domain.Present(total / float64(len(years)))
	}

	return row
}
