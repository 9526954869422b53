// Package chart derives render-ready bar-chart payloads from pivoted tables.
// It computes the numeric series, labels and axis bounds for one year's
// twelve monthly values; pixel-level rendering belongs to an external
// plotting collaborator.
package chart

import (
	"fmt"

	"meteocli/internal/errors"
	"meteocli/pkg/contracts/domain"
)

const (
	// RainfallLabel is the one reserved variable label: when the measured
	// variable is Galician rainfall, the chart gains a unit suffix and a
	// clarifying title phrase.
	RainfallLabel = "Chuvia"

	rainfallUnitSuffix = " (lluvia) [litros/m2]"

	xAxisLabel = "Meses"

	barWidth = 0.8

	// Fixed symmetric padding beyond the first and last bar position.
	xPaddingMonths = 0.7

	// Headroom above the tallest bar for its annotation text.
	yPaddingFactor = 0.1
)

// Prepare extracts the twelve monthly values for the given year and computes
// everything an external renderer needs: categories, values, title, axis
// labels and auto-scaled bounds.
//
// Missing cells stay missing in the payload and must render as absent bars,
// never as zero. Returns YearNotFound when the year has no row in the table
// and InsufficientData when the year has no present values at all.
func Prepare(table *domain.PivotedTable, year int, variableLabel string, months domain.MonthNames) (*domain.ChartPayload, error) {
	row, ok := table.YearRow(year)
	if !ok {
		return nil, errors.YearNotFound(year)
	}

	minVal, maxVal, present := valueRange(row.Months)
	if !present {
		return nil, errors.InsufficientData(year)
	}

	payload := &domain.ChartPayload{
		Title:    chartTitle(variableLabel, year),
		YLabel:   yAxisLabel(variableLabel),
		XLabel:   xAxisLabel,
		Values:   row.Months,
		BarWidth: barWidth,
		XBounds:  domain.Bounds{Min: -xPaddingMonths, Max: 11 + xPaddingMonths},
		YBounds: domain.Bounds{
			Min: 0,
			Max: maxVal + (maxVal-minVal)*yPaddingFactor + maxVal*0.1,
		},
	}
	copy(payload.Categories[:], months[:])

	return payload, nil
}

// valueRange scans the twelve cells for the present-value extremes.
func valueRange(cells [12]domain.Observation) (minVal, maxVal float64, present bool) {
	for _, obs := range cells {
		if !obs.Present {
			continue
		}
		if !present {
			minVal, maxVal = obs.Value, obs.Value
			present = true
			continue
		}
		if obs.Value < minVal {
			minVal = obs.Value
		}
		if obs.Value > maxVal {
			maxVal = obs.Value
		}
	}
	return minVal, maxVal, present
}

// yAxisLabel is the variable label as-is, except for the rainfall keyword,
// which gains its unit suffix.
func yAxisLabel(variableLabel string) string {
	if variableLabel == RainfallLabel {
		return variableLabel + rainfallUnitSuffix
	}
	return variableLabel
}

// chartTitle phrases the title in Spanish, with the rainfall clarification
// when the reserved label is in play.
func chartTitle(variableLabel string, year int) string {
	if variableLabel == RainfallLabel {
		return fmt.Sprintf("%s (lluvia) en el año %d", variableLabel, year)
	}
	return fmt.Sprintf("%s en el año %d", variableLabel, year)
}
