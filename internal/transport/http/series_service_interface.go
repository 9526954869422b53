package http

import (
	"context"

	"meteocli/pkg/contracts/domain"
)

// SeriesServiceInterface is the transport-facing contract of the series
// service. Tests substitute their own implementation.
type SeriesServiceInterface interface {
	Pivot(ctx context.Context, series domain.RawSeries, variableLabel, lang string) (*domain.PivotedTable, error)
	Chart(ctx context.Context, series domain.RawSeries, variableLabel string, year int, lang string) (*domain.ChartPayload, error)
}
