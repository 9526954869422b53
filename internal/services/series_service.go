// Package services hosts the application services sitting between the HTTP
// transport and the pure engine packages.
package services

import (
	"context"
	"log/slog"

	"meteocli/internal/chart"
	"meteocli/internal/config"
	"meteocli/internal/locale"
	"meteocli/internal/pivot"
	"meteocli/pkg/contracts/domain"
)

// SeriesService runs the aggregation engine and chart adapter on behalf of
// the transport layer.
type SeriesService struct {
	logger      *slog.Logger
	defaultLang locale.Language
}

// NewSeriesService creates a new series service.
func NewSeriesService(cfg *config.Config, logger *slog.Logger) *SeriesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SeriesService{
		logger:      logger.With(slog.String("component", "series_service")),
		defaultLang: locale.Parse(cfg.Locale.Language),
	}
}

// Pivot reorganizes a raw series into its pivoted summary table. An empty
// variable label falls back to the label read from the series header; an
// empty lang falls back to the configured default.
func (s *SeriesService) Pivot(ctx context.Context, series domain.RawSeries, variableLabel, lang string) (*domain.PivotedTable, error) {
	label := variableLabel
	if label == "" {
		label = series.VariableLabel
	}

	table, err := pivot.Reorganize(series, label, locale.Months(s.language(lang)))
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "series pivoted",
		slog.String("variable_label", label),
		slog.Int("records", len(series.Records)),
		slog.Int("years", len(table.Years)))

	return table, nil
}

// Chart pivots the series and derives the render-ready payload for one year.
func (s *SeriesService) Chart(ctx context.Context, series domain.RawSeries, variableLabel string, year int, lang string) (*domain.ChartPayload, error) {
	label := variableLabel
	if label == "" {
		label = series.VariableLabel
	}

	language := s.language(lang)
	table, err := pivot.Reorganize(series, label, locale.Months(language))
	if err != nil {
		return nil, err
	}

	payload, err := chart.Prepare(table, year, label, locale.Months(language))
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "chart payload prepared",
		slog.String("variable_label", label),
		slog.Int("year", year))

	return payload, nil
}

func (s *SeriesService) language(lang string) locale.Language {
	if lang == "" {
		return s.defaultLang
	}
	return locale.Parse(lang)
}
