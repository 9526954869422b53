package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meteocli/internal/config"
	apperrors "meteocli/internal/errors"
	"meteocli/pkg/contracts/domain"
)

func newTestService(language string) *SeriesService {
	cfg := &config.Config{}
	cfg.Locale.Language = language
	return NewSeriesService(cfg, slog.Default())
}

func oneYearSeries(label string) domain.RawSeries {
	series := domain.RawSeries{VariableLabel: label}
	for m := 1; m <= 12; m++ {
		series.Records = append(series.Records, domain.RawRecord{
			Date: time.Date(2023, time.Month(m), 1, 0, 0, 0, 0, time.UTC),
			Cell: fmt.Sprintf("%d", m),
		})
	}
	return series
}

func TestPivotUsesConfiguredLanguage(t *testing.T) {
	svc := newTestService("en")

	table, err := svc.Pivot(context.Background(), oneYearSeries("Chuvia"), "", "")
	require.NoError(t, err)

	assert.Equal(t, "January", table.MonthNames[0])
	assert.Equal(t, "Chuvia", table.VariableLabel)
}

func TestPivotLangOverride(t *testing.T) {
	svc := newTestService("en")

	table, err := svc.Pivot(context.Background(), oneYearSeries("Chuvia"), "", "es")
	require.NoError(t, err)

	assert.Equal(t, "Enero", table.MonthNames[0])
}

func TestPivotLabelOverride(t *testing.T) {
	svc := newTestService("es")

	table, err := svc.Pivot(context.Background(), oneYearSeries("Chuvia"), "Horas de sol", "")
	require.NoError(t, err)

	assert.Equal(t, "Horas de sol", table.VariableLabel)
}

func TestChartYearNotFound(t *testing.T) {
	svc := newTestService("es")

	_, err := svc.Chart(context.Background(), oneYearSeries("Chuvia"), "", 2021, "")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeYearNotFound))
}

func TestChartPayload(t *testing.T) {
	svc := newTestService("es")

	payload, err := svc.Chart(context.Background(), oneYearSeries("Chuvia"), "", 2023, "")
	require.NoError(t, err)

	assert.Equal(t, "Chuvia (lluvia) en el año 2023", payload.Title)
	assert.Equal(t, "Enero", payload.Categories[0])
}
