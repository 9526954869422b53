package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "meteocli/internal/errors"
	"meteocli/pkg/contracts/domain"
)

// stubService returns canned results for handler tests.
type stubService struct {
	table   *domain.PivotedTable
	payload *domain.ChartPayload
	err     error
}

func (s *stubService) Pivot(ctx context.Context, series domain.RawSeries, variableLabel, lang string) (*domain.PivotedTable, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func (s *stubService) Chart(ctx context.Context, series domain.RawSeries, variableLabel string, year int, lang string) (*domain.ChartPayload, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

func newTestHandler(svc SeriesServiceInterface) *SeriesHandler {
	logger := slog.Default()
	return NewSeriesHandler(svc, logger, apperrors.NewErrorHandler(logger), 1<<20)
}

func pivotBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"variable_label": "Chuvia",
		"records": []map[string]string{
			{"date": "2023-01-01", "cell": "12.5"},
		},
	})
	require.NoError(t, err)
	return body
}

func TestCreatePivotOK(t *testing.T) {
	svc := &stubService{table: &domain.PivotedTable{VariableLabel: "Chuvia"}}
	handler := newTestHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/pivot", bytes.NewReader(pivotBody(t)))
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var table domain.PivotedTable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.Equal(t, "Chuvia", table.VariableLabel)
}

func TestCreatePivotInvalidJSON(t *testing.T) {
	handler := newTestHandler(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/pivot", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePivotMissingRecords(t *testing.T) {
	handler := newTestHandler(&stubService{})

	body, _ := json.Marshal(map[string]interface{}{"variable_label": "Chuvia"})
	req := httptest.NewRequest(http.MethodPost, "/pivot", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePivotBadDate(t *testing.T) {
	handler := newTestHandler(&stubService{})

	body, _ := json.Marshal(map[string]interface{}{
		"variable_label": "Chuvia",
		"records":        []map[string]string{{"date": "01/2023", "cell": "1"}},
	})
	req := httptest.NewRequest(http.MethodPost, "/pivot", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "empty series",
			err:        apperrors.EmptySeries(),
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   apperrors.TypeEmptySeries,
		},
		{
			name:       "malformed input",
			err:        apperrors.MalformedInput("no date column"),
			wantStatus: http.StatusBadRequest,
			wantType:   apperrors.TypeMalformedInput,
		},
		{
			name:       "year not found",
			err:        apperrors.YearNotFound(2021),
			wantStatus: http.StatusNotFound,
			wantType:   apperrors.TypeYearNotFound,
		},
		{
			name:       "insufficient data",
			err:        apperrors.InsufficientData(2021),
			wantStatus: http.StatusUnprocessableEntity,
			wantType:   apperrors.TypeInsufficientData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(&stubService{err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/pivot", bytes.NewReader(pivotBody(t)))
			rec := httptest.NewRecorder()
			handler.Routes().ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			var problem map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, tt.wantType, problem["type"])
		})
	}
}

func TestCreateChartOK(t *testing.T) {
	payload := &domain.ChartPayload{Title: "Chuvia (lluvia) en el año 2023"}
	handler := newTestHandler(&stubService{payload: payload})

	body, _ := json.Marshal(map[string]interface{}{
		"variable_label": "Chuvia",
		"year":           2023,
		"records":        []map[string]string{{"date": "2023-01-01", "cell": "1"}},
	})
	req := httptest.NewRequest(http.MethodPost, "/chart", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.ChartPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, payload.Title, got.Title)
}

func TestCreateChartMissingYear(t *testing.T) {
	handler := newTestHandler(&stubService{})

	body, _ := json.Marshal(map[string]interface{}{
		"variable_label": "Chuvia",
		"records":        []map[string]string{{"date": "2023-01-01", "cell": "1"}},
	})
	req := httptest.NewRequest(http.MethodPost, "/chart", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
