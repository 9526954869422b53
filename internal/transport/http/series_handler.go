package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apperrors "meteocli/internal/errors"
	"meteocli/internal/spreadsheet"
	"meteocli/pkg/contracts/domain"
)

// requestDateLayout is the wire format for record dates.
const requestDateLayout = "2006-01-02"

// SeriesHandler handles pivot and chart requests.
type SeriesHandler struct {
	service        SeriesServiceInterface
	logger         *slog.Logger
	errorHandler   *apperrors.ErrorHandler
	validate       *validator.Validate
	maxUploadBytes int64
}

// NewSeriesHandler creates a new series handler.
func NewSeriesHandler(service SeriesServiceInterface, logger *slog.Logger, errorHandler *apperrors.ErrorHandler, maxUploadBytes int64) *SeriesHandler {
	return &SeriesHandler{
		service:        service,
		logger:         logger.With(slog.String("component", "series_handler")),
		errorHandler:   errorHandler,
		validate:       validator.New(),
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes returns the series routes.
func (h *SeriesHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/pivot", h.CreatePivot)
	r.Post("/pivot/workbook", h.CreatePivotFromWorkbook)
	r.Post("/chart", h.CreateChart)

	return r
}

// recordPayload is one series record on the wire.
type recordPayload struct {
	Date string `json:"date" validate:"required"`
	Cell string `json:"cell"`
}

// pivotRequest is the JSON body of POST /pivot.
type pivotRequest struct {
	VariableLabel string          `json:"variable_label" validate:"required"`
	Lang          string          `json:"lang"`
	Records       []recordPayload `json:"records" validate:"required,min=1,dive"`
}

// chartRequest is the JSON body of POST /chart.
type chartRequest struct {
	VariableLabel string          `json:"variable_label" validate:"required"`
	Lang          string          `json:"lang"`
	Year          int             `json:"year" validate:"required"`
	Records       []recordPayload `json:"records" validate:"required,min=1,dive"`
}

// CreatePivot handles POST /api/series/pivot.
func (h *SeriesHandler) CreatePivot(w http.ResponseWriter, r *http.Request) {
	var req pivotRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, apperrors.NewAppError(apperrors.ErrTypeValidation, "invalid JSON body", err))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.errorHandler.HandleError(w, r, apperrors.NewAppError(apperrors.ErrTypeValidation, "request validation failed", err))
		return
	}

	series, err := seriesFromPayload(req.VariableLabel, req.Records)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	table, err := h.service.Pivot(r.Context(), series, req.VariableLabel, req.Lang)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		h.writeWorkbook(w, r, "pivoted.xlsx", series.SheetName, table)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, table)
}

// CreatePivotFromWorkbook handles POST /api/series/pivot/workbook with a
// multipart xlsx upload.
func (h *SeriesHandler) CreatePivotFromWorkbook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.errorHandler.HandleError(w, r, apperrors.NewAppError(apperrors.ErrTypeValidation, "invalid multipart upload", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.HandleError(w, r, apperrors.NewAppError(apperrors.ErrTypeValidation, "missing workbook file field", err))
		return
	}
	defer file.Close()

	series, err := spreadsheet.ReadSeriesFrom(file)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	table, err := h.service.Pivot(r.Context(), series, r.FormValue("variable_label"), r.FormValue("lang"))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "workbook pivoted",
		slog.String("filename", header.Filename),
		slog.Int("years", len(table.Years)))

	if r.FormValue("format") == "xlsx" {
		h.writeWorkbook(w, r, "pivoted_"+header.Filename, series.SheetName, table)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, table)
}

// CreateChart handles POST /api/series/chart.
func (h *SeriesHandler) CreateChart(w http.ResponseWriter, r *http.Request) {
	var req chartRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.errorHandler.HandleError(w, r, apperrors.NewAppError(apperrors.ErrTypeValidation, "invalid JSON body", err))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.errorHandler.HandleError(w, r, apperrors.NewAppError(apperrors.ErrTypeValidation, "request validation failed", err))
		return
	}

	series, err := seriesFromPayload(req.VariableLabel, req.Records)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	payload, err := h.service.Chart(r.Context(), series, req.VariableLabel, req.Year, req.Lang)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, payload)
}

// writeWorkbook streams the pivoted table as an xlsx download.
func (h *SeriesHandler) writeWorkbook(w http.ResponseWriter, r *http.Request, filename, sheetName string, table *domain.PivotedTable) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := spreadsheet.WritePivotedTo(w, sheetName, table); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to stream workbook",
			slog.String("error", err.Error()))
	}
}

// seriesFromPayload converts wire records into a raw series, validating the
// date format.
func seriesFromPayload(variableLabel string, records []recordPayload) (domain.RawSeries, error) {
	series := domain.RawSeries{VariableLabel: variableLabel}
	for i, rec := range records {
		date, err := time.Parse(requestDateLayout, rec.Date)
		if err != nil {
			return domain.RawSeries{}, apperrors.NewAppError(apperrors.ErrTypeValidation,
				fmt.Sprintf("record %d has invalid date %q, expected YYYY-MM-DD", i, rec.Date), err)
		}
		series.Records = append(series.Records, domain.RawRecord{Date: date, Cell: rec.Cell})
	}
	return series, nil
}
