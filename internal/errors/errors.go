package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Core taxonomy of the aggregation engine and chart adapter.
	ErrTypeMalformedInput   ErrorType = "MALFORMED_INPUT"
	ErrTypeEmptySeries      ErrorType = "EMPTY_SERIES"
	ErrTypeYearNotFound     ErrorType = "YEAR_NOT_FOUND"
	ErrTypeInsufficientData ErrorType = "INSUFFICIENT_DATA"

	// Ambient kinds shared by the codec, config and transport layers.
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeStorage    ErrorType = "STORAGE"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeConfig     ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// MalformedInput signals a raw table with no identifiable date column or too
// few columns to hold a data series.
func MalformedInput(message string) *AppError {
	return NewAppError(ErrTypeMalformedInput, message, nil)
}

// EmptySeries signals a raw table with zero data records.
func EmptySeries() *AppError {
	return NewAppError(ErrTypeEmptySeries, "series contains no records to index by year and month", nil)
}

// YearNotFound signals a chart request for a year absent from the pivoted table.
func YearNotFound(year int) *AppError {
	return NewAppError(ErrTypeYearNotFound, fmt.Sprintf("year %d not found in the data", year), nil).
		WithContext("year", year)
}

// InsufficientData signals a chart request for a year whose twelve cells are
// all missing, leaving the axis bounds undefined.
func InsufficientData(year int) *AppError {
	return NewAppError(ErrTypeInsufficientData, fmt.Sprintf("year %d has no present values to chart", year), nil).
		WithContext("year", year)
}
