package domain

import (
	"strconv"
	"strings"
)

// MissingSentinel is the numeric code used by the source data to mean
// "no observation", distinct from a true zero reading.
const MissingSentinel = -9999

// Observation is a single measured value that is either present or missing.
// All sentinel and blank-cell encodings collapse to the missing state at
// ingestion; downstream code never compares against MissingSentinel again.
type Observation struct {
	Value   float64 `json:"value"`
	Present bool    `json:"present"`
}

// Present creates an observation holding a measured value.
func Present(v float64) Observation {
	return Observation{Value: v, Present: true}
}

// Missing is the absent observation.
var Missing = Observation{}

// ParseObservation normalizes a raw table cell into an Observation.
// Blank cells, the sentinel value and unparseable text all map to Missing.
func ParseObservation(cell string) Observation {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Missing
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == MissingSentinel {
		return Missing
	}
	return Present(v)
}

// String renders the observation for tabular output. Missing renders as an
// empty cell, matching the source spreadsheets.
func (o Observation) String() string {
	if !o.Present {
		return ""
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}
