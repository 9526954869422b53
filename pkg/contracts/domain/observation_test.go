package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseObservation(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want Observation
	}{
		{name: "plain number", cell: "12.5", want: Present(12.5)},
		{name: "integer", cell: "7", want: Present(7)},
		{name: "zero is a real reading", cell: "0", want: Present(0)},
		{name: "negative reading", cell: "-3.2", want: Present(-3.2)},
		{name: "sentinel", cell: "-9999", want: Missing},
		{name: "sentinel with decimals", cell: "-9999.0", want: Missing},
		{name: "blank", cell: "", want: Missing},
		{name: "whitespace only", cell: "   ", want: Missing},
		{name: "unparseable text", cell: "n/a", want: Missing},
		{name: "padded number", cell: " 4.75 ", want: Present(4.75)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseObservation(tt.cell))
		})
	}
}

func TestParseObservationIdempotent(t *testing.T) {
	// Re-normalizing a rendered observation reproduces it exactly.
	cells := []string{"12.5", "7", "0", "-3.2", "-9999", "", "n/a"}
	for _, cell := range cells {
		first := ParseObservation(cell)
		second := ParseObservation(first.String())
		assert.Equal(t, first, second, "cell %q", cell)
	}
}

func TestObservationString(t *testing.T) {
	assert.Equal(t, "", Missing.String())
	assert.Equal(t, "12.5", Present(12.5).String())
	assert.Equal(t, "7", Present(7).String())
}
