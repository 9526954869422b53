package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthsCapitalized(t *testing.T) {
	es := Months(Spanish)
	assert.Equal(t, "Enero", es[0])
	assert.Equal(t, "Diciembre", es[11])

	en := Months(English)
	assert.Equal(t, "January", en[0])
	assert.Equal(t, "December", en[11])
}

func TestParse(t *testing.T) {
	tests := []struct {
		code string
		want Language
	}{
		{code: "es", want: Spanish},
		{code: "EN", want: English},
		{code: "english", want: English},
		{code: "", want: Spanish},
		{code: "fr", want: Spanish},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.code), "code %q", tt.code)
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Marzo", MonthName(Spanish, 3))
	assert.Equal(t, "March", MonthName(English, 3))
	assert.Equal(t, "", MonthName(Spanish, 0))
	assert.Equal(t, "", MonthName(Spanish, 13))
}
