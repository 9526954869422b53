// Package locale provides the month-name lookup used by callers of the
// aggregation engine. The engine itself is locale-agnostic; language
// selection happens here, outside the pure transform.
package locale

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"meteocli/pkg/contracts/domain"
)

// Language selects a month-name table.
type Language string

const (
	// Spanish is the default, matching the source data's locale.
	Spanish Language = "es"
	English Language = "en"
)

var baseNames = map[Language][12]string{
	Spanish: {
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	English: {
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	},
}

var titleTags = map[Language]language.Tag{
	Spanish: language.Spanish,
	English: language.English,
}

// Parse maps a user-supplied language code to a supported Language.
// Unknown codes fall back to Spanish.
func Parse(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en", "en-us", "en-gb", "english":
		return English
	default:
		return Spanish
	}
}

// Months returns the capitalized month display names for the language, in
// calendar order.
func Months(lang Language) domain.MonthNames {
	base, ok := baseNames[lang]
	if !ok {
		lang = Spanish
		base = baseNames[lang]
	}

	caser := cases.Title(titleTags[lang])
	var out domain.MonthNames
	for i, name := range base {
		out[i] = caser.String(name)
	}
	return out
}

// MonthName returns the display name for a month index 1-12. Out-of-range
// indices return the empty string.
func MonthName(lang Language, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return Months(lang)[month-1]
}
