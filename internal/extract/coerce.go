package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind selects how raw text is coerced.
type Kind string

const (
	KindText     Kind = "text"
	KindCount    Kind = "count"
	KindCurrency Kind = "currency"
	KindYear     Kind = "year"
)

// Value is a coerced field. Text is set for KindText, Number otherwise.
type Value struct {
	Text   string
	Number int
}

const yearDigits = 4

var (
	digitRun        = regexp.MustCompile(`\d+`)
	countCleaner    = strings.NewReplacer(",", "")
	currencyCleaner = strings.NewReplacer("$", "", ",", "")
)

// Coerce converts raw text to kind. It never fails; unusable input yields
// the kind's zero value.
func Coerce(kind Kind, raw string) Value {
	switch kind {
	case KindCount:
		return Value{Number: Count(raw)}
	case KindCurrency:
		return Value{Number: Currency(raw)}
	case KindYear:
		return Value{Number: Year(raw)}
	default:
		return Value{Text: Text(raw)}
	}
}

// Text trims surrounding whitespace.
func Text(raw string) string {
	return strings.TrimSpace(raw)
}

// Count returns the first run of digits after removing thousands separators.
func Count(raw string) int {
	return firstNumber(countCleaner.Replace(raw))
}

// Currency returns whole currency units. Anything after a decimal point is
// ignored: "$1,250.99" is 1250.
func Currency(raw string) int {
	return firstNumber(currencyCleaner.Replace(raw))
}

// Year returns the first run of exactly four digits, so "3 Built-in" and
// "12345" both yield 0.
func Year(raw string) int {
	for _, run := range digitRun.FindAllString(raw, -1) {
		if len(run) == yearDigits {
			n, _ := strconv.Atoi(run)
			return n
		}
	}
	return 0
}

func firstNumber(s string) int {
	run := digitRun.FindString(s)
	if run == "" {
		return 0
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		// out of range
		return 0
	}
	return n
}
