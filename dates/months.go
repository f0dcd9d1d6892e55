package dates

import (
	"strconv"
	"strings"

	"github.com/teranos/vitae/errors"
)

// months maps every accepted month spelling to its number. Full names,
// three-letter abbreviations with or without a trailing period, and the
// four-letter "sept" variant are all accepted; the empty string means an
// unspecified month and defaults to January.
var months = map[string]int{
	"jan":       1,
	"jan.":      1,
	"january":   1,
	"feb":       2,
	"feb.":      2,
	"february":  2,
	"mar":       3,
	"mar.":      3,
	"march":     3,
	"apr":       4,
	"apr.":      4,
	"april":     4,
	"may":       5,
	"may.":      5,
	"jun":       6,
	"jun.":      6,
	"june":      6,
	"jul":       7,
	"jul.":      7,
	"july":      7,
	"aug":       8,
	"aug.":      8,
	"august":    8,
	"sep":       9,
	"sep.":      9,
	"sept":      9,
	"sept.":     9,
	"september": 9,
	"oct":       10,
	"oct.":      10,
	"october":   10,
	"nov":       11,
	"nov.":      11,
	"november":  11,
	"dec":       12,
	"dec.":      12,
	"december":  12,
	"":          1,
}

// shortMonthNames holds the display abbreviations, indexed by month number.
var shortMonthNames = [13]string{
	"",
	"Jan",
	"Feb",
	"Mar",
	"Apr",
	"May",
	"Jun",
	"Jul",
	"Aug",
	"Sept",
	"Oct",
	"Nov",
	"Dec",
}

// MonthToInt converts a month value to its number. It accepts an integer, a
// numeric string, or a month name in any case; nil and the empty string
// default to January. A string that is neither numeric nor a recognized
// name yields ErrInvalidMonth.
func MonthToInt(m any) (int, error) {
	if m == nil {
		return 1, nil
	}
	if n, ok := asIntScalar(m); ok {
		return n, nil
	}
	s, ok := m.(string)
	if !ok {
		return 0, errors.Wrapf(errors.ErrInvalidMonth, "month %v", m)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	n, ok := months[strings.ToLower(s)]
	if !ok {
		return 0, errors.Wrapf(errors.ErrInvalidMonth, "month %q", s)
	}
	return n, nil
}

// ShortMonthName returns the display abbreviation for a month number, or ""
// for a number outside 1-12.
func ShortMonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return shortMonthNames[m]
}

func asIntScalar(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
