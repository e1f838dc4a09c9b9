package schema

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Accepted formats, tried in order; first match wins. The millisecond-bearing
// datetime layout is listed first because the DMS export emits it.
var (
	clockFormats = []string{
		"15:04:05",
		"15:04",
		"3:04 PM",
		"15:04:05.000",
	}
	dateFormats = []string{
		"2006-01-02",
		"02/01/2006",
		"02-01-2006",
		"01/02/2006",
	}
	dateTimeFormats = []string{
		"2006-01-02 15:04:05.000",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"02/01/2006 15:04",
		"02-01-2006 15:04:05",
	}
)

// ParseClock parses a time-of-day string and returns it in canonical
// HH:MM:SS form.
func ParseClock(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range clockFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), true
		}
	}
	return "", false
}

func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateTimeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseInt performs a strict integer cast. A float-looking value such as
// "3.0" does not pass; dirty numeric input degrades to null upstream.
func ParseInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseDecimal coerces a currency or percentage value to fixed-point.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// CleanRONumber rewrites a repair-order number that parses as a whole-number
// float ("237270.0") to its integer string form, so numeric-looking
// identifiers do not land in a varchar column with a trailing ".0".
// Anything else passes through trimmed but otherwise untouched.
func CleanRONumber(s string) string {
	v := strings.TrimSpace(s)
	if !strings.Contains(v, ".") {
		return v
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return v
	}
	n := int64(f)
	if f == float64(n) {
		return strconv.FormatInt(n, 10)
	}
	return v
}
