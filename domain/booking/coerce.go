package booking

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// isoFormat is the output layout for all coerced dates.
const isoFormat = "2006-01-02T15:04:05"

// datePatterns are tried in this fixed order. The order means an input
// like "04/05/2025" parses as day=4 month=5 under the DD/MM/YYYY pattern
// before MM/DD/YYYY is ever tried; this ambiguity is inherited from the
// reference templates and left as-is.
var datePatterns = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
}

// CoerceNumeric converts a cell value to a float64, returning def on blank
// input or any conversion failure. It never fails.
func CoerceNumeric(value string, def float64) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	// Tolerate thousands separators the way spreadsheets render them.
	value = strings.ReplaceAll(value, ",", "")
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(parsed, 0) || math.IsNaN(parsed) {
		return def
	}
	return parsed
}

// CoerceDate converts a cell value to ISO-8601, trying each known pattern
// in order. Input that matches no pattern is returned unchanged; rejecting
// malformed dates is the validator's job, not this function's.
func CoerceDate(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return value
	}
	for _, pattern := range datePatterns {
		if t, err := time.Parse(pattern, trimmed); err == nil {
			return t.Format(isoFormat)
		}
	}
	return value
}

// CoerceBool interprets spreadsheet yes/no style cells. Unrecognized input
// yields def.
func CoerceBool(value string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "y", "on":
		return true
	case "false", "0", "no", "n", "off":
		return false
	}
	return def
}
