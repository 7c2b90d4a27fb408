package usecase

import (
	"regexp"
	"strconv"
)

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// ParsePrice normalizes raw price text by stripping every character that is
// not a digit or decimal point, then parses the remainder. The second return
// value is false when the text holds no parseable amount, so callers can tell
// an unparseable price apart from a genuinely free item.
func ParsePrice(raw string) (float64, bool) {
	cleaned := nonPriceChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
