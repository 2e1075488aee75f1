package service

import (
	"strconv"
	"strings"
)

// matchBand evaluates a textual band predicate against a numeric value.
// Supported shapes: "<=3", ">=7", "4-6" and a bare integer. Anything else
// never matches.
func matchBand(band string, value int) bool {
	band = strings.TrimSpace(band)

	switch {
	case strings.HasPrefix(band, "<="):
		limit, err := strconv.Atoi(strings.TrimSpace(band[2:]))

		return err == nil && value <= limit
	case strings.HasPrefix(band, ">="):
		limit, err := strconv.Atoi(strings.TrimSpace(band[2:]))

		return err == nil && value >= limit
	case strings.Contains(band, "-"):
		parts := strings.SplitN(band, "-", 2)

		low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return false
		}

		high, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return false
		}

		return value >= low && value <= high
	default:
		exact, err := strconv.Atoi(band)

		return err == nil && value == exact
	}
}
