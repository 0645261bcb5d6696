// Package distance normalizes free-text facility distances to meters.
package distance

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseText extracts a leading numeric token from a human-entered distance
// string and converts it to meters. "2.5 km" and "800 m" behave as
// expected; a bare number ("3") is read as kilometers. The second return
// value is false when no usable number is present.
func ParseText(text string) (int, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, false
	}

	numEnd := 0
	for numEnd < len(trimmed) {
		ch := trimmed[numEnd]
		if (ch >= '0' && ch <= '9') || ch == '.' || (numEnd == 0 && (ch == '-' || ch == '+')) {
			numEnd++
			continue
		}
		break
	}

	value, err := strconv.ParseFloat(trimmed[:numEnd], 64)
	if err != nil || value < 0 {
		return 0, false
	}

	lower := strings.ToLower(trimmed[numEnd:])
	switch {
	case strings.Contains(lower, "km"):
		return int(math.Round(value * 1000)), true
	case strings.Contains(lower, "m"):
		return int(math.Round(value)), true
	default:
		// No unit given; distances are conventionally quoted in km.
		return int(math.Round(value * 1000)), true
	}
}

// Format renders a canonical meters value as a display string matching the
// style users type by hand.
func Format(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}
