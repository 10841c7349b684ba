package core

import (
	"math"
	"strings"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Round rounds half up, to the nearest integer.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Percentage returns round(value / total * 100), or 0 when total is 0.
func Percentage(value, total int) int {
	if total == 0 {
		return 0
	}
	return Round(float64(value) / float64(total) * 100)
}
