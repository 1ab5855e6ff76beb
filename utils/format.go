package utils

import (
	"math"
	"strconv"
)

// FormatCurrency renders a price the way the storefront shows it: US dollars,
// thousands separators, no fraction digits. Halves round away from zero, so
// 4.995 renders as "$5" and -1250.5 as "-$1,251".
func FormatCurrency(value float64) string {
	n := int64(math.Round(math.Abs(value)))

	digits := strconv.FormatInt(n, 10)
	grouped := ""
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped += ","
		}
		grouped += string(d)
	}

	if value < 0 && n != 0 {
		return "-$" + grouped
	}
	return "$" + grouped
}

// RatingLabel maps a course rating onto the label shown on course cards.
func RatingLabel(rating float64) string {
	if rating >= 4.5 {
		return "Excellent"
	}
	if rating >= 4 {
		return "Great"
	}
	if rating >= 3 {
		return "Good"
	}
	return "New"
}
