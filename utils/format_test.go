package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0", FormatCurrency(0))
	assert.Equal(t, "$5", FormatCurrency(4.995))
	assert.Equal(t, "$4", FormatCurrency(4.4))
	assert.Equal(t, "$100", FormatCurrency(100))
	assert.Equal(t, "$1,000", FormatCurrency(1000))
	assert.Equal(t, "$19,900", FormatCurrency(19900))
	assert.Equal(t, "$1,234,568", FormatCurrency(1234567.89))
}

func TestFormatCurrencyNegative(t *testing.T) {
	assert.Equal(t, "-$5", FormatCurrency(-5))
	assert.Equal(t, "-$1,251", FormatCurrency(-1250.5))
	// Values that round to zero lose the sign
	assert.Equal(t, "$0", FormatCurrency(-0.4))
}

func TestRatingLabel(t *testing.T) {
	assert.Equal(t, "Excellent", RatingLabel(4.8))
	assert.Equal(t, "Excellent", RatingLabel(4.5))
	assert.Equal(t, "Great", RatingLabel(4.2))
	assert.Equal(t, "Great", RatingLabel(4))
	assert.Equal(t, "Good", RatingLabel(3.5))
	assert.Equal(t, "Good", RatingLabel(3))
	assert.Equal(t, "New", RatingLabel(2.9))
	assert.Equal(t, "New", RatingLabel(0))
}
