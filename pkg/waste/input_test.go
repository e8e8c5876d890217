package waste

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalizedFloat(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"250", 250},
		{"12.5", 12.5},
		{"12,5", 12.5},
		{" 1 250 ", 1250},
		{"0", 0},
		{",5", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseLocalizedFloat(tt.text)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, invalid := range []string{"", "   ", "abc", "1,2,3", "NaN", "Inf", "12kg"} {
		_, err := ParseLocalizedFloat(invalid)
		assert.ErrorIs(t, err, ErrValidation, invalid)
	}
}

func TestGramsToKg(t *testing.T) {
	assert.Equal(t, 0.5, GramsToKg(500))
	assert.Equal(t, 0.0, GramsToKg(0))
	assert.Equal(t, 1.25, GramsToKg(1250))
}

func TestParseInput(t *testing.T) {
	t.Run("should convert grams to kilograms", func(t *testing.T) {
		n, err := ParseInput(2, "500", "2,0")

		require.NoError(t, err)
		assert.Equal(t, NewEntry{CategoryId: 2, WeightKg: 0.5, PricePerKg: 2.0}, n)
	})

	t.Run("should name the offending field", func(t *testing.T) {
		_, err := ParseInput(2, "", "2")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "weightGrams", validationErr.Field)

		_, err = ParseInput(2, "100", "two")
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "pricePerKg", validationErr.Field)
	})

	t.Run("should reject negative numbers and unknown categories", func(t *testing.T) {
		_, err := ParseInput(2, "-100", "2")
		assert.ErrorIs(t, err, ErrValidation)

		_, err = ParseInput(42, "100", "2")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "categoryID", validationErr.Field)
	})
}
