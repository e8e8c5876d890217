package waste

import (
	"math"
	"strconv"
	"strings"
)

// GramsPerKg converts the weight collected by the add screen to kilograms.
const GramsPerKg = 1000.0

func GramsToKg(grams float64) float64 {
	return grams / GramsPerKg
}

// ParseLocalizedFloat parses user typed numbers, accepting both "1.5" and
// "1,5" and ignoring spaces ("1 250").
func ParseLocalizedFloat(text string) (float64, error) {
	return parseNumber("number", text)
}

func parseNumber(field, text string) (float64, error) {
	cleaned := strings.ReplaceAll(text, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0, &ValidationError{Field: field, Value: text, Reason: "is empty"}
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Value: text, Reason: "is not a number"}
	}
	return v, nil
}

// ParseInput turns the raw add form fields into a validated NewEntry.
// The weight field is in grams.
func ParseInput(categoryId int, weightGramsText, pricePerKgText string) (NewEntry, error) {
	grams, err := parseNumber("weightGrams", weightGramsText)
	if err != nil {
		return NewEntry{}, err
	}
	price, err := parseNumber("pricePerKg", pricePerKgText)
	if err != nil {
		return NewEntry{}, err
	}

	n := NewEntry{
		CategoryId: categoryId,
		WeightKg:   GramsToKg(grams),
		PricePerKg: price,
	}
	if err := n.Validate(); err != nil {
		return NewEntry{}, err
	}
	return n, nil
}
