package waste

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/zerowasteroad/zerowaste/pkg/category"
)

// AnyCategory disables the category filter of the store totals.
const AnyCategory = 0

// Entry is one recorded instance of discarded food. Weight is always in
// kilograms, price is per kilogram in an unspecified currency.
type Entry struct {
	Id         uuid.UUID
	Timestamp  time.Time
	CategoryId int
	WeightKg   float64
	PricePerKg float64
}

func (e Entry) TotalCost() float64 {
	return e.WeightKg * e.PricePerKg
}

// Category resolves the entry category, falling back to the default one
// when the stored id is not in the catalog.
func (e Entry) Category() category.Category {
	return category.FindOrDefault(e.CategoryId)
}

func (e Entry) InRange(from, to time.Time) bool {
	return !e.Timestamp.Before(from) && !e.Timestamp.After(to)
}

// NewEntry holds the user supplied fields of an entry. A zero Timestamp
// means "now" according to the store clock.
type NewEntry struct {
	CategoryId int
	WeightKg   float64
	PricePerKg float64
	Timestamp  time.Time
}

func (n NewEntry) Validate() error {
	if err := validateAmount("weightKg", n.WeightKg); err != nil {
		return err
	}
	if err := validateAmount("pricePerKg", n.PricePerKg); err != nil {
		return err
	}
	if !category.Exists(n.CategoryId) {
		return &ValidationError{Field: "categoryID", Value: n.CategoryId, Reason: "unknown category"}
	}
	return nil
}

func validateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Value: v, Reason: "must be a finite number"}
	}
	if v < 0 {
		return &ValidationError{Field: field, Value: v, Reason: "must not be negative"}
	}
	return nil
}
