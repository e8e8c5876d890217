package waste

import (
	"time"

	"github.com/google/uuid"
)

type demoEntry struct {
	daysAgo    int
	categoryId int
	weightKg   float64
	pricePerKg float64
}

// one entry per category: the first five fall in the last week, the next
// five in the last month and the rest only in the yearly stats
var demoEntries = []demoEntry{
	{0, 1, 0.35, 3.5},
	{0, 2, 0.50, 2.0},
	{2, 3, 0.25, 4.0},
	{3, 4, 0.10, 6.0},
	{5, 5, 0.70, 5.2},

	{10, 6, 0.20, 3.0},
	{14, 7, 0.60, 7.5},
	{18, 8, 0.30, 2.8},
	{22, 9, 0.40, 9.0},
	{27, 10, 0.80, 8.5},

	{40, 11, 1.00, 2.5},
	{70, 12, 0.45, 6.5},
	{120, 13, 0.55, 3.3},
	{200, 14, 0.30, 4.2},
	{280, 15, 0.65, 1.9},
	{330, 16, 0.25, 10.0},
}

// SeedDemo fills the store with preview data relative to now. Nothing is
// written to storage. It returns the number of entries added.
func SeedDemo(s *Store, now time.Time) (int, error) {
	for i, d := range demoEntries {
		entry := Entry{
			Id:         uuid.New(),
			Timestamp:  now.AddDate(0, 0, -d.daysAgo).UTC(),
			CategoryId: d.categoryId,
			WeightKg:   d.weightKg,
			PricePerKg: d.pricePerKg,
		}
		if err := s.AddWithoutPersisting(entry); err != nil {
			return i, err
		}
	}
	return len(demoEntries), nil
}
