package waste

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// entryRecord is the persisted form of an Entry. Field names are part of the
// on-disk contract and must not change.
type entryRecord struct {
	Id         uuid.UUID `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	CategoryId int       `json:"categoryID"`
	WeightKg   float64   `json:"weightKg"`
	PricePerKg float64   `json:"pricePerKg"`
}

// Encode serializes the ordered collection as a JSON array. Timestamps are
// written in UTC with nanosecond precision.
func Encode(entries []Entry) ([]byte, error) {
	records := make([]entryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, entryRecord{
			Id:         e.Id,
			Timestamp:  e.Timestamp.UTC(),
			CategoryId: e.CategoryId,
			WeightKg:   e.WeightKg,
			PricePerKg: e.PricePerKg,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode entries: %w", err)
	}
	return data, nil
}

// Decode parses a payload produced by Encode, preserving order.
func Decode(data []byte) ([]Entry, error) {
	var records []entryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode entries: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("failed to decode entries: payload is not a list")
	}

	entries := make([]Entry, 0, len(records))
	for i, r := range records {
		if r.Id == uuid.Nil {
			return nil, fmt.Errorf("failed to decode entries: record %d has no id", i)
		}
		entries = append(entries, Entry{
			Id:         r.Id,
			Timestamp:  r.Timestamp.UTC(),
			CategoryId: r.CategoryId,
			WeightKg:   r.WeightKg,
			PricePerKg: r.PricePerKg,
		})
	}
	return entries, nil
}
