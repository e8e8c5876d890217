package event_bus

import "time"

const (
	EntryAddedType EventType = "waste.entry.added"
)

// EntryAdded is published after a waste entry has been appended to the store.
// Persisted is false when the entry is only held in memory, either because it
// was seeded or because the write to the settings slot failed.
type EntryAdded struct {
	Id         string
	Timestamp  time.Time
	CategoryId int
	WeightKg   float64
	PricePerKg float64
	Persisted  bool
}
