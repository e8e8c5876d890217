package stats

import (
	"time"

	"github.com/zerowasteroad/zerowaste/pkg/category"
)

// CategoryTotal is the aggregated waste of one category over a range.
type CategoryTotal struct {
	Category category.Category
	WeightKg float64
	Cost     float64
}

// Segment is one slice of the donut chart. Angles are in degrees, measured
// clockwise on screen with 0° at 3 o'clock, so -90° is 12 o'clock.
type Segment struct {
	Category category.Category
	WeightKg float64
	StartDeg float64
	EndDeg   float64
}

func (s Segment) SpanDeg() float64 {
	return s.EndDeg - s.StartDeg
}

// MidAngleDeg is where the segment label is anchored.
func (s Segment) MidAngleDeg() float64 {
	return (s.StartDeg + s.EndDeg) / 2
}

// ShowsLabel reports whether the segment is wide enough for its short title.
func (s Segment) ShowsLabel() bool {
	return ShowsLabel(s.SpanDeg())
}

type StatsSummary struct {
	Period        Period
	StartDate     time.Time
	EndDate       time.Time
	Categories    []CategoryTotal
	Segments      []Segment
	TotalWeightKg float64
	TotalCost     float64
	EntriesCount  int
}

// Empty reports whether there is nothing to chart for the range.
func (s StatsSummary) Empty() bool {
	return len(s.Segments) == 0
}
