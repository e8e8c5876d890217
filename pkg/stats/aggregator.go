package stats

import (
	"cmp"
	"slices"

	"github.com/zerowasteroad/zerowaste/pkg/category"
	"github.com/zerowasteroad/zerowaste/pkg/waste"
)

const (
	// StartAngleDeg puts the first segment at 12 o'clock.
	StartAngleDeg = -90.0
	FullCircleDeg = 360.0
	// LabelMinSpanDeg is the span a segment must exceed to get a label.
	LabelMinSpanDeg = 12.0
)

func ShowsLabel(spanDeg float64) bool {
	return spanDeg > LabelMinSpanDeg
}

// GroupByCategory sums the weight of the entries per category id. Categories
// without entries are absent from the result.
func GroupByCategory(entries []waste.Entry) map[int]float64 {
	byCategory := make(map[int]float64)
	for _, e := range entries {
		byCategory[e.CategoryId] += e.WeightKg
	}
	return byCategory
}

func groupCostByCategory(entries []waste.Entry) map[int]float64 {
	byCategory := make(map[int]float64)
	for _, e := range entries {
		byCategory[e.CategoryId] += e.TotalCost()
	}
	return byCategory
}

// Summarize returns the per category totals sorted by weight, heaviest first,
// with ties ordered by category id. Unknown categories and non-positive
// totals are left out.
func Summarize(entries []waste.Entry) []CategoryTotal {
	weights := GroupByCategory(entries)
	costs := groupCostByCategory(entries)

	summary := make([]CategoryTotal, 0, len(weights))
	for id, weight := range weights {
		c, ok := category.Find(id)
		if !ok || !(weight > 0) {
			continue
		}
		summary = append(summary, CategoryTotal{Category: c, WeightKg: weight, Cost: costs[id]})
	}

	slices.SortFunc(summary, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.WeightKg, a.WeightKg); c != 0 {
			return c
		}
		return cmp.Compare(a.Category.Id, b.Category.Id)
	})
	return summary
}

// LayoutSegments splits the full circle proportionally to the summary
// weights, clockwise from StartAngleDeg, keeping the summary order. The last
// segment is closed exactly at StartAngleDeg+FullCircleDeg.
func LayoutSegments(summary []CategoryTotal) []Segment {
	total := 0.0
	positive := make([]CategoryTotal, 0, len(summary))
	for _, ct := range summary {
		if ct.WeightKg > 0 {
			total += ct.WeightKg
			positive = append(positive, ct)
		}
	}

	segments := make([]Segment, 0, len(positive))
	if total <= 0 {
		return segments
	}

	current := StartAngleDeg
	for i, ct := range positive {
		end := current + ct.WeightKg/total*FullCircleDeg
		if i == len(positive)-1 {
			end = StartAngleDeg + FullCircleDeg
		}
		segments = append(segments, Segment{
			Category: ct.Category,
			WeightKg: ct.WeightKg,
			StartDeg: current,
			EndDeg:   end,
		})
		current = end
	}
	return segments
}
