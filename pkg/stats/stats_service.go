package stats

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zerowasteroad/zerowaste/internal/utils"
	"github.com/zerowasteroad/zerowaste/pkg/waste"
)

// EntryReader is the read side of the waste store.
type EntryReader interface {
	Query(from, to time.Time) []waste.Entry
}

type StatsService interface {
	GetStats(ctx context.Context, period Period) (StatsSummary, error)
	GetStatsBetween(ctx context.Context, from time.Time, to time.Time) (StatsSummary, error)
}

type StatsServiceImpl struct {
	entries  EntryReader
	clock    utils.Clock
	location *time.Location
}

func NewStatsServiceImpl(entries EntryReader, clock utils.Clock, location *time.Location) *StatsServiceImpl {
	if clock == nil {
		clock = &utils.SystemClock{}
	}
	if location == nil {
		location = time.Local
	}
	return &StatsServiceImpl{
		entries:  entries,
		clock:    clock,
		location: location,
	}
}

func (s *StatsServiceImpl) GetStats(ctx context.Context, period Period) (StatsSummary, error) {
	from, to, err := period.Range(s.clock.Now(), s.location)
	if err != nil {
		return StatsSummary{}, err
	}
	summary, err := s.GetStatsBetween(ctx, from, to)
	if err != nil {
		return StatsSummary{}, err
	}
	summary.Period = period
	return summary, nil
}

func (s *StatsServiceImpl) GetStatsBetween(ctx context.Context, from time.Time, to time.Time) (StatsSummary, error) {
	if err := ctx.Err(); err != nil {
		return StatsSummary{}, err
	}

	entries := s.entries.Query(from, to)
	log.Tracef("Entries between %v and %v: %d", from, to, len(entries))

	totalWeight, totalCost := 0.0, 0.0
	for _, e := range entries {
		totalWeight += e.WeightKg
		totalCost += e.TotalCost()
	}

	categories := Summarize(entries)
	segments := LayoutSegments(categories)
	log.Debugf("Stats between %v and %v: %d categories, %.3f kg", from, to, len(categories), totalWeight)

	return StatsSummary{
		StartDate:     from,
		EndDate:       to,
		Categories:    categories,
		Segments:      segments,
		TotalWeightKg: totalWeight,
		TotalCost:     totalCost,
		EntriesCount:  len(entries),
	}, nil
}
