package app

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/zerowasteroad/zerowaste/internal/config"
	"github.com/zerowasteroad/zerowaste/pkg/stats"
)

// Application wires configuration and services and prints the waste breakdown.
type Application struct {
	cfg    config.Application
	deps   *Dependencies
	period stats.Period
}

// NewApplication builds the application from an already loaded configuration.
func NewApplication(ctx context.Context, cfg config.Application) (*Application, error) {
	period, err := stats.ParsePeriod(cfg.Stats.Period)
	if err != nil {
		return nil, err
	}

	deps, err := BuildDependencies(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Application{cfg: cfg, deps: deps, period: period}, nil
}

func (a *Application) Dependencies() *Dependencies {
	return a.deps
}

// Run writes the CSV breakdown of the configured period to out.
func (a *Application) Run(ctx context.Context, out io.Writer) error {
	summary, err := a.deps.StatsService.GetStats(ctx, a.period)
	if err != nil {
		return err
	}
	log.Infof("Waste in the last %s: %d entries, %.3f kg, cost %.2f",
		a.period, summary.EntriesCount, summary.TotalWeightKg, summary.TotalCost)

	csv, err := a.deps.CsvStatsRenderer.RenderStats(summary)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(out, csv); err != nil {
		return err
	}
	return nil
}

// Close releases database connections.
func (a *Application) Close() {
	a.deps.Close()
}
