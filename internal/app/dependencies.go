package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zerowasteroad/zerowaste/internal/config"
	"github.com/zerowasteroad/zerowaste/internal/database"
	"github.com/zerowasteroad/zerowaste/internal/event_bus"
	"github.com/zerowasteroad/zerowaste/internal/utils"
	"github.com/zerowasteroad/zerowaste/pkg/settings"
	"github.com/zerowasteroad/zerowaste/pkg/stats"
	"github.com/zerowasteroad/zerowaste/pkg/waste"
)

// Dependencies holds all services of the application.
type Dependencies struct {
	Settings settings.Store
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	WasteStore *waste.Store

	StatsService     *stats.StatsServiceImpl
	CsvStatsRenderer *stats.CsvStatsRendererImpl

	closers []func()
}

// Close releases the database handles opened for the settings backend.
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}

// BuildDependencies opens the configured settings backend and wires all services on top of it.
func BuildDependencies(ctx context.Context, cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	store, err := deps.openSettings(ctx, cfg)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.Settings = store

	location, err := time.LoadLocation(cfg.Stats.Timezone)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("invalid stats.timezone %q: %w", cfg.Stats.Timezone, err)
	}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.WasteStore = waste.NewStore(ctx, deps.Settings, deps.EventBus, deps.Clock, waste.WithStorageKey(cfg.Storage.Key))
	if err := deps.WasteStore.LoadError(); err != nil {
		log.Warnf("Starting with an empty waste log: %v", err)
	}
	deps.WasteStore.Subscribe(func(e waste.EntryAdded) error {
		log.Debugf("Waste entry %s added (category %d, %.3f kg, persisted: %t)", e.Id, e.CategoryId, e.WeightKg, e.Persisted)
		return nil
	})

	if cfg.Demo.Seed {
		n, err := waste.SeedDemo(deps.WasteStore, deps.Clock.Now())
		if err != nil {
			deps.Close()
			return nil, err
		}
		log.Infof("Seeded %d demo waste entries", n)
	}

	deps.StatsService = stats.NewStatsServiceImpl(deps.WasteStore, deps.Clock, location)
	deps.CsvStatsRenderer = stats.NewCsvStatsRenderer()

	return deps, nil
}

func (d *Dependencies) openSettings(ctx context.Context, cfg config.Application) (settings.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSqlite:
		db, err := database.OpenSqlite(cfg.Storage.Path)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, func() { _ = db.Close() })
		if err := database.MigrateSqlite(db); err != nil {
			return nil, err
		}
		log.Infof("Using SQLite settings store at %s", cfg.Storage.Path)
		return settings.NewSqliteStore(db), nil
	case config.DriverPostgres:
		if err := database.MigratePostgres(cfg.Database); err != nil {
			return nil, err
		}
		pool, err := database.OpenPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, pool.Close)
		log.Infof("Using PostgreSQL settings store at %s:%d", cfg.Database.Host, cfg.Database.Port)
		return settings.NewPostgresStore(pool), nil
	case config.DriverMemory:
		log.Warn("Using in-memory settings store, entries will not survive a restart")
		return settings.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
