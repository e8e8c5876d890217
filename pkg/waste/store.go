package waste

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zerowasteroad/zerowaste/internal/event_bus"
	"github.com/zerowasteroad/zerowaste/internal/utils"
	"github.com/zerowasteroad/zerowaste/pkg/settings"
)

// DefaultStorageKey is the settings slot holding the serialized entries.
const DefaultStorageKey = "waste_entries_storage"

// EntryAdded is the payload published on the event bus after every append.
type EntryAdded = event_bus.EntryAdded

// Store owns the append-only, insertion-ordered list of waste entries and
// mirrors it into a single settings slot. Every Add rewrites the whole slot,
// which is fine for a personal log but grows linearly with history.
//
// A failed write does not undo the append: the entry stays visible for the
// rest of the session and is lost only if the process stops before a later
// write succeeds.
type Store struct {
	mu       sync.RWMutex
	entries  []Entry
	ids      map[uuid.UUID]struct{}
	settings settings.Store
	key      string
	bus      *event_bus.EventBus
	clock    utils.Clock
	loadErr  error
}

type Option func(*Store)

func WithStorageKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// NewStore creates the store and loads the persisted entries. A missing slot
// yields an empty store; an unreadable or corrupt slot is logged and also
// yields an empty store, see LoadError.
func NewStore(ctx context.Context, settingsStore settings.Store, bus *event_bus.EventBus, clock utils.Clock, opts ...Option) *Store {
	if bus == nil {
		bus = event_bus.NewEventBus()
	}
	if clock == nil {
		clock = utils.SystemClock{}
	}
	s := &Store{
		entries:  []Entry{},
		ids:      make(map[uuid.UUID]struct{}),
		settings: settingsStore,
		key:      DefaultStorageKey,
		bus:      bus,
		clock:    clock,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.settings.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			log.Debugf("No persisted waste entries under %q, starting empty", s.key)
			return
		}
		s.loadErr = &PersistenceError{Op: "read", Key: s.key, Err: err}
		log.Errorf("Could not read waste entries, starting empty: %v", s.loadErr)
		return
	}
	if len(data) == 0 {
		return
	}

	entries, err := Decode(data)
	if err != nil {
		s.loadErr = &PersistenceError{Op: "decode", Key: s.key, Err: err}
		log.Errorf("Persisted waste entries are corrupted, starting empty: %v", s.loadErr)
		return
	}

	for _, e := range entries {
		if _, dup := s.ids[e.Id]; dup {
			log.Warnf("Duplicate waste entry id %s in %q", e.Id, s.key)
		}
		s.ids[e.Id] = struct{}{}
	}
	s.entries = entries
	log.Debugf("Loaded %d waste entries from %q", len(entries), s.key)
}

// LoadError returns the error swallowed while loading, if any.
func (s *Store) LoadError() error {
	return s.loadErr
}

// Add validates and appends a new entry, then persists the whole collection.
// On a write failure it returns the appended entry together with a
// *PersistenceError.
func (s *Store) Add(ctx context.Context, n NewEntry) (Entry, error) {
	if err := n.Validate(); err != nil {
		return Entry{}, err
	}

	timestamp := n.Timestamp
	if timestamp.IsZero() {
		timestamp = s.clock.Now()
	}

	s.mu.Lock()
	entry := Entry{
		Id:         s.newIdLocked(),
		Timestamp:  timestamp.UTC(),
		CategoryId: n.CategoryId,
		WeightKg:   n.WeightKg,
		PricePerKg: n.PricePerKg,
	}
	s.entries = append(s.entries, entry)
	s.ids[entry.Id] = struct{}{}
	// written under the lock so successive adds reach storage in call order
	persistErr := s.persistLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx, entry, persistErr == nil)

	if persistErr != nil {
		return entry, persistErr
	}
	return entry, nil
}

// AddWithoutPersisting appends a complete entry without touching storage.
// Meant for demo and preview data only.
func (s *Store) AddWithoutPersisting(entry Entry) error {
	s.mu.Lock()
	if _, dup := s.ids[entry.Id]; dup {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrDuplicateId, entry.Id)
	}
	s.entries = append(s.entries, entry)
	s.ids[entry.Id] = struct{}{}
	s.mu.Unlock()

	s.publish(context.Background(), entry, false)
	return nil
}

func (s *Store) newIdLocked() uuid.UUID {
	for {
		id := uuid.New()
		if _, taken := s.ids[id]; !taken {
			return id
		}
	}
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := Encode(s.entries)
	if err != nil {
		err := &PersistenceError{Op: "encode", Key: s.key, Err: err}
		log.Error(err)
		return err
	}
	if err := s.settings.Set(ctx, s.key, data); err != nil {
		err := &PersistenceError{Op: "write", Key: s.key, Err: err}
		log.Errorf("Waste entry kept in memory only: %v", err)
		return err
	}
	return nil
}

func (s *Store) publish(ctx context.Context, entry Entry, persisted bool) {
	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.EntryAddedType, EntryAdded{
		Id:         entry.Id.String(),
		Timestamp:  entry.Timestamp,
		CategoryId: entry.CategoryId,
		WeightKg:   entry.WeightKg,
		PricePerKg: entry.PricePerKg,
		Persisted:  persisted,
	}))
	if err != nil {
		log.Warnf("Failed to notify subscribers about entry %s: %v", entry.Id, err)
	}
}

// Subscribe registers fn to be called after every append.
func (s *Store) Subscribe(fn func(EntryAdded) error) (unsubscribe func()) {
	return event_bus.SubscribeTyped(s.bus, event_bus.EntryAddedType, func(e event_bus.EventT[EntryAdded]) error {
		return fn(e.Data)
	})
}

// Query returns the entries with from <= timestamp <= to in insertion order.
// The result is a fresh slice owned by the caller.
func (s *Store) Query(from, to time.Time) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Entry, 0)
	for _, e := range s.entries {
		if e.InRange(from, to) {
			result = append(result, e)
		}
	}
	return result
}

// TotalWeight sums WeightKg over the range, limited to categoryId unless it
// is AnyCategory.
func (s *Store) TotalWeight(from, to time.Time, categoryId int) float64 {
	return s.sum(from, to, categoryId, func(e Entry) float64 { return e.WeightKg })
}

// TotalCost sums TotalCost over the same selection as TotalWeight.
func (s *Store) TotalCost(from, to time.Time, categoryId int) float64 {
	return s.sum(from, to, categoryId, Entry.TotalCost)
}

func (s *Store) sum(from, to time.Time, categoryId int, value func(Entry) float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, e := range s.entries {
		if !e.InRange(from, to) {
			continue
		}
		if categoryId != AnyCategory && e.CategoryId != categoryId {
			continue
		}
		total += value(e)
	}
	return total
}

// Entries returns a copy of every entry in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Entry, len(s.entries))
	copy(result, s.entries)
	return result
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
