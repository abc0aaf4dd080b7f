package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/rcnapps/ordinand/internal/common"
	"github.com/rcnapps/ordinand/internal/logging"
)

// Store keeps live drafts in memory, keyed by session id. Drafts that sit
// idle longer than the TTL are swept. There is no persistence: abandoning a
// draft abandons it.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*Draft
	ttl    time.Duration
	logger logging.Logger

	// now is a test seam.
	now func() time.Time
}

// NewStore creates a Store with the given idle TTL.
func NewStore(ttl time.Duration, logger logging.Logger) *Store {
	return &Store{
		drafts: make(map[string]*Draft),
		ttl:    ttl,
		logger: logger.With("module", "wizard_store"),
		now:    time.Now,
	}
}

// Create registers a fresh draft and returns it by value snapshot id.
func (s *Store) Create() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := newDraft()
	d.touched = s.now()
	s.drafts[d.ID] = d
	return d.Snapshot()
}

// Update runs fn on the draft identified by id while holding the store lock,
// refreshing the idle timer. Expired or unknown sessions yield
// common.ErrorSessionNotFound.
func (s *Store) Update(id string, fn func(d *Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return common.ErrorSessionNotFound
	}
	if s.now().Sub(d.touched) > s.ttl {
		delete(s.drafts, id)
		return common.ErrorSessionNotFound
	}
	d.touched = s.now()
	return fn(d)
}

// Snapshot returns the current state of a draft.
func (s *Store) Snapshot(id string) (Snapshot, error) {
	var snap Snapshot
	err := s.Update(id, func(d *Draft) error {
		snap = d.Snapshot()
		return nil
	})
	return snap, err
}

// Run sweeps expired drafts until ctx is cancelled.
func (s *Store) Run(ctx context.Context) {
	interval := s.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Store) sweep(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	swept := 0
	for id, d := range s.drafts {
		if d.touched.Before(cutoff) {
			delete(s.drafts, id)
			swept++
		}
	}
	if swept > 0 {
		s.logger.Info(ctx, "swept expired draft sessions", "count", swept)
	}
}
