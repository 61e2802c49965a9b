package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultIdleTimeout = 30 * time.Minute

// Store keeps wizard flows in memory, keyed by session ID. Flows untouched for
// longer than the idle timeout are dropped by EvictIdle.
type Store struct {
	mu          sync.RWMutex
	flows       map[string]*Flow
	lastAccess  map[string]time.Time
	idleTimeout time.Duration
	recommender Recommender
	now         func() time.Time
}

func NewStore(recommender Recommender, idleTimeout time.Duration) *Store {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Store{
		flows:       make(map[string]*Flow),
		lastAccess:  make(map[string]time.Time),
		idleTimeout: idleTimeout,
		recommender: recommender,
		now:         time.Now,
	}
}

func (s *Store) Create() *Flow {
	flow := NewFlow(uuid.NewString(), s.recommender)

	s.mu.Lock()
	s.flows[flow.ID()] = flow
	s.lastAccess[flow.ID()] = s.now()
	s.mu.Unlock()

	return flow
}

// Get returns the flow and marks it as used.
func (s *Store) Get(id string) (*Flow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, ok := s.flows[id]
	if ok {
		s.lastAccess[id] = s.now()
	}
	return flow, ok
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flows[id]; !ok {
		return false
	}
	delete(s.flows, id)
	delete(s.lastAccess, id)
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flows)
}

// EvictIdle removes flows last used before now minus the idle timeout and
// returns how many were removed. A flow waiting on the recommender is kept.
func (s *Store) EvictIdle() int {
	cutoff := s.now().Add(-s.idleTimeout)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, seen := range s.lastAccess {
		if !seen.Before(cutoff) || s.flows[id].Loading() {
			continue
		}
		delete(s.flows, id)
		delete(s.lastAccess, id)
		evicted++
	}
	return evicted
}

// Run evicts idle flows on every tick until ctx is cancelled, then returns ctx.Err().
func (s *Store) Run(ctx context.Context, interval time.Duration, onEvict func(n int)) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := s.EvictIdle(); n > 0 && onEvict != nil {
				onEvict(n)
			}
		}
	}
}
