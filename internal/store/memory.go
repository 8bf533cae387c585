package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/electricity-usage-tracker/internal/energy"
)

var (
	// ErrNotFound is returned when no history exists for a given session.
	ErrNotFound = errors.New("no usage data for session")
)

// sessionHistory holds one session's entries plus its activity marker.
// Entries keep insertion order; consumers sort by date.
type sessionHistory struct {
	entries    []energy.UsageEntry
	lastActive time.Time
}

// MemoryStore is a concurrency-safe in-memory usage store keyed by session.
// Sessions never see each other's entries. Lifetime is the process; the
// exporter is the only durability escape hatch.
type MemoryStore struct {
	// Reads also refresh session activity, so a plain mutex guards both.
	mu sync.Mutex

	// key: session ID, value: history
	sessions map[string]*sessionHistory

	// maxEntries caps entries per session (0 = unlimited).
	maxEntries int
}

// NewMemoryStore creates a new MemoryStore with an optional per-session
// entry cap. If maxEntries is <= 0, it is treated as unlimited.
func NewMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string]*sessionHistory),
		maxEntries: maxEntries,
	}
}

// NewSession registers an empty history and returns its ID.
func (s *MemoryStore) NewSession() string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &sessionHistory{lastActive: time.Now()}
	return id
}

// Upsert inserts or replaces the session's entry for the entry's calendar
// date. Exactly one entry per date survives; the newest values win.
func (s *MemoryStore) Upsert(sessionID string, entry energy.UsageEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	history.lastActive = time.Now()

	key := entry.DateKey()
	for i, existing := range history.entries {
		if existing.DateKey() == key {
			history.entries[i] = entry
			return nil
		}
	}
	history.entries = append(history.entries, entry)

	// Enforce the per-session cap by dropping the oldest date.
	if s.maxEntries > 0 && len(history.entries) > s.maxEntries {
		oldest := 0
		for i, e := range history.entries {
			if e.Date.Before(history.entries[oldest].Date) {
				oldest = i
			}
		}
		history.entries = append(history.entries[:oldest], history.entries[oldest+1:]...)
	}
	return nil
}

// List returns a copy of the session's entries. Order is not guaranteed;
// callers must sort by date when deriving trends.
func (s *MemoryStore) List(sessionID string) ([]energy.UsageEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	history.lastActive = time.Now()

	out := make([]energy.UsageEntry, len(history.entries))
	copy(out, history.entries)
	return out, nil
}

// PruneIdle drops sessions with no activity since the TTL and returns how
// many were removed.
func (s *MemoryStore) PruneIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	var pruned int
	for id, history := range s.sessions {
		if history.lastActive.Before(cutoff) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}
