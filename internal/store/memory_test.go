package store

import (
	"errors"
	"testing"
	"time"

	"github.com/i474232898/electricity-usage-tracker/internal/energy"
)

func entryOn(day string, total float64) energy.UsageEntry {
	date, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		panic(err)
	}
	return energy.UsageEntry{
		Date:           date,
		TotalEnergyKWh: total,
		SavedAt:        time.Now(),
	}
}

func TestUpsertReplacesSameDate(t *testing.T) {
	s := NewMemoryStore(0)
	id := s.NewSession()

	if err := s.Upsert(id, entryOn("2024-01-01", 10.0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Upsert(id, entryOn("2024-01-01", 15.0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := s.List(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries))
	}
	if entries[0].TotalEnergyKWh != 15.0 {
		t.Fatalf("expected second save to win, got %v", entries[0].TotalEnergyKWh)
	}
}

func TestUpsertAppendsDistinctDates(t *testing.T) {
	s := NewMemoryStore(0)
	id := s.NewSession()

	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		if err := s.Upsert(id, entryOn(day, 5)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := s.List(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func TestUnknownSession(t *testing.T) {
	s := NewMemoryStore(0)

	if err := s.Upsert("missing", entryOn("2024-01-01", 5)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Upsert: expected ErrNotFound, got %v", err)
	}
	if _, err := s.List("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("List: expected ErrNotFound, got %v", err)
	}
}

func TestSessionIsolation(t *testing.T) {
	s := NewMemoryStore(0)
	a := s.NewSession()
	b := s.NewSession()

	if err := s.Upsert(a, entryOn("2024-01-01", 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := s.List(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("session b sees %d entries from session a", len(entries))
	}
}

func TestMaxEntriesDropsOldestDate(t *testing.T) {
	s := NewMemoryStore(2)
	id := s.NewSession()

	// Saved out of date order; the cap must still evict the oldest date.
	for _, day := range []string{"2024-01-02", "2024-01-01", "2024-01-03"} {
		if err := s.Upsert(id, entryOn(day, 5)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := s.List(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after trim, got %d", len(entries))
	}
	for _, e := range entries {
		if e.DateKey() == "2024-01-01" {
			t.Fatal("oldest entry should have been evicted")
		}
	}
}

func TestPruneIdle(t *testing.T) {
	s := NewMemoryStore(0)
	idle := s.NewSession()
	active := s.NewSession()

	// Backdate the idle session past the TTL.
	s.mu.Lock()
	s.sessions[idle].lastActive = time.Now().Add(-2 * time.Hour)
	s.mu.Unlock()

	if pruned := s.PruneIdle(time.Hour); pruned != 1 {
		t.Fatalf("expected 1 pruned session, got %d", pruned)
	}

	if _, err := s.List(idle); !errors.Is(err, ErrNotFound) {
		t.Fatalf("idle session should be gone, got %v", err)
	}
	if _, err := s.List(active); err != nil {
		t.Fatalf("active session should survive, got %v", err)
	}
}
