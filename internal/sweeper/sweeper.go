package sweeper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/electricity-usage-tracker/internal/store"
)

// Sweeper periodically purges sessions that have been idle past their TTL.
type Sweeper struct {
	scheduler *gocron.Scheduler
	store     *store.MemoryStore
	ttl       time.Duration
	interval  time.Duration
}

// New creates a new Sweeper over the given store.
func New(st *store.MemoryStore, ttl, interval time.Duration) *Sweeper {
	s := gocron.NewScheduler(time.UTC)
	return &Sweeper{
		scheduler: s,
		store:     st,
		ttl:       ttl,
		interval:  interval,
	}
}

// Start schedules the periodic purge job and starts the underlying scheduler.
func (s *Sweeper) Start() error {
	if s.ttl <= 0 {
		log.Println("sweeper: session TTL disabled; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		if pruned := s.store.PruneIdle(s.ttl); pruned > 0 {
			log.Printf("sweeper: purged %d idle session(s)", pruned)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Sweeper) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
