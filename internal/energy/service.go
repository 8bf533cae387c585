package energy

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
)

// Store is the contract the in-memory history store (and any future
// persistent store) must satisfy.
type Store interface {
	Upsert(sessionID string, entry UsageEntry) error
	List(sessionID string) ([]UsageEntry, error)
}

// ValidationError reports a save rejected at the input boundary. No state is
// mutated when it is returned.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Estimate is the immediate-display result of one estimation pass.
type Estimate struct {
	BaseKWh      float64 `json:"baseKwh"`
	ApplianceKWh float64 `json:"applianceKwh"`
	TotalKWh     float64 `json:"totalKwh"`
	DailyCost    float64 `json:"dailyCost"`
	MonthlyCost  float64 `json:"monthlyCost"`
}

// WeeklyReport bundles the trailing-week slice with its summary statistics
// and the appliance breakdown of the most recent entry.
type WeeklyReport struct {
	Entries   []UsageEntry       `json:"entries"`
	Stats     Stats              `json:"stats"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// Service orchestrates estimation and history persistence for the
// presentation layer.
type Service struct {
	store    Store
	validate *validator.Validate
}

// NewService creates a new Service over the given store.
func NewService(store Store) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
	}
}

// Estimate runs one pure estimation pass for display. Nothing is saved.
func (s *Service) Estimate(profile UserProfile) Estimate {
	base := BaseEnergy(profile.NormalizedHousing())
	appliances := ApplianceEnergy(profile.Appliances)
	total := base + appliances

	return Estimate{
		BaseKWh:      base,
		ApplianceKWh: appliances,
		TotalKWh:     total,
		DailyCost:    DailyCost(total),
		MonthlyCost:  MonthlyCost(total),
	}
}

// SaveUsage validates the profile, computes today's total, and upserts the
// entry keyed by now's calendar date. A second save on the same date
// replaces the first. Rejected saves return a *ValidationError and leave the
// store untouched.
func (s *Service) SaveUsage(sessionID string, profile UserProfile, now time.Time) (UsageEntry, error) {
	if err := s.validate.Struct(profile); err != nil {
		return UsageEntry{}, &ValidationError{Err: err}
	}

	entry := UsageEntry{
		Date:           DateOf(now),
		TotalEnergyKWh: EstimateDailyEnergy(profile.NormalizedHousing(), profile.Appliances),
		Profile:        profile,
		SavedAt:        now,
	}

	if err := s.store.Upsert(sessionID, entry); err != nil {
		return UsageEntry{}, err
	}
	return entry, nil
}

// History returns every saved entry for the session, ascending by date.
func (s *Service) History(sessionID string) ([]UsageEntry, error) {
	entries, err := s.store.List(sessionID)
	if err != nil {
		return nil, err
	}

	// The store gives no order guarantee; trends need date order.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}

// WeeklyReport derives the trailing-week slice, its summary statistics, and
// the breakdown of the latest in-window entry. Returns ErrNoEntries when the
// window is empty.
func (s *Service) WeeklyReport(sessionID string, now time.Time) (WeeklyReport, error) {
	entries, err := s.store.List(sessionID)
	if err != nil {
		return WeeklyReport{}, err
	}

	week := WeeklySlice(entries, now)
	stats, err := SummaryStats(week)
	if err != nil {
		return WeeklyReport{}, err
	}

	return WeeklyReport{
		Entries:   week,
		Stats:     stats,
		Breakdown: ApplianceBreakdown(week[len(week)-1]),
	}, nil
}
