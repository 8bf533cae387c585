package energy

import (
	"errors"
	"sort"
	"time"
)

// ErrNoEntries is returned when summary statistics are requested over an
// empty set of entries. Callers that render stats must guard with a
// non-empty check or handle this error.
var ErrNoEntries = errors.New("no usage entries to aggregate")

// Stats summarizes the total daily energy over a set of entries.
type Stats struct {
	Sum  float64 `json:"sumKwh"`
	Mean float64 `json:"meanKwh"`
	Max  float64 `json:"maxKwh"`
	Min  float64 `json:"minKwh"`
}

// WeeklySlice filters entries whose date falls within the trailing 7-day
// window ending at now (inclusive on both ends, day granularity) and returns
// them sorted ascending by date. An empty result is not an error.
func WeeklySlice(entries []UsageEntry, now time.Time) []UsageEntry {
	end := DateOf(now)
	start := end.AddDate(0, 0, -7)

	out := make([]UsageEntry, 0, len(entries))
	for _, e := range entries {
		d := DateOf(e.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// SummaryStats computes sum/mean/max/min of TotalEnergyKWh.
// Returns ErrNoEntries for empty input.
func SummaryStats(entries []UsageEntry) (Stats, error) {
	if len(entries) == 0 {
		return Stats{}, ErrNoEntries
	}

	stats := Stats{
		Max: entries[0].TotalEnergyKWh,
		Min: entries[0].TotalEnergyKWh,
	}
	for _, e := range entries {
		v := e.TotalEnergyKWh
		stats.Sum += v
		if v > stats.Max {
			stats.Max = v
		}
		if v < stats.Min {
			stats.Min = v
		}
	}
	stats.Mean = stats.Sum / float64(len(entries))
	return stats, nil
}

// BreakdownBase labels the base-load bucket in an appliance breakdown.
const BreakdownBase = "Base (Lights & Fans)"

// Label returns the display name used in breakdowns and export columns.
func (a Appliance) Label() string {
	switch a {
	case ApplianceAC:
		return "AC"
	case ApplianceFridge:
		return "Fridge"
	case ApplianceWashingMachine:
		return "Washing Machine"
	case ApplianceTV:
		return "TV"
	case ApplianceMicrowave:
		return "Microwave"
	case ApplianceWaterHeater:
		return "Water Heater"
	default:
		return string(a)
	}
}

// ApplianceBreakdown recomputes the fixed per-appliance contributions for the
// entry's profile snapshot, plus the base-load bucket. Zero-valued
// contributors are filtered out, so only active appliances appear.
func ApplianceBreakdown(entry UsageEntry) map[string]float64 {
	out := make(map[string]float64)

	for _, a := range AllAppliances {
		if !entry.Profile.Appliances.Enabled(a) {
			continue
		}
		if v := applianceContribution[a]; v > 0 {
			out[a.Label()] = v
		}
	}

	if base := BaseEnergy(entry.Profile.NormalizedHousing()); base > 0 {
		out[BreakdownBase] = base
	}
	return out
}
