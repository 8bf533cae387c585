package energy

import (
	"strings"
	"time"
)

// HousingType identifies the size of the dwelling and determines the fixed
// base load (lighting and fans).
type HousingType string

const (
	HousingOneBHK   HousingType = "1bhk"
	HousingTwoBHK   HousingType = "2bhk"
	HousingThreeBHK HousingType = "3bhk"
)

// DwellingKind is informational only; it does not affect estimation.
type DwellingKind string

const (
	DwellingFlat     DwellingKind = "flat"
	DwellingTenement DwellingKind = "tenement"
)

// Appliance identifies one entry of the fixed appliance set.
type Appliance string

const (
	ApplianceAC             Appliance = "ac"
	ApplianceFridge         Appliance = "fridge"
	ApplianceWashingMachine Appliance = "washing_machine"
	ApplianceTV             Appliance = "tv"
	ApplianceMicrowave      Appliance = "microwave"
	ApplianceWaterHeater    Appliance = "water_heater"
)

// AllAppliances lists every appliance in display/export column order.
var AllAppliances = []Appliance{
	ApplianceAC,
	ApplianceFridge,
	ApplianceWashingMachine,
	ApplianceTV,
	ApplianceMicrowave,
	ApplianceWaterHeater,
}

// ApplianceFlags records which appliances are in use.
type ApplianceFlags struct {
	AC             bool `json:"ac"`
	Fridge         bool `json:"fridge"`
	WashingMachine bool `json:"washingMachine"`
	TV             bool `json:"tv"`
	Microwave      bool `json:"microwave"`
	WaterHeater    bool `json:"waterHeater"`
}

// Enabled reports whether the flag for the given appliance is set.
func (f ApplianceFlags) Enabled(a Appliance) bool {
	switch a {
	case ApplianceAC:
		return f.AC
	case ApplianceFridge:
		return f.Fridge
	case ApplianceWashingMachine:
		return f.WashingMachine
	case ApplianceTV:
		return f.TV
	case ApplianceMicrowave:
		return f.Microwave
	case ApplianceWaterHeater:
		return f.WaterHeater
	default:
		return false
	}
}

// UserProfile is the per-session profile supplied by the presentation layer.
// Name must be non-empty before a save is accepted.
type UserProfile struct {
	Name       string         `json:"name" validate:"required"`
	Age        int            `json:"age" validate:"omitempty,gte=1,lte=120"`
	City       string         `json:"city"`
	Area       string         `json:"area"`
	Dwelling   DwellingKind   `json:"dwelling"`
	Housing    HousingType    `json:"housing"`
	Appliances ApplianceFlags `json:"appliances"`
}

// NormalizedHousing lowercases the housing type so "2BHK" and "2bhk" hit the
// same tariff row.
func (p UserProfile) NormalizedHousing() HousingType {
	return HousingType(strings.ToLower(string(p.Housing)))
}

const dayFormat = "2006-01-02"

// UsageEntry is one saved day of estimated usage. At most one entry exists
// per calendar date; a later save on the same date replaces it.
type UsageEntry struct {
	Date           time.Time   `json:"date"`
	TotalEnergyKWh float64     `json:"totalEnergyKwh"`
	Profile        UserProfile `json:"profile"`
	SavedAt        time.Time   `json:"savedAt"`
}

// DateKey returns the calendar-date key (YYYY-MM-DD) used for upserts.
func (e UsageEntry) DateKey() string {
	return e.Date.Format(dayFormat)
}

// DateOf truncates t to midnight in its own location. All day-granularity
// comparisons go through this so a request captures its date exactly once.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
