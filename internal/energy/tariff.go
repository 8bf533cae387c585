package energy

// RatePerKWh is the flat tariff applied to every cost figure.
const RatePerKWh = 6.0

// DaysPerMonth is the billing-month length used for monthly projections.
const DaysPerMonth = 30

// housingBaseLoad maps housing type to its fixed daily base load in kWh,
// derived from rooms x 0.4 (lighting) + rooms x 0.8 (fans).
var housingBaseLoad = map[HousingType]float64{
	HousingOneBHK:   2*0.4 + 2*0.8, // 2.4
	HousingTwoBHK:   3*0.4 + 3*0.8, // 3.6
	HousingThreeBHK: 4*0.4 + 4*0.8, // 4.8
}

// applianceContribution maps each appliance to its fixed daily energy in kWh
// (rated power x assumed hours, or energy per cycle).
var applianceContribution = map[Appliance]float64{
	ApplianceAC:             1.5 * 8,   // 12.0
	ApplianceFridge:         0.15 * 24, // 3.6
	ApplianceWashingMachine: 2,         // one cycle
	ApplianceTV:             0.15 * 6,  // 0.9
	ApplianceMicrowave:      1.2 * 0.5, // 0.6
	ApplianceWaterHeater:    2.0 * 2,   // 4.0
}

// Contribution returns the fixed daily energy for one appliance, or 0 for an
// unknown appliance.
func Contribution(a Appliance) float64 {
	return applianceContribution[a]
}
