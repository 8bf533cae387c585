package energy

// BaseEnergy returns the fixed daily base load for a housing type.
// Unknown housing types yield 0 rather than an error.
func BaseEnergy(h HousingType) float64 {
	return housingBaseLoad[h]
}

// ApplianceEnergy sums the fixed contributions of every enabled appliance.
func ApplianceEnergy(flags ApplianceFlags) float64 {
	var total float64
	for _, a := range AllAppliances {
		if flags.Enabled(a) {
			total += applianceContribution[a]
		}
	}
	return total
}

// EstimateDailyEnergy combines base load and appliance contributions into the
// estimated daily consumption in kWh. Pure; no rounding is applied here.
func EstimateDailyEnergy(h HousingType, flags ApplianceFlags) float64 {
	return BaseEnergy(h) + ApplianceEnergy(flags)
}

// DailyCost converts a daily energy figure to currency at the flat rate.
func DailyCost(energyKWh float64) float64 {
	return energyKWh * RatePerKWh
}

// MonthlyCost projects a daily energy figure over a 30-day billing month.
func MonthlyCost(energyKWh float64) float64 {
	return energyKWh * DaysPerMonth * RatePerKWh
}
