package energy

import (
	"math"
	"testing"
)

func TestBaseEnergyPerHousingType(t *testing.T) {
	cases := []struct {
		housing HousingType
		want    float64
	}{
		{HousingOneBHK, 2.4},
		{HousingTwoBHK, 3.6},
		{HousingThreeBHK, 4.8},
	}

	for _, tc := range cases {
		if got := EstimateDailyEnergy(tc.housing, ApplianceFlags{}); got != tc.want {
			t.Errorf("EstimateDailyEnergy(%s, none) = %v, want %v", tc.housing, got, tc.want)
		}
	}
}

func TestUnknownHousingDefaultsToZero(t *testing.T) {
	if got := BaseEnergy("5bhk"); got != 0 {
		t.Fatalf("BaseEnergy(unknown) = %v, want 0", got)
	}
}

func TestEstimateTwoBHKWithACAndFridge(t *testing.T) {
	flags := ApplianceFlags{AC: true, Fridge: true}

	total := EstimateDailyEnergy(HousingTwoBHK, flags)
	if !almostEqual(total, 19.2) {
		t.Fatalf("total = %v, want 19.2", total)
	}
	if cost := DailyCost(total); !almostEqual(cost, 115.2) {
		t.Errorf("DailyCost = %v, want 115.2", cost)
	}
	if cost := MonthlyCost(total); !almostEqual(cost, 3456.0) {
		t.Errorf("MonthlyCost = %v, want 3456.0", cost)
	}
}

func TestEstimateIsSumOfContributions(t *testing.T) {
	subsets := []ApplianceFlags{
		{},
		{TV: true},
		{AC: true, WaterHeater: true},
		{Microwave: true, WashingMachine: true, Fridge: true},
		{AC: true, Fridge: true, WashingMachine: true, TV: true, Microwave: true, WaterHeater: true},
	}

	for _, flags := range subsets {
		want := BaseEnergy(HousingThreeBHK)
		for _, a := range AllAppliances {
			if flags.Enabled(a) {
				want += Contribution(a)
			}
		}

		if got := EstimateDailyEnergy(HousingThreeBHK, flags); !almostEqual(got, want) {
			t.Errorf("EstimateDailyEnergy(3bhk, %+v) = %v, want %v", flags, got, want)
		}
	}
}

func TestNormalizedHousingIsCaseInsensitive(t *testing.T) {
	p := UserProfile{Housing: "2BHK"}
	if got := BaseEnergy(p.NormalizedHousing()); got != 3.6 {
		t.Fatalf("BaseEnergy(2BHK) = %v, want 3.6", got)
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
