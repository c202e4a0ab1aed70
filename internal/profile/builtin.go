package profile

import (
	"fmt"
	"sort"
)

// Default is the profile used when none is named.
const Default = "baseline"

// Baseline mirrors the revision the quantity outputs were calibrated against.
func Baseline() Profile {
	return Profile{
		Name:        "baseline",
		Description: "PT span/depth 45/40/35/30/25, cranes at 30/70/100 m, storey-height column self weight",

		Storeys:          5,
		StoreyDeadLoad:   27,
		SelfWeightLength: StoreyLength,

		CISSlabMethod:   PowerLawMethod,
		CISSlabPowerLaw: PowerLaw{RMax: 25, LRef: 3.0, K: 0.15, N: 0.25},
		CISSlabRatios: Table{
			Steps: []Breakpoint{{Max: 3, Value: 25}, {Max: 5, Value: 22}},
			Else:  20,
		},
		PTSlabRatios: Table{
			Steps: []Breakpoint{
				{Max: 3, Value: 45},
				{Max: 5, Value: 40},
				{Max: 15, Value: 35},
				{Max: 25, Value: 30},
			},
			Else: 25,
		},
		PTSlabRounding: 50,

		CraneThresholds: []Breakpoint{
			{Max: 30, Value: 1},
			{Max: 70, Value: 2},
			{Max: 100, Value: 3},
		},
		CraneExtraLength: 30,

		Rebar: RebarRatios{
			CISBeam: 0.045,
			PTBeam:  0.025,
			CISSlab: 0.03,
			PTSlab:  0.015,
			Topping: 0.015,
			Column:  0.02,
		},
		ProppedSlabSets:   4,
		TruckVolume:       8.5,
		TrailerRebar:      15,
		FormworkPerLift:   36,
		ColumnsPerTrailer: 5,
		UnitsPerTrailer:   8,

		WeatherFactor:     1.3,
		StairAllowance:    240,
		RampAllowance:     1800,
		RampArea:          600,
		HoursPerDay:       8,
		HoistCycleMinutes: 12,
	}
}

// Revised is the alternate revision: finer PT breakpoints with 25 mm rounding,
// the plan-view crane thresholds and a half-span column self-weight length.
func Revised() Profile {
	p := Baseline()
	p.Name = "revised"
	p.Description = "PT span/depth 45/40/37/33/30/25 at 25 mm, cranes at 31/61/100 m, half-span column self weight"
	p.SelfWeightLength = HalfSpanLength
	p.CISSlabMethod = BreakpointMethod
	p.PTSlabRatios = Table{
		Steps: []Breakpoint{
			{Max: 3, Value: 45},
			{Max: 5, Value: 40},
			{Max: 10, Value: 37},
			{Max: 15, Value: 33},
			{Max: 25, Value: 30},
		},
		Else: 25,
	}
	p.PTSlabRounding = 25
	p.CraneThresholds = []Breakpoint{
		{Max: 31, Value: 1},
		{Max: 61, Value: 2},
		{Max: 100, Value: 3},
	}
	return p
}

var builtins = map[string]func() Profile{
	"baseline": Baseline,
	"revised":  Revised,
}

// Names lists the built-in profile names.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a fresh copy of a built-in profile.
func Lookup(name string) (Profile, error) {
	if name == "" {
		name = Default
	}
	fn, ok := builtins[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (available: %v)", name, Names())
	}
	return fn(), nil
}
