// Package profile holds the named formula policies of the sizing engine.
//
// The calculation heuristics exist in more than one revision (PT span/depth
// breakpoints, tower crane thresholds, column self-weight length). Each
// revision is a Profile so callers pick one explicitly and tests can pin it.
package profile

import (
	"fmt"
	"math"
	"sort"
)

// SelfWeightLength selects the column length used for the self-weight term.
type SelfWeightLength string

const (
	StoreyLength   SelfWeightLength = "storey"    // floor-to-floor height
	HalfSpanLength SelfWeightLength = "half-span" // max(s1, s2) / 2
)

// SlabMethod selects how the one-way CIS slab span/depth ratio is derived.
type SlabMethod string

const (
	PowerLawMethod   SlabMethod = "power-law"
	BreakpointMethod SlabMethod = "breakpoints"
)

// Breakpoint maps every x <= Max to Value.
type Breakpoint struct {
	Max   float64 `yaml:"max" json:"max"`
	Value float64 `yaml:"value" json:"value"`
}

// Table is an ascending breakpoint list with a fallback for values past the last step.
type Table struct {
	Steps []Breakpoint `yaml:"steps" json:"steps"`
	Else  float64      `yaml:"else" json:"else"`
}

// Lookup returns the value of the first step whose Max is >= x.
func (t Table) Lookup(x float64) float64 {
	for _, s := range t.Steps {
		if x <= s.Max {
			return s.Value
		}
	}
	return t.Else
}

func (t Table) validate(name string) error {
	if len(t.Steps) == 0 {
		return fmt.Errorf("%s: no steps", name)
	}
	if !sort.SliceIsSorted(t.Steps, func(i, j int) bool { return t.Steps[i].Max < t.Steps[j].Max }) {
		return fmt.Errorf("%s: steps must be in ascending order", name)
	}
	for _, s := range t.Steps {
		if s.Value <= 0 {
			return fmt.Errorf("%s: step %g has non-positive value %g", name, s.Max, s.Value)
		}
	}
	return nil
}

// PowerLaw is R = RMax·(LRef/live)^K·(10/s1)^N.
type PowerLaw struct {
	RMax float64 `yaml:"r_max" json:"r_max"`
	LRef float64 `yaml:"l_ref" json:"l_ref"`
	K    float64 `yaml:"k" json:"k"`
	N    float64 `yaml:"n" json:"n"`
}

// Ratio evaluates the power law for a span (m) and live load (kN/m²).
func (p PowerLaw) Ratio(span, liveLoad float64) float64 {
	return p.RMax * math.Pow(p.LRef/liveLoad, p.K) * math.Pow(10/span, p.N)
}

// RebarRatios are reinforcement percentages of member concrete volume.
type RebarRatios struct {
	CISBeam float64 `yaml:"cis_beam" json:"cis_beam"`
	PTBeam  float64 `yaml:"pt_beam" json:"pt_beam"`
	CISSlab float64 `yaml:"cis_slab" json:"cis_slab"`
	PTSlab  float64 `yaml:"pt_slab" json:"pt_slab"`
	Topping float64 `yaml:"topping" json:"topping"`
	Column  float64 `yaml:"column" json:"column"`
}

// Profile is one complete policy set.
type Profile struct {
	Name        string `yaml:"name" json:"name"`
	Base        string `yaml:"base,omitempty" json:"base,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Column sizing
	Storeys          int              `yaml:"storeys" json:"storeys"`
	StoreyDeadLoad   float64          `yaml:"storey_dead_load" json:"storey_dead_load"` // kN/m² per storey
	SelfWeightLength SelfWeightLength `yaml:"self_weight_length" json:"self_weight_length"`

	// Slab sizing
	CISSlabMethod   SlabMethod `yaml:"cis_slab_method" json:"cis_slab_method"`
	CISSlabPowerLaw PowerLaw   `yaml:"cis_slab_power_law" json:"cis_slab_power_law"`
	CISSlabRatios   Table      `yaml:"cis_slab_ratios" json:"cis_slab_ratios"`
	PTSlabRatios    Table      `yaml:"pt_slab_ratios" json:"pt_slab_ratios"`
	PTSlabRounding  float64    `yaml:"pt_slab_rounding" json:"pt_slab_rounding"` // mm

	// Equipment
	CraneThresholds  []Breakpoint `yaml:"crane_thresholds" json:"crane_thresholds"` // building length (m) → cranes
	CraneExtraLength float64      `yaml:"crane_extra_length" json:"crane_extra_length"`

	// Quantities
	Rebar             RebarRatios `yaml:"rebar" json:"rebar"`
	ProppedSlabSets   int         `yaml:"propped_slab_sets" json:"propped_slab_sets"`
	TruckVolume       float64     `yaml:"truck_volume" json:"truck_volume"`               // m³ per concrete truck
	TrailerRebar      float64     `yaml:"trailer_rebar" json:"trailer_rebar"`             // t per trailer / per crane lift
	FormworkPerLift   float64     `yaml:"formwork_per_lift" json:"formwork_per_lift"`     // m²
	ColumnsPerTrailer float64     `yaml:"columns_per_trailer" json:"columns_per_trailer"` // column cages or units
	UnitsPerTrailer   float64     `yaml:"units_per_trailer" json:"units_per_trailer"`     // hollow-core planks

	// Labour
	WeatherFactor     float64 `yaml:"weather_factor" json:"weather_factor"`
	StairAllowance    float64 `yaml:"stair_allowance" json:"stair_allowance"` // manhours
	RampAllowance     float64 `yaml:"ramp_allowance" json:"ramp_allowance"`   // manhours
	RampArea          float64 `yaml:"ramp_area" json:"ramp_area"`             // m²
	HoursPerDay       float64 `yaml:"hours_per_day" json:"hours_per_day"`
	HoistCycleMinutes float64 `yaml:"hoist_cycle_minutes" json:"hoist_cycle_minutes"`
}

// Cranes returns the tower crane count for a building length. Past the last
// threshold one crane is added per CraneExtraLength metres, so the count never
// drops to zero.
func (p Profile) Cranes(length float64) int {
	for _, t := range p.CraneThresholds {
		if length <= t.Max {
			return int(t.Value)
		}
	}
	last := p.CraneThresholds[len(p.CraneThresholds)-1]
	extra := math.Ceil((length - last.Max) / p.CraneExtraLength)
	return int(last.Value) + int(extra)
}

// Validate checks the profile can drive a calculation without dividing by zero.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile has no name")
	}
	if p.Storeys < 1 {
		return fmt.Errorf("profile %s: storeys must be at least 1", p.Name)
	}
	switch p.SelfWeightLength {
	case StoreyLength, HalfSpanLength:
	default:
		return fmt.Errorf("profile %s: unknown self_weight_length %q", p.Name, p.SelfWeightLength)
	}
	switch p.CISSlabMethod {
	case PowerLawMethod:
		if p.CISSlabPowerLaw.RMax <= 0 || p.CISSlabPowerLaw.LRef <= 0 {
			return fmt.Errorf("profile %s: power law needs positive r_max and l_ref", p.Name)
		}
	case BreakpointMethod:
		if err := p.CISSlabRatios.validate("cis_slab_ratios"); err != nil {
			return fmt.Errorf("profile %s: %w", p.Name, err)
		}
	default:
		return fmt.Errorf("profile %s: unknown cis_slab_method %q", p.Name, p.CISSlabMethod)
	}
	if err := p.PTSlabRatios.validate("pt_slab_ratios"); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	if len(p.CraneThresholds) == 0 {
		return fmt.Errorf("profile %s: crane_thresholds is empty", p.Name)
	}
	if err := (Table{Steps: p.CraneThresholds}).validate("crane_thresholds"); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"storey_dead_load", p.StoreyDeadLoad},
		{"pt_slab_rounding", p.PTSlabRounding},
		{"crane_extra_length", p.CraneExtraLength},
		{"truck_volume", p.TruckVolume},
		{"trailer_rebar", p.TrailerRebar},
		{"formwork_per_lift", p.FormworkPerLift},
		{"columns_per_trailer", p.ColumnsPerTrailer},
		{"units_per_trailer", p.UnitsPerTrailer},
		{"weather_factor", p.WeatherFactor},
		{"hours_per_day", p.HoursPerDay},
		{"hoist_cycle_minutes", p.HoistCycleMinutes},
	} {
		if f.value <= 0 || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("profile %s: %s must be positive, got %g", p.Name, f.name, f.value)
		}
	}
	return nil
}
