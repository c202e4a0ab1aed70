// Package column sizes square columns from the tributary area they carry.
package column

import (
	"fmt"
	"math"

	"github.com/darshoned/DfMA/internal/ec2"
	"github.com/darshoned/DfMA/internal/profile"
	"github.com/darshoned/DfMA/internal/system"
	"github.com/darshoned/DfMA/internal/units"
)

const (
	// MinSize is the smallest practical column side
	MinSize units.Millimeters = 500
	// Increment is the rounding step of the column side
	Increment units.Millimeters = 50

	// selfWeightArea is the assumed column cross section (m²) for the self-weight term
	selfWeightArea = 0.03
)

// Input holds what the column sizer needs.
type Input struct {
	S1          units.Meters
	S2          units.Meters
	LiveLoad    float64 // kN/m²
	FloorHeight units.Meters
	System      system.Column
}

// Result holds the sized column.
type Result struct {
	Size   units.Millimeters `json:"column_size_mm"`
	Weight units.Tonnes      `json:"column_weight_tonnes"` // 0 unless precast

	// Intermediate values
	AxialLoad       float64 `json:"axial_load_kn"`
	AxialResistance float64 `json:"axial_resistance_mpa"`
	RequiredArea    float64 `json:"required_area_mm2"`
	EffectiveLength float64 `json:"effective_length_m"`
}

// SizeMeters returns the column side in metres.
func (r Result) SizeMeters() units.Meters { return r.Size.Meters() }

// Size derives the square column side for one interior column under the
// profile's storey count, and the unit weight when the column is precast.
func Size(in Input, p profile.Profile) (Result, error) {
	if err := in.S1.Positive("s1"); err != nil {
		return Result{}, err
	}
	if err := in.S2.Positive("s2"); err != nil {
		return Result{}, err
	}
	if err := in.FloorHeight.Positive("floor height"); err != nil {
		return Result{}, err
	}
	if in.LiveLoad < 0 || !units.Finite(in.LiveLoad) {
		return Result{}, fmt.Errorf("invalid live load: %.2f kN/m²", in.LiveLoad)
	}

	s1, s2 := float64(in.S1), float64(in.S2)
	storeys := float64(p.Storeys)
	tributary := s1 * s2

	result := Result{}

	// Axial resistance per unit area (N/mm²)
	result.AxialResistance = ec2.AxialResistance(ec2.FckColumn, ec2.Fyk, ec2.ColumnSteelRatio)

	// Effective length for the self-weight term
	switch p.SelfWeightLength {
	case profile.HalfSpanLength:
		result.EffectiveLength = math.Max(s1, s2) / 2
	default:
		result.EffectiveLength = float64(in.FloorHeight)
	}

	// Total axial load over all storeys (kN)
	dead := p.StoreyDeadLoad * tributary * storeys
	live := in.LiveLoad * tributary * storeys
	self := selfWeightArea * ec2.ConcreteUnitWeight * result.EffectiveLength
	result.AxialLoad = dead + live + self

	// Required area (mm²), kN converted to N
	result.RequiredArea = result.AxialLoad * 1000 / result.AxialResistance

	side := units.Millimeters(math.Sqrt(result.RequiredArea))
	if side < MinSize {
		side = MinSize
	}
	result.Size = units.CeilTo(side, Increment)

	if in.System.Precast() {
		m := float64(result.Size.Meters())
		result.Weight = units.Tonnes(m * m * float64(in.FloorHeight) * ec2.ConcreteDensity)
	}

	return result, nil
}
