// Package units holds the semantic numeric types used by the sizing engine.
//
// Member dimensions travel as Millimeters, grid geometry as Meters. Mixing the
// two requires an explicit conversion.
package units

import (
	"fmt"
	"math"
)

// Meters is a length in metres.
type Meters float64

// Millimeters is a length in millimetres.
type Millimeters float64

// Tonnes is a mass in metric tonnes.
type Tonnes float64

// SquareMeters is an area in m².
type SquareMeters float64

// CubicMeters is a volume in m³.
type CubicMeters float64

// Millimeters converts a metre length to millimetres.
func (m Meters) Millimeters() Millimeters { return Millimeters(float64(m) * 1000) }

// Meters converts a millimetre length to metres.
func (mm Millimeters) Meters() Meters { return Meters(float64(mm) / 1000) }

// Positive reports an error unless m is a finite value greater than zero.
func (m Meters) Positive(name string) error {
	return checkPositive(name, float64(m), "m")
}

// Positive reports an error unless mm is a finite value greater than zero.
func (mm Millimeters) Positive(name string) error {
	return checkPositive(name, float64(mm), "mm")
}

func checkPositive(name string, v float64, unit string) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s is not a finite number", name)
	}
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %g %s", name, v, unit)
	}
	return nil
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// CeilTo rounds mm up to the next multiple of step.
func CeilTo(mm Millimeters, step Millimeters) Millimeters {
	return Millimeters(math.Ceil(float64(mm)/float64(step)) * float64(step))
}

// FloorTo rounds mm down to the previous multiple of step.
func FloorTo(mm Millimeters, step Millimeters) Millimeters {
	return Millimeters(math.Floor(float64(mm)/float64(step)) * float64(step))
}

// NearestTo rounds mm to the nearest multiple of step. Ties go to the even
// multiple so 250 → 200 and 350 → 400 at a 100 mm step.
func NearestTo(mm Millimeters, step Millimeters) Millimeters {
	return Millimeters(math.RoundToEven(float64(mm)/float64(step)) * float64(step))
}

// Round rounds v to the given number of decimals with ties to even.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*p) / p
}

// Square returns the area of a square with side m.
func (m Meters) Square() SquareMeters { return SquareMeters(float64(m) * float64(m)) }
