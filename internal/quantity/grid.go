package quantity

import (
	"math"

	"github.com/darshoned/DfMA/internal/units"
)

// gridTolerance absorbs floating point noise when a dimension is already a
// whole number of bays.
const gridTolerance = 1e-9

// Normalize rounds a building dimension up to a whole number of spans.
func Normalize(length, span units.Meters) units.Meters {
	return units.Meters(Bays(length, span)) * span
}

// Bays returns the number of spans needed to cover length.
func Bays(length, span units.Meters) int {
	return int(math.Ceil(float64(length)/float64(span) - gridTolerance))
}

// Grid counts the repeating elements of a rectangular column grid. Beams in
// the s1 direction lie on every grid line along the width, beams in the s2
// direction on every grid line along the length.
type Grid struct {
	BaysX   int `json:"bays_x"` // length / s1
	BaysY   int `json:"bays_y"` // width / s2
	BeamsS1 int `json:"beams_s1"`
	BeamsS2 int `json:"beams_s2"`
	BeamsS3 int `json:"beams_s3"` // midspan beams of split-span layouts
	Columns int `json:"columns"`
}

// NewGrid counts the elements of a length x width plan on an s1 x s2 grid.
func NewGrid(length, width, s1, s2 units.Meters, split bool) Grid {
	nx, ny := Bays(length, s1), Bays(width, s2)
	g := Grid{
		BaysX:   nx,
		BaysY:   ny,
		BeamsS1: nx * (ny + 1),
		BeamsS2: (nx + 1) * ny,
		Columns: (nx + 1) * (ny + 1),
	}
	if split {
		g.BeamsS3 = nx * ny
	}
	return g
}
