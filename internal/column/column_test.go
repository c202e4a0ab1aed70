package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darshoned/DfMA/internal/profile"
	"github.com/darshoned/DfMA/internal/system"
	"github.com/darshoned/DfMA/internal/units"
)

func TestSizeReferenceBay(t *testing.T) {
	r, err := Size(Input{S1: 8, S2: 4, LiveLoad: 3, FloorHeight: 6, System: system.CISColumn}, profile.Baseline())
	require.NoError(t, err)

	assert.InDelta(t, 25.3557, r.AxialResistance, 1e-3)
	assert.InDelta(t, 4804.5, r.AxialLoad, 1e-9)
	assert.Equal(t, units.Millimeters(500), r.Size)
	assert.Equal(t, units.Tonnes(0), r.Weight)
	assert.Equal(t, units.Meters(0.5), r.SizeMeters())
}

func TestSizeLargeBay(t *testing.T) {
	// 12 x 12 bay under 5 kN/m² needs more than the minimum
	r, err := Size(Input{S1: 12, S2: 12, LiveLoad: 5, FloorHeight: 6, System: system.CISColumn}, profile.Baseline())
	require.NoError(t, err)

	want := units.CeilTo(units.Millimeters(math.Sqrt(r.RequiredArea)), 50)
	assert.Equal(t, want, r.Size)
	assert.Greater(t, float64(r.Size), 500.0)
}

func TestSizeProperties(t *testing.T) {
	p := profile.Baseline()
	for _, s1 := range []units.Meters{0.5, 3, 6, 8, 10.5, 15} {
		for _, s2 := range []units.Meters{1, 4, 7.5, 12} {
			for _, ll := range []float64{0, 1.5, 3, 7.5, 20} {
				r, err := Size(Input{S1: s1, S2: s2, LiveLoad: ll, FloorHeight: 6, System: system.CISColumn}, p)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, float64(r.Size), 500.0)
				assert.Zero(t, math.Mod(float64(r.Size), 50))
			}
		}
	}
}

func TestPrecastWeight(t *testing.T) {
	r, err := Size(Input{S1: 8, S2: 4, LiveLoad: 3, FloorHeight: 6, System: system.PCColumn}, profile.Baseline())
	require.NoError(t, err)
	// 0.5 x 0.5 x 6 x 2.5
	assert.InDelta(t, 3.75, float64(r.Weight), 1e-9)
	assert.Greater(t, float64(r.Weight), 0.0)
}

func TestSelfWeightLengthByProfile(t *testing.T) {
	in := Input{S1: 10, S2: 6, LiveLoad: 3, FloorHeight: 4, System: system.CISColumn}

	base, err := Size(in, profile.Baseline())
	require.NoError(t, err)
	rev, err := Size(in, profile.Revised())
	require.NoError(t, err)

	assert.Equal(t, 4.0, base.EffectiveLength)
	assert.Equal(t, 5.0, rev.EffectiveLength)
	assert.InDelta(t, 0.03*25, rev.AxialLoad-base.AxialLoad, 1e-9)
}

func TestSizeRejectsInvalidInput(t *testing.T) {
	p := profile.Baseline()
	tests := map[string]Input{
		"zero s1":       {S1: 0, S2: 4, LiveLoad: 3, FloorHeight: 6},
		"negative s2":   {S1: 8, S2: -4, LiveLoad: 3, FloorHeight: 6},
		"zero height":   {S1: 8, S2: 4, LiveLoad: 3},
		"negative load": {S1: 8, S2: 4, LiveLoad: -1, FloorHeight: 6},
		"nan load":      {S1: 8, S2: 4, LiveLoad: math.NaN(), FloorHeight: 6},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Size(in, p)
			assert.Error(t, err)
		})
	}
}
