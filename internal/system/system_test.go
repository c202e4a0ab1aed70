package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := ParseColumn("pc column")
	require.NoError(t, err)
	assert.Equal(t, PCColumn, c)

	b, err := ParseBeam(" PT Flat Slab ")
	require.NoError(t, err)
	assert.Equal(t, FlatSlabBeam, b)

	s, err := ParseSlab("1.2hcs_s3")
	require.NoError(t, err)
	assert.Equal(t, HC12SplitSlab, s)

	_, err = ParseSlab("Bondek")
	assert.Error(t, err)
}

func TestSlabTraits(t *testing.T) {
	assert.True(t, HC24Slab.HollowCore())
	assert.False(t, HC24Slab.SplitSpan())
	assert.Equal(t, HC24SplitSlab, HC24Slab.Split())
	assert.Equal(t, CISSlab, CISSlab.Split())
	assert.Equal(t, 1.2, HC12SplitSlab.UnitWidth())
	assert.Zero(t, PTFlatSlab.UnitWidth())
}

func TestSelectionValidate(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		ok   bool
	}{
		{"cis everywhere", Selection{CISColumn, CISBeam, CISSlab}, true},
		{"pt beam hollow core", Selection{PCColumn, PTBeam, HC12Slab}, true},
		{"flat slab", Selection{CISColumn, FlatSlabBeam, PTFlatSlab}, true},
		{"flat slab beam with cis slab", Selection{CISColumn, FlatSlabBeam, CISSlab}, false},
		{"pt slab with beams", Selection{CISColumn, CISBeam, PTFlatSlab}, false},
		{"hollow core without beams", Selection{CISColumn, FlatSlabBeam, HC24Slab}, false},
		{"unknown column", Selection{"CES Column", CISBeam, CISSlab}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
		})
	}

	err := Selection{CISColumn, FlatSlabBeam, CISSlab}.Validate()
	assert.ErrorIs(t, err, ErrUnsupportedCombination)
}
