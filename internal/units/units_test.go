package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	assert.Equal(t, Millimeters(8000), Meters(8).Millimeters())
	assert.Equal(t, Meters(0.55), Millimeters(550).Meters())
}

func TestPositive(t *testing.T) {
	assert.NoError(t, Meters(4).Positive("s1"))
	assert.Error(t, Meters(0).Positive("s1"))
	assert.Error(t, Meters(-2).Positive("s1"))
	assert.Error(t, Meters(math.NaN()).Positive("s1"))
	assert.Error(t, Millimeters(math.Inf(1)).Positive("depth"))
}

func TestRounding(t *testing.T) {
	tests := []struct {
		name string
		fn   func(Millimeters, Millimeters) Millimeters
		in   Millimeters
		step Millimeters
		want Millimeters
	}{
		{"ceil exact", CeilTo, 500, 50, 500},
		{"ceil up", CeilTo, 501, 50, 550},
		{"floor down", FloorTo, 349, 50, 300},
		{"nearest down", NearestTo, 533, 100, 500},
		{"nearest tie even low", NearestTo, 250, 100, 200},
		{"nearest tie even high", NearestTo, 350, 100, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.in, tt.step))
		})
	}
}

func TestRoundDecimals(t *testing.T) {
	assert.InDelta(t, 1.235, Round(1.23456, 3), 1e-12)
	assert.Equal(t, 2.0, Round(2.5, 0))
	assert.True(t, Finite(1, 2, 3))
	assert.False(t, Finite(1, math.NaN()))
}
