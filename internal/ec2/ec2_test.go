package ec2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDesignStrengths(t *testing.T) {
	assert.InDelta(t, 20.0, Fcd(30, GammaC), 1e-9)
	assert.InDelta(t, 434.7826, Fyd(500, GammaS), 1e-4)
}

func TestAxialResistance(t *testing.T) {
	// 0.98 * 0.85 * 20 + 0.02 * 434.78
	assert.InDelta(t, 25.3557, AxialResistance(FckColumn, Fyk, ColumnSteelRatio), 1e-4)
}

func TestULSFactored(t *testing.T) {
	assert.InDelta(t, 13.95, ULS.Factored(7, 3), 1e-9)
}

func TestMaterialsDefaults(t *testing.T) {
	m := Materials{Fck: 50}.WithDefaults()
	assert.Equal(t, 50.0, m.Fck)
	assert.Equal(t, Fyk, m.Fy)
	assert.Equal(t, GammaDL, m.Combination().Dead)
}
