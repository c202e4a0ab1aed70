package beam

import (
	"fmt"
	"math"

	"github.com/darshoned/DfMA/internal/units"
)

// SinglyReinforced sizes a simply supported rectangular beam from the
// flexural capacity of a singly reinforced section, M = k·b·d²·fcd.
type SinglyReinforced struct {
	// Geometry (m)
	Span      units.Meters // L - beam span
	Tributary units.Meters // slab width loading the beam

	// Loading (kN/m²)
	Load float64 // factored area load

	// Section
	Width float64 // b - assumed initial width (mm)
	Fcd   float64 // design concrete strength (MPa)
	K     float64 // moment coefficient
}

// DesignResult holds the unrounded section of a SinglyReinforced design
type DesignResult struct {
	LineLoad float64 // w (kN/m)
	Moment   float64 // M (kN-m)
	Depth    float64 // d (mm)
	Width    float64 // b = ratio·d (mm)
}

// Design calculates the required depth for the factored midspan moment and
// the width that keeps the given width/depth ratio
func (b SinglyReinforced) Design(ratio float64) (DesignResult, error) {
	if err := b.Span.Positive("beam span"); err != nil {
		return DesignResult{}, err
	}
	if err := b.Tributary.Positive("tributary width"); err != nil {
		return DesignResult{}, err
	}
	if b.Width <= 0 || b.Fcd <= 0 || b.K <= 0 {
		return DesignResult{}, fmt.Errorf("invalid section parameters: b=%.2f, fcd=%.2f, k=%.3f", b.Width, b.Fcd, b.K)
	}
	if b.Load < 0 || !units.Finite(b.Load) {
		return DesignResult{}, fmt.Errorf("invalid factored load: %.2f kN/m²", b.Load)
	}

	result := DesignResult{}

	// Load per unit length of beam
	result.LineLoad = b.Load * float64(b.Tributary)

	// Simply supported midspan moment
	span := float64(b.Span)
	result.Moment = result.LineLoad * span * span / 8

	// Convert M from kN-m to N-mm
	mNmm := result.Moment * 1e6

	// d = √(M / (k·b·fcd))
	result.Depth = math.Sqrt(mNmm / (b.K * b.Width * b.Fcd))
	result.Width = result.Depth * ratio

	return result, nil
}
