// Package beam sizes the beams of a regular grid in each span direction.
//
// The loaded (secondary) beams are sized from flexure, the column-line
// (primary) beams from a span/depth rule clamped against the column. Split-span
// hollow-core layouts add a third beam line at midspan.
package beam

import (
	"fmt"

	"github.com/darshoned/DfMA/internal/ec2"
	"github.com/darshoned/DfMA/internal/system"
	"github.com/darshoned/DfMA/internal/units"
)

const (
	// DefaultDeadLoad is the superimposed dead load when none is given (kN/m²)
	DefaultDeadLoad = 7.0

	// WidthDepthRatio is the target b/d of the loaded beams
	WidthDepthRatio = 0.5

	// InitialWidth is the width assumed when solving for depth (mm)
	InitialWidth = 300.0

	// PrimarySpanDepth is the span/depth rule of the column-line beams
	PrimarySpanDepth = 15.0

	// Moment coefficients of the flexural depth formula
	KCIS = 0.167
	KPT  = 0.25
)

const (
	DepthIncrement units.Millimeters = 100
	WidthIncrement units.Millimeters = 50
)

// Input holds what the beam sizer needs.
type Input struct {
	S1        units.Meters
	S2        units.Meters
	LiveLoad  float64           // kN/m²
	DeadLoad  float64           // kN/m², DefaultDeadLoad when zero
	Column    units.Millimeters // resolved column side
	Beam      system.Beam
	Slab      system.Slab // resolved slab variant
	Materials ec2.Materials
}

// Section is one beam cross section.
type Section struct {
	Width units.Millimeters `json:"b_mm"`
	Depth units.Millimeters `json:"d_mm"`
}

// Zero reports whether the section is absent.
func (s Section) Zero() bool { return s.Width == 0 && s.Depth == 0 }

// Meters returns width and depth in metres.
func (s Section) Meters() (units.Meters, units.Meters) {
	return s.Width.Meters(), s.Depth.Meters()
}

// Result holds the beam sections per direction. S3 is zero unless the slab is
// a split-span variant; every section is zero for a flat slab.
type Result struct {
	S1 Section `json:"s1"`
	S2 Section `json:"s2"`
	S3 Section `json:"s3"`

	// Loaded beam design values
	LineLoad float64 `json:"line_load_kn_m"`
	Moment   float64 `json:"moment_knm"`
}

// Size sizes the beams for the selected beam system.
func Size(in Input) (Result, error) {
	if err := in.S1.Positive("s1"); err != nil {
		return Result{}, err
	}
	if err := in.S2.Positive("s2"); err != nil {
		return Result{}, err
	}
	if in.LiveLoad < 0 || !units.Finite(in.LiveLoad) {
		return Result{}, fmt.Errorf("invalid live load: %.2f kN/m²", in.LiveLoad)
	}

	var k float64
	switch in.Beam {
	case system.FlatSlabBeam:
		return Result{}, nil
	case system.CISBeam:
		k = KCIS
	case system.PTBeam:
		k = KPT
	default:
		return Result{}, fmt.Errorf("%w: beam %q", system.ErrUnsupportedCombination, in.Beam)
	}
	if err := in.Column.Positive("column size"); err != nil {
		return Result{}, err
	}
	if in.DeadLoad < 0 || !units.Finite(in.DeadLoad) {
		return Result{}, fmt.Errorf("invalid dead load: %.2f kN/m²", in.DeadLoad)
	}

	dead := in.DeadLoad
	if dead == 0 {
		dead = DefaultDeadLoad
	}
	m := in.Materials.WithDefaults()
	load := m.Combination().Factored(dead, in.LiveLoad)
	fcd := ec2.Fcd(m.Fck, m.GammaC)

	loaded := func(span units.Meters) (Section, DesignResult, error) {
		d, err := SinglyReinforced{
			Span:      span,
			Tributary: in.S2,
			Load:      load,
			Width:     InitialWidth,
			Fcd:       fcd,
			K:         k,
		}.Design(WidthDepthRatio)
		if err != nil {
			return Section{}, d, err
		}
		return loadedSection(in.Beam, in.Column, d), d, nil
	}

	result := Result{}

	s2, design, err := loaded(in.S1)
	if err != nil {
		return Result{}, err
	}
	result.S2 = s2
	result.LineLoad = design.LineLoad
	result.Moment = design.Moment

	result.S1 = primarySection(in.Beam, in.Column, in.S1)

	if in.Slab.SplitSpan() {
		if result.S3, _, err = loaded(in.S1 / 2); err != nil {
			return Result{}, err
		}
	}

	return result, nil
}

// loadedSection rounds a flexural design. CIS beams are at least as wide as
// the column; PT beams keep the b/d ratio.
func loadedSection(b system.Beam, column units.Millimeters, d DesignResult) Section {
	depth := units.NearestTo(units.Millimeters(d.Depth), DepthIncrement)
	width := units.Millimeters(d.Width)

	if b == system.PTBeam {
		return Section{Width: units.NearestTo(width, DepthIncrement), Depth: depth}
	}
	if width < column {
		width = column
	}
	return Section{Width: units.CeilTo(width, WidthIncrement), Depth: depth}
}

// primarySection sizes a column-line beam: as wide as the column, span/15 deep.
// The CIS depth is at least the column, the PT depth at most the column.
func primarySection(b system.Beam, column units.Millimeters, span units.Meters) Section {
	depth := units.NearestTo(units.Meters(float64(span)/PrimarySpanDepth).Millimeters(), DepthIncrement)
	switch b {
	case system.CISBeam:
		if depth < column {
			depth = column
		}
	case system.PTBeam:
		if depth > column {
			depth = column
		}
	}
	return Section{Width: column, Depth: depth}
}
