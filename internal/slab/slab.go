// Package slab selects slab thickness for cast-in-situ, post-tensioned and
// precast hollow-core systems.
package slab

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/darshoned/DfMA/internal/catalog"
	"github.com/darshoned/DfMA/internal/profile"
	"github.com/darshoned/DfMA/internal/system"
	"github.com/darshoned/DfMA/internal/units"
)

const (
	CISMinThickness   units.Millimeters = 150
	CISIncrement      units.Millimeters = 50
	PTMinThickness    units.Millimeters = 200
	TendonSpacingStep units.Millimeters = 50

	// ToppingThickness is the structural topping cast over hollow-core planks
	ToppingThickness units.Millimeters = 75
)

const (
	cisAllowance = 0.030 + 0.016 // cover + bar diameter (m)
	ptAllowance  = 0.030 + 0.020 // cover + duct (m)

	strandCapacity      = 300.0 // kN per 15.2 mm strand
	strandsPerTendon    = 4
	tendonSpacingFactor = 8 // spacing ≤ 8h
)

// CapacityLookup finds a hollow-core thickness for a width class, span and load.
type CapacityLookup interface {
	Lookup(widthClass, span, load float64) (units.Millimeters, error)
}

// Input holds what the slab selector needs.
type Input struct {
	S1       units.Meters
	S2       units.Meters
	LiveLoad float64 // kN/m²
	System   system.Slab
}

// Result holds the selected slab. Slab may differ from the requested system
// when a hollow-core slab was resolved to its split-span variant.
type Result struct {
	Slab                system.Slab       `json:"selected_slab"`
	Thickness           units.Millimeters `json:"slab_thickness_mm"`
	TendonSpacing       units.Millimeters `json:"slab_max_tendon_spacing_mm"`
	TendonCount         int               `json:"tendon_count"`
	HollowCoreThickness units.Millimeters `json:"hollow_core_thickness_mm"`

	SpanDepthRatio float64      `json:"span_depth_ratio,omitempty"`
	LookupSpan     units.Meters `json:"lookup_span_m,omitempty"`
}

// Select resolves the slab system and sizes it.
func Select(in Input, p profile.Profile, hcs CapacityLookup) (Result, error) {
	if err := in.S1.Positive("s1"); err != nil {
		return Result{}, err
	}
	if err := in.S2.Positive("s2"); err != nil {
		return Result{}, err
	}
	if in.LiveLoad < 0 || !units.Finite(in.LiveLoad) {
		return Result{}, fmt.Errorf("invalid live load: %.2f kN/m²", in.LiveLoad)
	}

	switch {
	case in.System == system.CISSlab:
		return oneWay(in, p)
	case in.System == system.PTFlatSlab:
		return flatSlab(in, p), nil
	case in.System.HollowCore():
		resolved, err := Resolve(in, hcs)
		if err != nil {
			return Result{}, err
		}
		return hollowCore(in, resolved, hcs)
	}
	return Result{}, fmt.Errorf("%w: slab %q", system.ErrUnsupportedCombination, in.System)
}

// Resolve decides the hollow-core variant. A full-span selection whose span
// has no catalog product becomes the split-span variant when the half span
// does. Split-span selections are checked at half span as they are.
func Resolve(in Input, hcs CapacityLookup) (system.Slab, error) {
	if !in.System.HollowCore() {
		return in.System, nil
	}
	width := in.System.UnitWidth()
	s1 := float64(in.S1)

	if in.System.SplitSpan() {
		if _, err := hcs.Lookup(width, s1/2, in.LiveLoad); err != nil {
			return "", err
		}
		return in.System, nil
	}

	_, err := hcs.Lookup(width, s1, in.LiveLoad)
	if err == nil {
		return in.System, nil
	}
	if !errors.Is(err, catalog.ErrNoMatchingProduct) {
		return "", err
	}
	if _, err := hcs.Lookup(width, s1/2, in.LiveLoad); err != nil {
		return "", err
	}

	split := in.System.Split()
	slog.Info("hollow-core span exceeds catalog, using split span",
		"requested", in.System, "resolved", split, "span", s1, "live_load", in.LiveLoad)
	return split, nil
}

func oneWay(in Input, p profile.Profile) (Result, error) {
	s1 := float64(in.S1)

	var ratio float64
	switch p.CISSlabMethod {
	case profile.BreakpointMethod:
		ratio = p.CISSlabRatios.Lookup(in.LiveLoad)
	default:
		// The power law divides by the live load
		if in.LiveLoad == 0 {
			return Result{}, fmt.Errorf("live load must be positive for a %s under profile %s", in.System, p.Name)
		}
		ratio = p.CISSlabPowerLaw.Ratio(s1, in.LiveLoad)
	}

	// Effective depth plus cover and bar, floored at the minimum and rounded down
	thickness := units.Meters(s1/ratio + cisAllowance).Millimeters()
	if thickness < CISMinThickness {
		thickness = CISMinThickness
	}

	return Result{
		Slab:           in.System,
		Thickness:      units.FloorTo(thickness, CISIncrement),
		SpanDepthRatio: ratio,
	}, nil
}

func flatSlab(in Input, p profile.Profile) Result {
	s1, s2 := float64(in.S1), float64(in.S2)
	ratio := p.PTSlabRatios.Lookup(in.LiveLoad)

	thickness := units.Meters(s1/ratio + ptAllowance).Millimeters()
	if thickness < PTMinThickness {
		thickness = PTMinThickness
	}
	thickness = units.CeilTo(thickness, units.Millimeters(p.PTSlabRounding))

	// Prestress force (kN) carried by 4-strand tendons
	force := 1.5 * in.LiveLoad * s1 * s2
	tendons := int(math.Ceil(force / (strandCapacity * strandsPerTendon)))
	if tendons < 1 {
		tendons = 1
	}

	spacing := math.Min(tendonSpacingFactor*float64(thickness), float64(in.S1.Millimeters())/float64(tendons))

	return Result{
		Slab:           in.System,
		Thickness:      thickness,
		TendonSpacing:  units.FloorTo(units.Millimeters(spacing), TendonSpacingStep),
		TendonCount:    tendons,
		SpanDepthRatio: ratio,
	}
}

func hollowCore(in Input, resolved system.Slab, hcs CapacityLookup) (Result, error) {
	span := float64(in.S1)
	if resolved.SplitSpan() {
		span /= 2
	}

	t, err := hcs.Lookup(resolved.UnitWidth(), span, in.LiveLoad)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Slab:                resolved,
		Thickness:           ToppingThickness,
		HollowCoreThickness: t,
		LookupSpan:          units.Meters(span),
	}, nil
}
