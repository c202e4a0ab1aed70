package quantity

import (
	"fmt"
	"math"

	"github.com/darshoned/DfMA/internal/catalog"
	"github.com/darshoned/DfMA/internal/profile"
	"github.com/darshoned/DfMA/internal/system"
)

const (
	// formworkPanelArea converts formwork area into panels (m² per panel)
	formworkPanelArea = 16.0
	// scaffoldHeightFactor is the share of the storey height scaffolded under formwork
	scaffoldHeightFactor = 0.5
	// columnFormworkUses counts the formwork handlings of one cast column
	columnFormworkUses = 2
)

// rateSet is a resolved copy of the productivity rates used by one calculation.
type rateSet map[string]float64

func resolveRates(rates Rates) (rateSet, error) {
	if rates == nil {
		return nil, fmt.Errorf("no productivity table")
	}
	out := make(rateSet, len(RequiredCategories))
	for _, c := range RequiredCategories {
		v, err := rates.Rate(c)
		if err != nil {
			return nil, err
		}
		out[c] = v
	}
	return out, nil
}

func ceil(v float64) int { return int(math.Ceil(v)) }

// manpower fills the per-trade manhours, the labour totals and the crane
// utilisation figures.
func manpower(r *Report, in Input, p profile.Profile, rates Rates) error {
	rs, err := resolveRates(rates)
	if err != nil {
		return err
	}
	h := float64(in.FloorHeight)
	sel := in.Selection

	if sel.Beam.HasBeams() {
		fw := float64(r.BeamFormwork)
		r.BeamManhours = ceil(float64(r.BeamRebar)*rs[catalog.LoosebarTon] +
			fw/formworkPanelArea*rs[catalog.VerticalBeamFwPc] +
			fw*h*scaffoldHeightFactor*rs[catalog.ScaffoldM3] +
			float64(r.BeamTendons)*rs[catalog.PostTensionPc])
	}

	switch {
	case sel.Slab.HollowCore():
		r.SlabManhours = ceil(float64(r.SlabRebar)*rs[catalog.MeshTon] +
			float64(r.HollowCoreUnits)*rs[catalog.HorizontalPc])
	default:
		fw := float64(r.SlabFormwork)
		r.SlabManhours = ceil(float64(r.SlabRebar)*rs[catalog.MeshTon] +
			fw/formworkPanelArea*rs[catalog.VerticalNonRCPc] +
			fw*h*scaffoldHeightFactor*rs[catalog.ScaffoldM3] +
			float64(r.SlabTendons)*rs[catalog.PostTensionPc])
	}

	if sel.Column == system.PCColumn {
		r.ColumnManhours = ceil(float64(r.Columns) * rs[catalog.VerticalPc])
	} else {
		r.ColumnManhours = ceil(float64(r.Columns) * rs[catalog.VerticalNonRCPc] * columnFormworkUses)
	}

	r.CastingManhours = ceil(float64(r.CISVolume) * rs[catalog.CastingPumpM3])

	total := float64(r.BeamManhours + r.SlabManhours + r.ColumnManhours + r.CastingManhours)
	r.Mandays = (total*p.WeatherFactor + p.StairAllowance + p.RampAllowance) / p.HoursPerDay
	r.Productivity = (float64(in.Length)*float64(in.Width) + p.RampArea) / r.Mandays

	if r.TowerCranes < 1 {
		return fmt.Errorf("tower crane count must be positive, got %d", r.TowerCranes)
	}
	r.CraneHours = float64(r.CraneHoistCount) * p.HoistCycleMinutes / 60 / float64(r.TowerCranes)
	r.FloorCycleDays = int(math.Max(1, math.Ceil(r.CraneHours/p.HoursPerDay)))
	r.CraneHoursPerDay = r.CraneHours / float64(r.FloorCycleDays)
	return nil
}
