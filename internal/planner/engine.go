package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/darshoned/DfMA/internal/beam"
	"github.com/darshoned/DfMA/internal/catalog"
	"github.com/darshoned/DfMA/internal/column"
	"github.com/darshoned/DfMA/internal/profile"
	"github.com/darshoned/DfMA/internal/quantity"
	"github.com/darshoned/DfMA/internal/slab"
	"github.com/darshoned/DfMA/internal/system"
)

// Sources names where an Engine loads its profile and tables from. Empty
// paths select the built-in data.
type Sources struct {
	Profile      string // built-in profile name
	ProfileFile  string // YAML profile, overrides Profile
	Productivity string // .csv or .xlsx
	Catalog      string // .csv or .xlsx
}

// Engine holds the read-only profile and lookup tables shared by every
// calculation. It is safe for concurrent use.
type Engine struct {
	profile  profile.Profile
	rates    *catalog.ProductivityTable
	capacity *catalog.CapacityTable
}

// NewEngine checks the profile and that the productivity table has every
// category the aggregator reads.
func NewEngine(p profile.Profile, rates *catalog.ProductivityTable, capacity *catalog.CapacityTable) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rates == nil || capacity == nil {
		return nil, fmt.Errorf("productivity table and hollow-core catalog are required")
	}
	if err := rates.RequireCategories(quantity.RequiredCategories...); err != nil {
		return nil, fmt.Errorf("productivity table: %w", err)
	}
	return &Engine{profile: p, rates: rates, capacity: capacity}, nil
}

// Open loads the profile and tables named by src.
func Open(src Sources) (*Engine, error) {
	var (
		p   profile.Profile
		err error
	)
	if src.ProfileFile != "" {
		p, err = profile.LoadFile(src.ProfileFile)
	} else {
		p, err = profile.Lookup(src.Profile)
	}
	if err != nil {
		return nil, err
	}

	rates, err := catalog.LoadProductivity(src.Productivity)
	if err != nil {
		return nil, fmt.Errorf("productivity table: %w", err)
	}
	capacity, err := catalog.LoadCapacity(src.Catalog)
	if err != nil {
		return nil, fmt.Errorf("hollow-core catalog: %w", err)
	}

	slog.Debug("engine loaded",
		"profile", p.Name, "rates", rates.Len(), "hollow_core_products", len(capacity.Products()))
	return NewEngine(p, rates, capacity)
}

// Profile returns the engine's profile.
func (e *Engine) Profile() profile.Profile { return e.profile }

// Rates returns the productivity table.
func (e *Engine) Rates() *catalog.ProductivityTable { return e.rates }

// Capacity returns the hollow-core catalog.
func (e *Engine) Capacity() *catalog.CapacityTable { return e.capacity }

// Outputs are the positional result lists.
type Outputs struct {
	Design    []float64        `json:"design"`
	Equipment []float64        `json:"equipment"`
	Utility   []float64        `json:"utility"`
	Manpower  []float64        `json:"manpower"`
	All       []quantity.Field `json:"all"`
}

// Result is the outcome of one Generate call.
type Result struct {
	ID        uuid.UUID        `json:"id"`
	Profile   string           `json:"profile"`
	Input     Input            `json:"input"` // normalised grid, defaults applied
	Selection system.Selection `json:"selection"`

	Column     column.Result   `json:"column"`
	Slab       slab.Result     `json:"slab"`
	Beams      beam.Result     `json:"beams"`
	Quantities quantity.Report `json:"quantities"`
	Outputs    Outputs         `json:"outputs"`
}

// Prepare validates a scenario, applies defaults and rounds the building up
// to whole bays.
func (e *Engine) Prepare(in Input) (Input, error) {
	if err := in.Validate(); err != nil {
		return Input{}, err
	}
	in = in.WithDefaults()
	if in.Slab == system.CISSlab && e.profile.CISSlabMethod == profile.PowerLawMethod && in.LiveLoad == 0 {
		return Input{}, &ValidationError{Field: "live_load", Reason: "must be positive for a CIS slab"}
	}
	in.Length = quantity.Normalize(in.Length, in.S1)
	in.Width = quantity.Normalize(in.Width, in.S2)
	return in, nil
}

// Column runs the column sizer alone.
func (e *Engine) Column(in Input) (column.Result, error) {
	in, err := e.Prepare(in)
	if err != nil {
		return column.Result{}, err
	}
	return e.column(in)
}

// Slab runs the slab selector alone.
func (e *Engine) Slab(in Input) (slab.Result, error) {
	in, err := e.Prepare(in)
	if err != nil {
		return slab.Result{}, err
	}
	return e.slab(in)
}

// Beams runs the column sizer, slab resolver and beam sizer.
func (e *Engine) Beams(in Input) (beam.Result, error) {
	in, err := e.Prepare(in)
	if err != nil {
		return beam.Result{}, err
	}
	col, err := e.column(in)
	if err != nil {
		return beam.Result{}, err
	}
	sl, err := e.slab(in)
	if err != nil {
		return beam.Result{}, err
	}
	return e.beams(in, col, sl)
}

// Generate runs the whole pipeline. A failure in any stage aborts it.
func (e *Engine) Generate(ctx context.Context, in Input) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	in, err := e.Prepare(in)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	log := slog.With("run", id.String(), "profile", e.profile.Name)
	log.Debug("generate", "input", in.Selection().String(),
		"s1", in.S1, "s2", in.S2, "live_load", in.LiveLoad, "length", in.Length, "width", in.Width)

	col, err := e.column(in)
	if err != nil {
		return nil, fmt.Errorf("column: %w", err)
	}
	log.Debug("column sized", "size_mm", col.Size, "weight_t", col.Weight)

	sl, err := e.slab(in)
	if err != nil {
		return nil, fmt.Errorf("slab: %w", err)
	}
	log.Debug("slab selected", "slab", sl.Slab, "thickness_mm", sl.Thickness,
		"tendon_spacing_mm", sl.TendonSpacing, "hollow_core_mm", sl.HollowCoreThickness)

	bm, err := e.beams(in, col, sl)
	if err != nil {
		return nil, fmt.Errorf("beam: %w", err)
	}
	log.Debug("beams sized", "s1", bm.S1, "s2", bm.S2, "s3", bm.S3)

	sel := in.Selection()
	sel.Slab = sl.Slab

	report, err := quantity.Aggregate(quantity.Input{
		Length:      in.Length,
		Width:       in.Width,
		S1:          in.S1,
		S2:          in.S2,
		FloorHeight: in.FloorHeight,
		Selection:   sel,
		Column:      col.Size,
		Beams:       bm,
		Slab:        sl,
	}, e.profile, e.rates)
	if err != nil {
		return nil, fmt.Errorf("quantities: %w", err)
	}
	log.Debug("quantities aggregated", "cranes", report.TowerCranes, "mandays", report.Mandays)

	return &Result{
		ID:         id,
		Profile:    e.profile.Name,
		Input:      in,
		Selection:  sel,
		Column:     col,
		Slab:       sl,
		Beams:      bm,
		Quantities: report,
		Outputs: Outputs{
			Design:    report.Design(),
			Equipment: report.Equipment(),
			Utility:   report.Utility(),
			Manpower:  report.Manpower(),
			All:       report.AllFields(),
		},
	}, nil
}

func (e *Engine) column(in Input) (column.Result, error) {
	return column.Size(column.Input{
		S1:          in.S1,
		S2:          in.S2,
		LiveLoad:    in.LiveLoad,
		FloorHeight: in.FloorHeight,
		System:      in.Column,
	}, e.profile)
}

func (e *Engine) slab(in Input) (slab.Result, error) {
	return slab.Select(slab.Input{
		S1:       in.S1,
		S2:       in.S2,
		LiveLoad: in.LiveLoad,
		System:   in.Slab,
	}, e.profile, e.capacity)
}

func (e *Engine) beams(in Input, col column.Result, sl slab.Result) (beam.Result, error) {
	return beam.Size(beam.Input{
		S1:        in.S1,
		S2:        in.S2,
		LiveLoad:  in.LiveLoad,
		DeadLoad:  in.DeadLoad,
		Column:    col.Size,
		Beam:      in.Beam,
		Slab:      sl.Slab,
		Materials: in.Materials,
	})
}
