// Package quantity aggregates member sizes over a building grid into design,
// equipment, utility and manpower quantities.
package quantity

import (
	"fmt"
	"math"

	"github.com/darshoned/DfMA/internal/beam"
	"github.com/darshoned/DfMA/internal/catalog"
	"github.com/darshoned/DfMA/internal/ec2"
	"github.com/darshoned/DfMA/internal/profile"
	"github.com/darshoned/DfMA/internal/slab"
	"github.com/darshoned/DfMA/internal/system"
	"github.com/darshoned/DfMA/internal/units"
)

// RequiredCategories are the productivity rates Aggregate reads.
var RequiredCategories = []string{
	catalog.LoosebarTon,
	catalog.MeshTon,
	catalog.VerticalNonRCPc,
	catalog.VerticalBeamFwPc,
	catalog.ScaffoldM3,
	catalog.CastingPumpM3,
	catalog.PostTensionPc,
	catalog.HorizontalPc,
	catalog.VerticalPc,
}

// Rates looks up manhours per unit by activity category.
type Rates interface {
	Rate(category string) (float64, error)
}

// Input is everything the aggregator consumes. Length and Width should already
// be whole multiples of S1 and S2 (see Normalize).
type Input struct {
	Length      units.Meters
	Width       units.Meters
	S1          units.Meters
	S2          units.Meters
	FloorHeight units.Meters

	Selection system.Selection // with the resolved slab
	Column    units.Millimeters
	Beams     beam.Result
	Slab      slab.Result
}

// Report is the flat quantity record of one floor.
type Report struct {
	Grid

	// Design
	VolumetricPC    int                `json:"volumetric_pc"`
	VerticalPC      int                `json:"vertical_pc"`
	ProppedSlabs    int                `json:"propped_slabs"`
	UnproppedSlabs  int                `json:"unpropped_slabs"`
	SlabFormwork    units.SquareMeters `json:"slab_formwork_m2"`
	BeamFormwork    units.SquareMeters `json:"beam_formwork_m2"`
	ColumnFormworks int                `json:"column_formworks"`
	BeamRebar       units.Tonnes       `json:"beam_rebar_t"`
	SlabRebar       units.Tonnes       `json:"slab_rebar_t"`
	ColumnRebar     units.Tonnes       `json:"column_rebar_t"`
	BeamVolume      units.CubicMeters  `json:"beam_volume_m3"`
	SlabVolume      units.CubicMeters  `json:"slab_volume_m3"`
	ColumnVolume    units.CubicMeters  `json:"column_volume_m3"`
	CISVolume       units.CubicMeters  `json:"cis_volume_m3"`
	BeamTendons     int                `json:"beam_tendons"`
	SlabTendons     int                `json:"slab_tendons"`
	HollowCoreUnits int                `json:"hollow_core_units"`

	// Equipment
	TowerCranes        int `json:"tower_cranes"`
	ConcretePumps      int `json:"concrete_pumps"`
	ConstructionHoists int `json:"construction_hoists"`
	PassengerHoists    int `json:"passenger_material_hoists"`
	Gondolas           int `json:"gondolas"`
	MEWPs              int `json:"mewps"`

	// Utility
	PassengerHoistCount int `json:"passenger_material_hoist_count"`
	CraneHoistCount     int `json:"tower_crane_hoist_count"`
	TruckDeliveries     int `json:"concrete_truck_deliveries"`
	TrailerDeliveries   int `json:"trailer_deliveries"`

	// Manhours per trade
	BeamManhours    int `json:"beam_manhours"`
	SlabManhours    int `json:"slab_manhours"`
	ColumnManhours  int `json:"column_manhours"`
	CastingManhours int `json:"casting_manhours"`

	// Manpower
	Mandays          float64 `json:"total_mandays"`
	Productivity     float64 `json:"productivity_m2_per_manday"`
	CraneHours       float64 `json:"crane_hours"`
	FloorCycleDays   int     `json:"floor_cycle_days"`
	CraneHoursPerDay float64 `json:"crane_hours_per_day"`
}

// Aggregate derives the quantity report. It fails on an unsupported selection,
// a missing productivity rate or a degenerate grid; it never returns partial
// results.
func Aggregate(in Input, p profile.Profile, rates Rates) (Report, error) {
	if err := in.Selection.Validate(); err != nil {
		return Report{}, err
	}
	for _, dim := range []struct {
		name  string
		value units.Meters
	}{
		{"length", in.Length},
		{"width", in.Width},
		{"s1", in.S1},
		{"s2", in.S2},
		{"floor height", in.FloorHeight},
	} {
		if err := dim.value.Positive(dim.name); err != nil {
			return Report{}, err
		}
	}
	if in.Selection.Beam.HasBeams() && in.Column <= 0 {
		return Report{}, fmt.Errorf("column size must be positive, got %g mm", float64(in.Column))
	}

	r := Report{Grid: NewGrid(in.Length, in.Width, in.S1, in.S2, in.Selection.Slab.SplitSpan())}

	beams(&r, in, p)
	if err := slabs(&r, in, p); err != nil {
		return Report{}, err
	}
	columns(&r, in, p)

	r.CISVolume = units.CubicMeters(math.Ceil(float64(r.BeamVolume + r.SlabVolume + r.ColumnVolume)))

	equipment(&r, in, p)
	if err := manpower(&r, in, p, rates); err != nil {
		return Report{}, err
	}
	return r, nil
}

func rebar(volume units.CubicMeters, ratio float64) units.Tonnes {
	return units.Tonnes(math.Ceil(float64(volume) * ratio * ec2.SteelDensity))
}

// beams adds the formwork, concrete, rebar and tendons of both (or all three)
// beam directions.
func beams(r *Report, in Input, p profile.Profile) {
	if !in.Selection.Beam.HasBeams() {
		return
	}
	s1, s2 := float64(in.S1), float64(in.S2)

	lines := []struct {
		count   int
		length  float64
		section beam.Section
	}{
		{r.BeamsS1, s1, in.Beams.S1},
		{r.BeamsS2, s2, in.Beams.S2},
		{r.BeamsS3, s2, in.Beams.S3},
	}

	var formwork, volume float64
	for _, l := range lines {
		b, d := l.section.Meters()
		n := float64(l.count)
		formwork += n * l.length * (float64(b) + 1)
		volume += n * float64(b) * float64(d) * l.length
	}
	r.BeamFormwork = units.SquareMeters(formwork)
	r.BeamVolume = units.CubicMeters(volume)

	ratio := p.Rebar.CISBeam
	if in.Selection.Beam == system.PTBeam {
		ratio = p.Rebar.PTBeam
		r.BeamTendons = r.BaysX + r.BaysY + 2
	}
	r.BeamRebar = rebar(r.BeamVolume, ratio)
}

// slabs adds the slab quantities for the resolved slab system.
func slabs(r *Report, in Input, p profile.Profile) error {
	area := float64(in.Length) * float64(in.Width)
	t := float64(in.Slab.Thickness.Meters())
	sl := in.Selection.Slab

	switch {
	case sl == system.CISSlab:
		r.SlabFormwork = units.SquareMeters(area - float64(r.BeamFormwork)/2)
		r.SlabVolume = units.CubicMeters(float64(r.SlabFormwork) * t)
		r.SlabRebar = rebar(r.SlabVolume, p.Rebar.CISSlab)
		r.ProppedSlabs = p.ProppedSlabSets

	case sl == system.PTFlatSlab:
		spacing := float64(in.Slab.TendonSpacing.Meters())
		if spacing <= 0 {
			return fmt.Errorf("flat slab tendon spacing must be positive, got %g mm", float64(in.Slab.TendonSpacing))
		}
		r.SlabFormwork = units.SquareMeters(area)
		r.SlabVolume = units.CubicMeters(area * t)
		r.SlabRebar = rebar(r.SlabVolume, p.Rebar.PTSlab)
		r.SlabTendons = int(math.Ceil(float64(in.Width)/spacing)) + 1 +
			int(math.Ceil(float64(in.Length)/spacing)) + 1
		r.ProppedSlabs = p.ProppedSlabSets

	case sl.HollowCore():
		// Planks are stacked across s2 clear of the column, one run per bay
		// (two per bay for split spans)
		clear := float64(in.S2) - float64(in.Column.Meters())
		perBay := int(math.Floor(clear/sl.UnitWidth() + gridTolerance))
		if perBay < 0 {
			perBay = 0
		}
		runs := r.BaysX * r.BaysY
		if sl.SplitSpan() {
			runs *= 2
		}
		r.HollowCoreUnits = perBay * runs
		r.UnproppedSlabs = r.HollowCoreUnits

		r.SlabVolume = units.CubicMeters(area * float64(slab.ToppingThickness.Meters()))
		r.SlabRebar = rebar(r.SlabVolume, p.Rebar.Topping)

	default:
		return fmt.Errorf("%w: slab %q", system.ErrUnsupportedCombination, sl)
	}
	return nil
}

// columns adds formwork and concrete for cast columns or unit counts for precast.
func columns(r *Report, in Input, p profile.Profile) {
	if in.Selection.Column.Precast() {
		r.VerticalPC = r.Columns
		return
	}
	side := float64(in.Column.Meters())
	r.ColumnFormworks = r.Columns
	r.ColumnVolume = units.CubicMeters(float64(r.Columns) * side * side * float64(in.FloorHeight))
	r.ColumnRebar = rebar(r.ColumnVolume, p.Rebar.Column)
}

// columnLifts is the number of crane lifts per column: cage and formwork for
// cast columns, the unit itself for precast.
func columnLifts(c system.Column) int {
	if c.Precast() {
		return 1
	}
	return 2
}

func equipment(r *Report, in Input, p profile.Profile) {
	sel := in.Selection

	r.TowerCranes = p.Cranes(float64(in.Length))
	r.ConcretePumps = 1
	r.PassengerHoists = 1
	if sel.Column.Precast() || sel.Slab.HollowCore() {
		r.MEWPs = 1
	}

	steel := float64(r.BeamRebar + r.SlabRebar)
	formwork := float64(r.BeamFormwork + r.SlabFormwork)
	planks := float64(r.HollowCoreUnits)

	r.CraneHoistCount = int(math.Ceil(float64(r.Columns*columnLifts(sel.Column)) +
		steel/p.TrailerRebar + formwork/p.FormworkPerLift + planks))
	r.TruckDeliveries = int(math.Ceil(float64(r.CISVolume) / p.TruckVolume))
	r.TrailerDeliveries = int(math.Ceil(float64(r.Columns)/p.ColumnsPerTrailer +
		steel/p.TrailerRebar + planks/p.UnitsPerTrailer))
}
