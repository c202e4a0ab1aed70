package quantity

import "github.com/darshoned/DfMA/internal/units"

// Field is one named value of the all-fields list.
type Field struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Labels of the positional output lists.
var (
	DesignLabels = []string{
		"No. of Volumetric PC Components",
		"No. of Vertical PC Components",
		"No. of Propped Slabs",
		"No. of Unpropped Slabs",
		"Slab Formwork Area (m²)",
		"Beam Formwork Area (m²)",
		"No. of Column Formworks",
		"Beam Rebar Weight (t)",
		"Slab Rebar Weight (t)",
		"CIS Volume (m³)",
	}
	EquipmentLabels = []string{
		"No. of Tower Cranes",
		"No. of Concrete Pumps",
		"No. of Construction Hoists",
		"No. of Passenger/Material Hoists",
		"No. of Gondolas",
		"No. of MEWPs",
	}
	UtilityLabels = []string{
		"Passenger/Material Hoist Count",
		"Tower Crane Hoist Count",
		"No. of Concrete Truck Deliveries",
		"No. of Trailer Deliveries",
	}
	ManpowerLabels = []string{
		"Total Mandays",
		"Productivity (m²/manday)",
		"Productivity per Crane (m²/manday)",
	}
)

func whole(v float64) float64 { return units.Round(v, 0) }

// Design is the design output list in display order.
func (r Report) Design() []float64 {
	return []float64{
		whole(float64(r.VolumetricPC)),
		whole(float64(r.VerticalPC)),
		whole(float64(r.ProppedSlabs)),
		whole(float64(r.UnproppedSlabs)),
		whole(float64(r.SlabFormwork)),
		whole(float64(r.BeamFormwork)),
		whole(float64(r.ColumnFormworks)),
		whole(float64(r.BeamRebar)),
		whole(float64(r.SlabRebar)),
		whole(float64(r.CISVolume)),
	}
}

// Equipment is the equipment output list in display order.
func (r Report) Equipment() []float64 {
	return []float64{
		float64(r.TowerCranes),
		float64(r.ConcretePumps),
		float64(r.ConstructionHoists),
		float64(r.PassengerHoists),
		float64(r.Gondolas),
		float64(r.MEWPs),
	}
}

// Utility is the utility output list in display order.
func (r Report) Utility() []float64 {
	return []float64{
		float64(r.PassengerHoistCount),
		float64(r.CraneHoistCount),
		float64(r.TruckDeliveries),
		float64(r.TrailerDeliveries),
	}
}

// Manpower is the manpower output list in display order.
func (r Report) Manpower() []float64 {
	return []float64{
		whole(r.Mandays),
		units.Round(r.Productivity, 3),
		units.Round(r.Productivity/2, 3),
	}
}

// AllFields lists every report value in declaration order.
func (r Report) AllFields() []Field {
	values := []float64{
		float64(r.BaysX),
		float64(r.BaysY),
		float64(r.BeamsS1),
		float64(r.BeamsS2),
		float64(r.BeamsS3),
		float64(r.Columns),
		float64(r.VolumetricPC),
		float64(r.VerticalPC),
		float64(r.ProppedSlabs),
		float64(r.UnproppedSlabs),
		units.Round(float64(r.SlabFormwork), 2),
		units.Round(float64(r.BeamFormwork), 2),
		float64(r.ColumnFormworks),
		float64(r.BeamRebar),
		float64(r.SlabRebar),
		float64(r.ColumnRebar),
		units.Round(float64(r.BeamVolume), 2),
		units.Round(float64(r.SlabVolume), 2),
		units.Round(float64(r.ColumnVolume), 2),
		float64(r.CISVolume),
		float64(r.BeamTendons),
		float64(r.SlabTendons),
		float64(r.HollowCoreUnits),
		float64(r.TowerCranes),
		float64(r.ConcretePumps),
		float64(r.ConstructionHoists),
		float64(r.PassengerHoists),
		float64(r.Gondolas),
		float64(r.MEWPs),
		float64(r.PassengerHoistCount),
		float64(r.CraneHoistCount),
		float64(r.TruckDeliveries),
		float64(r.TrailerDeliveries),
		float64(r.BeamManhours),
		float64(r.SlabManhours),
		float64(r.ColumnManhours),
		float64(r.CastingManhours),
		units.Round(r.Mandays, 2),
		units.Round(r.Productivity, 3),
		units.Round(r.CraneHours, 2),
		float64(r.FloorCycleDays),
		units.Round(r.CraneHoursPerDay, 2),
	}
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = Field{Name: FieldNames[i], Value: v}
	}
	return fields
}

// FieldNames are the names of AllFields, matching the report's JSON keys.
var FieldNames = []string{
	"bays_x",
	"bays_y",
	"beams_s1",
	"beams_s2",
	"beams_s3",
	"columns",
	"volumetric_pc",
	"vertical_pc",
	"propped_slabs",
	"unpropped_slabs",
	"slab_formwork_m2",
	"beam_formwork_m2",
	"column_formworks",
	"beam_rebar_t",
	"slab_rebar_t",
	"column_rebar_t",
	"beam_volume_m3",
	"slab_volume_m3",
	"column_volume_m3",
	"cis_volume_m3",
	"beam_tendons",
	"slab_tendons",
	"hollow_core_units",
	"tower_cranes",
	"concrete_pumps",
	"construction_hoists",
	"passenger_material_hoists",
	"gondolas",
	"mewps",
	"passenger_material_hoist_count",
	"tower_crane_hoist_count",
	"concrete_truck_deliveries",
	"trailer_deliveries",
	"beam_manhours",
	"slab_manhours",
	"column_manhours",
	"casting_manhours",
	"total_mandays",
	"productivity_m2_per_manday",
	"crane_hours",
	"floor_cycle_days",
	"crane_hours_per_day",
}
