package ec2

// EN 1992-1-1 material constants used by the sizing heuristics

const (
	// Partial safety factors for materials (Table 2.1N)
	GammaC = 1.5  // concrete
	GammaS = 1.15 // reinforcing steel

	// Partial safety factors for actions (EN 1990 Table A1.2(B))
	GammaDL = 1.35 // permanent
	GammaLL = 1.5  // variable

	// AlphaColumn reduces the column concrete strength for slenderness
	AlphaColumn = 0.85

	// Characteristic strengths (MPa)
	FckColumn = 30.0  // column concrete
	FckBeam   = 40.0  // beam concrete (C40/50)
	Fyk       = 500.0 // B500 reinforcement

	// ColumnSteelRatio is the assumed longitudinal reinforcement ratio of a column
	ColumnSteelRatio = 0.02

	// Densities
	SteelDensity       = 7.85 // t/m³
	ConcreteDensity    = 2.5  // t/m³
	ConcreteUnitWeight = 25.0 // kN/m³
)

// Materials groups the overridable strengths and partial factors of a run.
type Materials struct {
	Fck     float64 `json:"f_ck" yaml:"f_ck"` // beam concrete strength (MPa)
	Fy      float64 `json:"f_y" yaml:"f_y"`   // reinforcement yield strength (MPa)
	GammaC  float64 `json:"gamma_c" yaml:"gamma_c"`
	GammaS  float64 `json:"gamma_s" yaml:"gamma_s"`
	GammaDL float64 `json:"gamma_dl" yaml:"gamma_dl"`
	GammaLL float64 `json:"gamma_ll" yaml:"gamma_ll"`
}

// DefaultMaterials returns the C40 / B500 defaults.
func DefaultMaterials() Materials {
	return Materials{
		Fck:     FckBeam,
		Fy:      Fyk,
		GammaC:  GammaC,
		GammaS:  GammaS,
		GammaDL: GammaDL,
		GammaLL: GammaLL,
	}
}

// WithDefaults fills zero fields from DefaultMaterials.
func (m Materials) WithDefaults() Materials {
	d := DefaultMaterials()
	if m.Fck <= 0 {
		m.Fck = d.Fck
	}
	if m.Fy <= 0 {
		m.Fy = d.Fy
	}
	if m.GammaC <= 0 {
		m.GammaC = d.GammaC
	}
	if m.GammaS <= 0 {
		m.GammaS = d.GammaS
	}
	if m.GammaDL <= 0 {
		m.GammaDL = d.GammaDL
	}
	if m.GammaLL <= 0 {
		m.GammaLL = d.GammaLL
	}
	return m
}

// Fcd is the design compressive strength fck/γc (MPa).
func Fcd(fck, gammaC float64) float64 {
	return fck / gammaC
}

// Fyd is the design yield strength fyk/γs (MPa).
func Fyd(fyk, gammaS float64) float64 {
	return fyk / gammaS
}

// AxialResistance returns the design axial capacity per unit area of a
// reinforced column (N/mm²): the slenderness-reduced concrete share blended
// with rho of steel at design yield.
func AxialResistance(fck, fyk, rho float64) float64 {
	fcc := AlphaColumn * Fcd(fck, GammaC)
	return (1-rho)*fcc + rho*Fyd(fyk, GammaS)
}
