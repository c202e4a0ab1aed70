package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Productivity categories consumed by the manhour calculation.
const (
	LoosebarTon      = "loosebar_ton"       // loose bar fixing, per tonne
	MeshTon          = "mesh_ton"           // mesh fixing, per tonne
	VerticalNonRCPc  = "vertical_nonrc_pc"  // non-RC vertical formwork, per panel
	VerticalBeamFwPc = "vertical_beamfw_pc" // beam side formwork, per panel
	ScaffoldM3       = "scaffold_m3"        // scaffold volume
	CastingPumpM3    = "casting_pump_m3"    // pumped concrete
	PostTensionPc    = "posttension_pc"     // tendon stressing, per tendon
	HorizontalPc     = "horizontal_pc"      // horizontal precast unit install
	VerticalPc       = "vertical_pc"        // vertical precast unit install
)

// Rate is one row of the productivity table.
type Rate struct {
	Category string  `json:"category"`
	Manhour  float64 `json:"manhour"`
	Unit     string  `json:"unit,omitempty"`
}

// ProductivityTable maps activity categories to manhours per unit. It is
// read-only after construction and safe to share between goroutines.
type ProductivityTable struct {
	rates map[string]Rate
}

// NewProductivityTable builds a table, rejecting blank, duplicate and negative rows.
func NewProductivityTable(rates []Rate) (*ProductivityTable, error) {
	t := &ProductivityTable{rates: make(map[string]Rate, len(rates))}
	for i, r := range rates {
		r.Category = strings.TrimSpace(r.Category)
		if r.Category == "" {
			return nil, fmt.Errorf("productivity row %d: empty category", i+1)
		}
		if _, dup := t.rates[r.Category]; dup {
			return nil, fmt.Errorf("productivity row %d: duplicate category %q", i+1, r.Category)
		}
		if r.Manhour < 0 || math.IsNaN(r.Manhour) || math.IsInf(r.Manhour, 0) {
			return nil, fmt.Errorf("productivity row %d: invalid manhour %g for %q", i+1, r.Manhour, r.Category)
		}
		t.rates[r.Category] = r
	}
	return t, nil
}

// Rate returns the manhours per unit for a category.
func (t *ProductivityTable) Rate(category string) (float64, error) {
	r, ok := t.rates[category]
	if !ok {
		return 0, &MissingRateError{Category: category}
	}
	return r.Manhour, nil
}

// RequireCategories fails on the first category the table does not contain.
func (t *ProductivityTable) RequireCategories(categories ...string) error {
	for _, c := range categories {
		if _, err := t.Rate(c); err != nil {
			return err
		}
	}
	return nil
}

// Rates returns every row sorted by category.
func (t *ProductivityTable) Rates() []Rate {
	out := make([]Rate, 0, len(t.rates))
	for _, r := range t.rates {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Len returns the number of categories.
func (t *ProductivityTable) Len() int { return len(t.rates) }
