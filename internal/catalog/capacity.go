package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/darshoned/DfMA/internal/units"
)

// Product is one hollow-core catalog row: a plank of the given width class and
// thickness carries Load over Span.
type Product struct {
	WidthClass float64           `json:"width_class"` // m
	Span       float64           `json:"span_m"`
	Load       float64           `json:"load_kn_m2"`
	Thickness  units.Millimeters `json:"thickness_mm"`
}

// CapacityTable is the hollow-core capacity catalog.
type CapacityTable struct {
	products []Product
}

// NewCapacityTable validates and stores the rows ordered by width, thickness and span.
func NewCapacityTable(products []Product) (*CapacityTable, error) {
	rows := make([]Product, len(products))
	copy(rows, products)
	for i, p := range rows {
		if !units.Finite(p.WidthClass, p.Span, p.Load, float64(p.Thickness)) ||
			p.WidthClass <= 0 || p.Span <= 0 || p.Load < 0 || p.Thickness <= 0 {
			return nil, fmt.Errorf("hollow-core row %d: invalid values %+v", i+1, p)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.WidthClass != b.WidthClass {
			return a.WidthClass < b.WidthClass
		}
		if a.Thickness != b.Thickness {
			return a.Thickness < b.Thickness
		}
		return a.Span < b.Span
	})
	return &CapacityTable{products: rows}, nil
}

// Lookup returns the thinnest product of a width class whose span and load
// capacity both cover the request.
func (t *CapacityTable) Lookup(widthClass, span, load float64) (units.Millimeters, error) {
	best := units.Millimeters(math.Inf(1))
	for _, p := range t.products {
		if !sameWidth(p.WidthClass, widthClass) {
			continue
		}
		if p.Span >= span && p.Load >= load && p.Thickness < best {
			best = p.Thickness
		}
	}
	if math.IsInf(float64(best), 1) {
		return 0, &LookupError{WidthClass: widthClass, Span: span, Load: load}
	}
	return best, nil
}

// Products returns a copy of the catalog rows.
func (t *CapacityTable) Products() []Product {
	out := make([]Product, len(t.products))
	copy(out, t.products)
	return out
}

// WidthClasses lists the distinct width classes in the catalog.
func (t *CapacityTable) WidthClasses() []float64 {
	var out []float64
	for _, p := range t.products {
		if len(out) == 0 || !sameWidth(out[len(out)-1], p.WidthClass) {
			out = append(out, p.WidthClass)
		}
	}
	return out
}

func sameWidth(a, b float64) bool { return math.Abs(a-b) < 1e-6 }
