// Package layout builds the schematic plan view of a generated building and
// renders it as text or as an image.
package layout

import (
	"fmt"
	"math"

	"github.com/darshoned/DfMA/internal/planner"
	"github.com/darshoned/DfMA/internal/system"
)

// Stair and lift core dimensions (m)
const (
	riserHeight   = 0.15
	treadDepth    = 0.3
	landingLength = 2.0
	stairWidth    = 1.2
	wallWidth     = 0.2
	liftSize      = 2.5
)

// CraneRadii are the working radii drawn around each tower crane (m).
var CraneRadii = []float64{15, 20, 25, 30}

// Point is a plan coordinate in metres. The first grid intersection is the origin.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned plan rectangle.
type Rect struct {
	Min Point
	Max Point
}

// Width returns the x extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the y extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func square(c Point, side float64) Rect {
	h := side / 2
	return Rect{Min: Point{c.X - h, c.Y - h}, Max: Point{c.X + h, c.Y + h}}
}

// GridLine is a labelled structural grid line.
type GridLine struct {
	Label string
	From  Point
	To    Point
}

// Crane is a tower crane position with its base and working radii.
type Crane struct {
	Center Point
	Base   Rect // 2.3 m mast base
	Pad    Rect // 5 m foundation pad
	Radii  []float64
}

// Plan is the complete plan geometry.
type Plan struct {
	Title     string
	Subtitle  string
	Bounds    Rect // drawing extent, one bay of margin
	Footprint Rect

	GridX []GridLine // lines across the length, labelled 1, 2, 3...
	GridY []GridLine // lines across the width, labelled A, B, C...

	Columns    []Rect
	Beams      []Rect
	HollowCore []Rect
	DropPanels []Rect
	Stairs     []Rect
	Lifts      []Rect
	Cranes     []Crane

	Legend []string
}

// Build derives the plan of a generated result.
func Build(res *planner.Result) Plan {
	in := res.Input
	s1, s2 := float64(in.S1), float64(in.S2)
	length, width := float64(in.Length), float64(in.Width)
	nx, ny := res.Quantities.BaysX, res.Quantities.BaysY
	c := float64(res.Column.Size.Meters())

	p := Plan{
		Title:     fmt.Sprintf("%s  (%.0f m x %.0f m)", res.Selection, length, width),
		Subtitle:  fmt.Sprintf("Grid %.2f m x %.2f m, column %.0f mm", s1, s2, float64(res.Column.Size)),
		Footprint: Rect{Max: Point{length, width}},
		Bounds:    Rect{Min: Point{-s1, -s2}, Max: Point{length + s1, width + s2}},
	}

	for i := 0; i <= nx; i++ {
		x := float64(i) * s1
		p.GridX = append(p.GridX, GridLine{
			Label: fmt.Sprint(i + 1),
			From:  Point{x, -s2 / 2},
			To:    Point{x, width + s2/2},
		})
	}
	for j := 0; j <= ny; j++ {
		y := float64(j) * s2
		p.GridY = append(p.GridY, GridLine{
			Label: RowLabel(j),
			From:  Point{-s1 / 2, y},
			To:    Point{length + s1/2, y},
		})
	}

	for i := 0; i <= nx; i++ {
		for j := 0; j <= ny; j++ {
			p.Columns = append(p.Columns, square(Point{float64(i) * s1, float64(j) * s2}, c))
		}
	}
	p.Legend = append(p.Legend, fmt.Sprintf("%s %.0f mm", res.Selection.Column, float64(res.Column.Size)))

	if res.Selection.Beam.HasBeams() {
		p.Beams = beams(res, nx, ny, s1, s2, c)
		p.Legend = append(p.Legend, fmt.Sprintf("%s S1 %.0fx%.0f, S2 %.0fx%.0f",
			res.Selection.Beam, float64(res.Beams.S1.Width), float64(res.Beams.S1.Depth),
			float64(res.Beams.S2.Width), float64(res.Beams.S2.Depth)))
	}

	switch sl := res.Selection.Slab; {
	case sl.HollowCore():
		p.HollowCore = planks(sl, res.Quantities.HollowCoreUnits, nx, ny, s1, s2, c)
		p.Legend = append(p.Legend, fmt.Sprintf("%.1fm HCS %.0f mm thick", sl.UnitWidth(), float64(res.Slab.HollowCoreThickness)))
	case sl == system.PTFlatSlab:
		edge := Rect{Min: Point{-c / 2, -c / 2}, Max: Point{length + c/2, width + c/2}}
		for _, col := range p.Columns {
			p.DropPanels = append(p.DropPanels, clip(square(center(col), 2*c), edge))
		}
		p.Legend = append(p.Legend, fmt.Sprintf("PT flat slab %.0f mm, tendons @ %.0f mm",
			float64(res.Slab.Thickness), float64(res.Slab.TendonSpacing)))
	default:
		p.Legend = append(p.Legend, fmt.Sprintf("%s %.0f mm", sl, float64(res.Slab.Thickness)))
	}

	p.Stairs, p.Lifts = cores(float64(in.FloorHeight), length, width, c)
	p.Cranes = cranes(res.Quantities.TowerCranes, p.Bounds)
	return p
}

// RowLabel returns the spreadsheet-style letter of a grid row: A..Z, AA, AB...
func RowLabel(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}
	return label
}

func center(r Rect) Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func clip(r, to Rect) Rect {
	return Rect{
		Min: Point{math.Max(r.Min.X, to.Min.X), math.Max(r.Min.Y, to.Min.Y)},
		Max: Point{math.Min(r.Max.X, to.Max.X), math.Min(r.Max.Y, to.Max.Y)},
	}
}

func beams(res *planner.Result, nx, ny int, s1, s2, c float64) []Rect {
	var out []Rect
	b1 := float64(res.Beams.S1.Width.Meters())
	b2 := float64(res.Beams.S2.Width.Meters())
	b3 := float64(res.Beams.S3.Width.Meters())

	// S1 beams run along x between columns
	for j := 0; j <= ny; j++ {
		y := float64(j) * s2
		for i := 0; i < nx; i++ {
			x := float64(i) * s1
			out = append(out, Rect{Min: Point{x + c/2, y - b1/2}, Max: Point{x + s1 - c/2, y + b1/2}})
		}
	}
	// S2 beams run along y
	for i := 0; i <= nx; i++ {
		x := float64(i) * s1
		for j := 0; j < ny; j++ {
			y := float64(j) * s2
			out = append(out, Rect{Min: Point{x - b2/2, y + c/2}, Max: Point{x + b2/2, y + s2 - c/2}})
		}
	}
	// S3 beams at midspan of split bays
	if res.Quantities.BeamsS3 > 0 {
		for i := 0; i < nx; i++ {
			x := float64(i)*s1 + s1/2
			for j := 0; j < ny; j++ {
				y := float64(j) * s2
				out = append(out, Rect{Min: Point{x - b3/2, y + b1/2}, Max: Point{x + b3/2, y + s2 - b1/2}})
			}
		}
	}
	return out
}

// planks lays the counted hollow-core units across each bay, stacked from
// the column line.
func planks(sl system.Slab, total, nx, ny int, s1, s2, c float64) []Rect {
	w := sl.UnitWidth()
	runs, span := 1, s1
	if sl.SplitSpan() {
		runs, span = 2, s1/2
	}
	if nx*ny == 0 {
		return nil
	}
	perBay := total / (runs * nx * ny)

	var out []Rect
	for i := 0; i < nx; i++ {
		for r := 0; r < runs; r++ {
			x := float64(i)*s1 + float64(r)*span
			for j := 0; j < ny; j++ {
				y := float64(j)*s2 + c/2
				for k := 0; k < perBay; k++ {
					out = append(out, Rect{
						Min: Point{x, y + float64(k)*w},
						Max: Point{x + span, y + float64(k+1)*w},
					})
				}
			}
		}
	}
	return out
}

// cores places a stair core and a lift at two opposite corners of the footprint.
func cores(floorHeight, length, width, c float64) (stairs, lifts []Rect) {
	risers := int(floorHeight / riserHeight)
	treads := risers/2 - 1
	coreLength := float64(treads)*treadDepth + 2*landingLength
	coreWidth := 2*stairWidth + 3*wallWidth

	stairs = []Rect{
		{Min: Point{c / 2, -c/2 - coreWidth}, Max: Point{c/2 + coreLength, -c / 2}},
		{Min: Point{length - c/2 - coreLength, width + c/2}, Max: Point{length - c/2, width + c/2 + coreWidth}},
	}
	lifts = []Rect{
		{Min: Point{-c/2 - liftSize, c / 2}, Max: Point{-c / 2, c/2 + liftSize}},
		{Min: Point{length + c/2, width - c/2 - liftSize}, Max: Point{length + c/2 + liftSize, width - c/2}},
	}
	return stairs, lifts
}

// cranes spaces n cranes evenly along the length of the drawing on its centre line.
func cranes(n int, bounds Rect) []Crane {
	out := make([]Crane, 0, n)
	y := (bounds.Min.Y + bounds.Max.Y) / 2
	for i := 1; i <= n; i++ {
		x := bounds.Min.X + bounds.Width()*float64(i)/float64(n+1)
		ctr := Point{x, y}
		out = append(out, Crane{
			Center: ctr,
			Base:   square(ctr, 2.3),
			Pad:    square(ctr, 5),
			Radii:  CraneRadii,
		})
	}
	return out
}
