package layout

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	gridColor   = color.Gray{Y: 160}
	beamColor   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	plankColor  = color.RGBA{R: 211, G: 211, B: 211, A: 180}
	dropColor   = color.RGBA{R: 100, G: 149, B: 237, A: 90}
	coreColor   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	craneColors = []color.Color{
		color.RGBA{R: 128, G: 0, B: 128, A: 255},
		color.RGBA{R: 0, G: 0, B: 255, A: 255},
		color.RGBA{R: 0, G: 128, B: 0, A: 255},
		color.RGBA{R: 255, G: 165, B: 0, A: 255},
	}
)

func outline(r Rect) plotter.XYs {
	return plotter.XYs{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Min.Y},
	}
}

func circle(c Point, radius float64) plotter.XYs {
	const n = 90
	pts := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = plotter.XY{X: c.X + radius*math.Cos(a), Y: c.Y + radius*math.Sin(a)}
	}
	return pts
}

func addLine(p *plot.Plot, pts plotter.XYs, c color.Color, width vg.Length, dashed bool) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = width
	l.LineStyle.Color = c
	if dashed {
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	}
	p.Add(l)
	return nil
}

func addRects(p *plot.Plot, rects []Rect, fill, edge color.Color) error {
	for _, r := range rects {
		poly, err := plotter.NewPolygon(outline(r)[:4])
		if err != nil {
			return err
		}
		poly.Color = fill
		poly.LineStyle.Color = edge
		poly.LineStyle.Width = vg.Points(0.3)
		p.Add(poly)
	}
	return nil
}

// Export draws the plan to an image file. The format follows the extension
// (.png, .svg, .pdf); any other name gets a .png suffix.
func Export(pl Plan, filename string) error {
	p := plot.New()
	p.Title.Text = pl.Title
	p.X.Label.Text = "Length (m)"
	p.Y.Label.Text = "Width (m)"
	p.X.Min, p.X.Max = pl.Bounds.Min.X, pl.Bounds.Max.X
	p.Y.Min, p.Y.Max = pl.Bounds.Min.Y, pl.Bounds.Max.Y

	// Grid
	for _, g := range append(append([]GridLine{}, pl.GridX...), pl.GridY...) {
		if err := addLine(p, plotter.XYs{{X: g.From.X, Y: g.From.Y}, {X: g.To.X, Y: g.To.Y}}, gridColor, vg.Points(0.5), true); err != nil {
			return err
		}
	}

	// Slab, beams and columns
	if err := addRects(p, pl.HollowCore, plankColor, color.Black); err != nil {
		return err
	}
	if err := addRects(p, pl.DropPanels, dropColor, beamColor); err != nil {
		return err
	}
	for _, b := range pl.Beams {
		if err := addLine(p, outline(b), beamColor, vg.Points(0.6), false); err != nil {
			return err
		}
	}
	if err := addRects(p, pl.Columns, color.Black, color.Black); err != nil {
		return err
	}

	// Stair and lift cores
	for _, r := range append(append([]Rect{}, pl.Stairs...), pl.Lifts...) {
		if err := addLine(p, outline(r), coreColor, vg.Points(1), false); err != nil {
			return err
		}
	}

	// Tower cranes
	for _, cr := range pl.Cranes {
		if err := addLine(p, outline(cr.Base), color.RGBA{B: 255, A: 255}, vg.Points(1), false); err != nil {
			return err
		}
		if err := addLine(p, outline(cr.Pad), color.RGBA{G: 128, A: 255}, vg.Points(1), false); err != nil {
			return err
		}
		for i, r := range cr.Radii {
			if err := addLine(p, circle(cr.Center, r), craneColors[i%len(craneColors)], vg.Points(0.8), false); err != nil {
				return err
			}
		}
		mast, err := plotter.NewScatter(plotter.XYs{{X: cr.Center.X, Y: cr.Center.Y}})
		if err != nil {
			return err
		}
		mast.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		mast.GlyphStyle.Radius = vg.Points(4)
		mast.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(mast)
	}

	// Grid labels
	var xys plotter.XYs
	var labels []string
	for _, g := range pl.GridX {
		xys = append(xys, plotter.XY{X: g.To.X, Y: g.To.Y})
		labels = append(labels, g.Label)
	}
	for _, g := range pl.GridY {
		xys = append(xys, plotter.XY{X: g.From.X, Y: g.From.Y})
		labels = append(labels, g.Label)
	}
	if len(xys) > 0 {
		l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return err
		}
		p.Add(l)
	}
	p.Legend.Top = true
	for _, text := range pl.Legend {
		p.Legend.Add(text)
	}

	// Keep the plan to scale
	width := 10 * vg.Inch
	height := width * vg.Length(pl.Bounds.Height()/pl.Bounds.Width())
	if height < 4*vg.Inch {
		height = 4 * vg.Inch
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
