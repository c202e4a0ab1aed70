package layout

import (
	"fmt"
	"math"
	"strings"
)

// canvas is a character raster over plan coordinates.
type canvas struct {
	cells  [][]rune
	bounds Rect
	sx, sy float64 // metres per character
}

func newCanvas(bounds Rect, cols int) *canvas {
	sx := bounds.Width() / float64(cols)
	sy := sx * 2 // characters are about twice as tall as wide
	rows := int(math.Ceil(bounds.Height() / sy))
	if rows < 1 {
		rows = 1
	}
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return &canvas{cells: cells, bounds: bounds, sx: sx, sy: sy}
}

// cell maps a plan point to a row and column; row 0 is the top of the plan.
func (c *canvas) cell(p Point) (int, int) {
	col := int((p.X - c.bounds.Min.X) / c.sx)
	row := len(c.cells) - 1 - int((p.Y-c.bounds.Min.Y)/c.sy)
	return row, col
}

func (c *canvas) set(row, col int, r rune) {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = r
}

func (c *canvas) point(p Point, r rune) {
	row, col := c.cell(p)
	c.set(row, col, r)
}

func (c *canvas) fill(rect Rect, r rune) {
	top, left := c.cell(Point{rect.Min.X, rect.Max.Y})
	bottom, right := c.cell(Point{rect.Max.X, rect.Min.Y})
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			c.set(row, col, r)
		}
	}
}

func (c *canvas) text(p Point, s string) {
	row, col := c.cell(p)
	for i, r := range s {
		c.set(row, col+i, r)
	}
}

func (c *canvas) String(indent string) string {
	var sb strings.Builder
	for _, line := range c.cells {
		sb.WriteString(indent)
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderASCII draws a coarse character plan of the given width in columns.
func RenderASCII(p Plan, cols int) string {
	if cols < 20 {
		cols = 20
	}
	cv := newCanvas(p.Bounds, cols)

	for _, r := range p.HollowCore {
		cv.fill(r, '░')
	}
	for _, r := range p.DropPanels {
		cv.fill(r, '▒')
	}
	for _, r := range p.Beams {
		if r.Width() >= r.Height() {
			cv.fill(Rect{Min: Point{r.Min.X, center(r).Y}, Max: Point{r.Max.X, center(r).Y}}, '═')
		} else {
			cv.fill(Rect{Min: Point{center(r).X, r.Min.Y}, Max: Point{center(r).X, r.Max.Y}}, '║')
		}
	}
	for _, r := range p.Stairs {
		cv.fill(r, 'S')
	}
	for _, r := range p.Lifts {
		cv.fill(r, 'L')
	}
	for _, r := range p.Columns {
		cv.point(center(r), '■')
	}
	for _, cr := range p.Cranes {
		cv.point(cr.Center, 'T')
	}

	// Grid labels sit in the margin
	for _, g := range p.GridX {
		cv.text(Point{g.From.X, p.Bounds.Max.Y - cv.sy}, g.Label)
	}
	for _, g := range p.GridY {
		cv.text(Point{p.Bounds.Min.X, g.From.Y}, g.Label)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  PLAN VIEW\n")
	sb.WriteString("  ─────────\n")
	sb.WriteString(fmt.Sprintf("  %s\n", p.Title))
	sb.WriteString(fmt.Sprintf("  %s\n\n", p.Subtitle))
	sb.WriteString(cv.String("  "))
	sb.WriteString("\n")
	sb.WriteString("  ■ column  ═ ║ beam  ░ hollow-core  ▒ drop panel  S stair  L lift  T tower crane\n")
	for _, l := range p.Legend {
		sb.WriteString(fmt.Sprintf("  • %s\n", l))
	}
	for i, cr := range p.Cranes {
		sb.WriteString(fmt.Sprintf("  • Tower crane %d at (%.1f, %.1f) m, radii %v m\n", i+1, cr.Center.X, cr.Center.Y, cr.Radii))
	}
	return sb.String()
}
