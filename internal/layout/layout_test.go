package layout

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darshoned/DfMA/internal/planner"
	"github.com/darshoned/DfMA/internal/system"
)

func generate(t *testing.T, in planner.Input) *planner.Result {
	t.Helper()
	e, err := planner.Open(planner.Sources{})
	require.NoError(t, err)
	res, err := e.Generate(context.Background(), in)
	require.NoError(t, err)
	return res
}

func allCIS(t *testing.T) *planner.Result {
	return generate(t, planner.Input{
		S1: 8, S2: 4, LiveLoad: 3, Length: 60, Width: 30,
		Column: system.CISColumn, Beam: system.CISBeam, Slab: system.CISSlab,
	})
}

func TestBuildAllCIS(t *testing.T) {
	p := Build(allCIS(t))

	// 64 m x 32 m on an 8 x 4 grid
	assert.Len(t, p.GridX, 9)
	assert.Len(t, p.GridY, 9)
	assert.Equal(t, "1", p.GridX[0].Label)
	assert.Equal(t, "9", p.GridX[8].Label)
	assert.Equal(t, "A", p.GridY[0].Label)
	assert.Equal(t, "I", p.GridY[8].Label)
	assert.Len(t, p.Columns, 81)
	assert.Len(t, p.Beams, 144)
	assert.Empty(t, p.HollowCore)
	assert.Empty(t, p.DropPanels)
	assert.Len(t, p.Cranes, 2)
	assert.Len(t, p.Stairs, 2)
	assert.Len(t, p.Lifts, 2)

	assert.Equal(t, Rect{Max: Point{64, 32}}, p.Footprint)
	for _, cr := range p.Cranes {
		assert.True(t, p.Bounds.Contains(cr.Center))
		assert.Equal(t, CraneRadii, cr.Radii)
		assert.InDelta(t, 2.3, cr.Base.Width(), 1e-9)
	}
	// Column squares are 500 mm
	assert.InDelta(t, 0.5, p.Columns[0].Width(), 1e-9)
	assert.Equal(t, Point{}, center(p.Columns[0]))
}

func TestBuildFlatSlab(t *testing.T) {
	res := generate(t, planner.Input{
		S1: 8, S2: 8, LiveLoad: 3, Length: 40, Width: 24,
		Column: system.CISColumn, Beam: system.FlatSlabBeam, Slab: system.PTFlatSlab,
	})
	p := Build(res)

	assert.Empty(t, p.Beams)
	assert.Len(t, p.Columns, 24)
	require.Len(t, p.DropPanels, 24)

	c := float64(res.Column.Size.Meters())
	edge := Rect{Min: Point{-c / 2, -c / 2}, Max: Point{40 + c/2, 24 + c/2}}
	for _, d := range p.DropPanels {
		assert.True(t, edge.Contains(d.Min))
		assert.True(t, edge.Contains(d.Max))
	}
	// Corner panels are clipped, interior ones are not
	assert.InDelta(t, 1.5*c, p.DropPanels[0].Width(), 1e-9)
	assert.InDelta(t, 2*c, p.DropPanels[5].Width(), 1e-9)
}

func TestBuildSplitHollowCore(t *testing.T) {
	res := generate(t, planner.Input{
		S1: 17, S2: 6, LiveLoad: 3, Length: 68, Width: 36,
		Column: system.PCColumn, Beam: system.CISBeam, Slab: system.HC12Slab,
	})
	require.Equal(t, system.HC12SplitSlab, res.Selection.Slab)

	p := Build(res)
	assert.Len(t, p.HollowCore, res.Quantities.HollowCoreUnits)
	for _, r := range p.HollowCore {
		assert.InDelta(t, 8.5, r.Width(), 1e-9)
		assert.InDelta(t, 1.2, r.Height(), 1e-9)
	}
	// S1 and S2 beams plus one S3 per bay
	nx, ny := res.Quantities.BaysX, res.Quantities.BaysY
	assert.Len(t, p.Beams, (ny+1)*nx+(nx+1)*ny+nx*ny)
}

func TestRowLabel(t *testing.T) {
	tests := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for i, want := range tests {
		assert.Equal(t, want, RowLabel(i), "row %d", i)
	}
}

func TestRenderASCII(t *testing.T) {
	out := RenderASCII(Build(allCIS(t)), 80)

	assert.Contains(t, out, "PLAN VIEW")
	assert.Contains(t, out, "■")
	assert.Contains(t, out, "T")
	assert.Contains(t, out, "Tower crane 2")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 100)
	}
}

func TestExport(t *testing.T) {
	p := Build(allCIS(t))
	dir := t.TempDir()

	for _, name := range []string{"plan.png", "plan.svg", "nested/plan.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Export(p, path))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	require.NoError(t, Export(p, filepath.Join(dir, "plan")))
	_, err := os.Stat(filepath.Join(dir, "plan.png"))
	assert.NoError(t, err)
}
