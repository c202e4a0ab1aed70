package planner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/darshoned/DfMA/internal/beam"
	"github.com/darshoned/DfMA/internal/catalog"
	"github.com/darshoned/DfMA/internal/profile"
	"github.com/darshoned/DfMA/internal/system"
	"github.com/darshoned/DfMA/internal/units"
)

func engine(t *testing.T) *Engine {
	t.Helper()
	e, err := Open(Sources{})
	require.NoError(t, err)
	return e
}

func allCIS() Input {
	return Input{
		S1: 8, S2: 4, LiveLoad: 3, Length: 60, Width: 30,
		Column: system.CISColumn, Beam: system.CISBeam, Slab: system.CISSlab,
	}
}

func TestGenerateAllCIS(t *testing.T) {
	res, err := engine(t).Generate(context.Background(), allCIS())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, res.ID)
	assert.Equal(t, "baseline", res.Profile)
	assert.Equal(t, units.Meters(64), res.Input.Length)
	assert.Equal(t, units.Meters(32), res.Input.Width)
	assert.Equal(t, DefaultFloorHeight, res.Input.FloorHeight)

	assert.Equal(t, units.Millimeters(500), res.Column.Size)
	assert.Equal(t, units.Millimeters(300), res.Slab.Thickness)
	assert.Equal(t, beam.Section{Width: 500, Depth: 600}, res.Beams.S2)

	assert.Equal(t, 2, res.Quantities.TowerCranes)
	assert.Equal(t, 2.0, res.Outputs.Equipment[0])
	assert.GreaterOrEqual(t, res.Quantities.Mandays, 0.0)
	assert.GreaterOrEqual(t, res.Outputs.Manpower[0], 0.0)
	assert.Len(t, res.Outputs.Design, 10)
	assert.Len(t, res.Outputs.All, 42)
}

func TestGenerateFlatSlabHasNoBeams(t *testing.T) {
	e := engine(t)
	for _, in := range []Input{
		{S1: 8, S2: 8, LiveLoad: 3, Length: 40, Width: 24, Column: system.CISColumn, Beam: system.FlatSlabBeam, Slab: system.PTFlatSlab},
		{S1: 11, S2: 9, LiveLoad: 12, Length: 95, Width: 50, Column: system.PCColumn, Beam: system.FlatSlabBeam, Slab: system.PTFlatSlab},
	} {
		res, err := e.Generate(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, beam.Result{}, res.Beams)
		assert.Zero(t, res.Quantities.BeamFormwork)
		assert.Positive(t, res.Slab.TendonSpacing)
	}
}

func TestGenerateResolvesSplitSpan(t *testing.T) {
	in := Input{
		S1: 17, S2: 6, LiveLoad: 3, Length: 68, Width: 36,
		Column: system.PCColumn, Beam: system.CISBeam, Slab: system.HC12Slab,
	}
	res, err := engine(t).Generate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, system.HC12SplitSlab, res.Selection.Slab)
	assert.Equal(t, system.HC12Slab, res.Input.Slab)
	assert.False(t, res.Beams.S3.Zero())
	assert.Equal(t, res.Quantities.BaysX*res.Quantities.BaysY, res.Quantities.BeamsS3)
	assert.Positive(t, res.Quantities.HollowCoreUnits)
}

func TestGenerateLookupFailureAborts(t *testing.T) {
	in := Input{
		S1: 40, S2: 6, LiveLoad: 3, Length: 80, Width: 36,
		Column: system.CISColumn, Beam: system.CISBeam, Slab: system.HC24Slab,
	}
	res, err := engine(t).Generate(context.Background(), in)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, catalog.ErrNoMatchingProduct)
}

func TestGenerateValidation(t *testing.T) {
	e := engine(t)
	tests := map[string]func(*Input){
		"zero s1":        func(in *Input) { in.S1 = 0 },
		"negative width": func(in *Input) { in.Width = -1 },
		"negative load":  func(in *Input) { in.LiveLoad = -2 },
		"zero load cis":  func(in *Input) { in.LiveLoad = 0 },
		"unknown column": func(in *Input) { in.Column = "Steel Column" },
		"bad height":     func(in *Input) { in.FloorHeight = -3 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := allCIS()
			mutate(&in)
			_, err := e.Generate(context.Background(), in)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}

	in := allCIS()
	in.Beam = system.FlatSlabBeam
	_, err := e.Generate(context.Background(), in)
	assert.ErrorIs(t, err, system.ErrUnsupportedCombination)
}

func TestZeroLiveLoadWithBreakpointProfile(t *testing.T) {
	e, err := Open(Sources{Profile: "revised"})
	require.NoError(t, err)

	in := allCIS()
	in.LiveLoad = 0
	res, err := e.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "revised", res.Profile)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine(t).Generate(ctx, allCIS())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSingleStages(t *testing.T) {
	e := engine(t)
	in := allCIS()
	in.Column = "cis column" // labels are case-insensitive

	col, err := e.Column(in)
	require.NoError(t, err)
	assert.Equal(t, units.Millimeters(500), col.Size)

	sl, err := e.Slab(in)
	require.NoError(t, err)
	assert.Equal(t, units.Millimeters(300), sl.Thickness)

	bm, err := e.Beams(in)
	require.NoError(t, err)
	assert.Equal(t, units.Millimeters(600), bm.S2.Depth)
}

func TestParseInput(t *testing.T) {
	in, err := Parse([]byte(`{
		"name": "Warehouse",
		"s1": 8, "s2": 4, "live_load": 3, "length": 60, "width": 30,
		"column": "PC Column", "beam": "pt beam", "slab": "CIS Slab",
		"materials": {"f_ck": 50}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Warehouse", in.Name)
	assert.Equal(t, system.PTBeam, in.Beam)
	assert.Equal(t, 50.0, in.Materials.Fck)

	_, err = Parse([]byte(`{"s1": "eight"}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"s1": 8, "s2": 4, "live_load": 3, "length": 60, "width": 30, "column": "CIS Column", "beam": "CIS Beam", "slab": "Timber"}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "slab", verr.Field)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"s1": 8, "s2": 4, "live_load": 3, "length": 60, "width": 30,
		"column": "CIS Column", "beam": "CIS Beam", "slab": "CIS Slab"}`), 0o644))

	in, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, units.Meters(60), in.Length)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNewEngineRequiresRates(t *testing.T) {
	capacity, err := catalog.DefaultCapacity()
	require.NoError(t, err)
	rates, err := catalog.NewProductivityTable([]catalog.Rate{{Category: catalog.MeshTon, Manhour: 1}})
	require.NoError(t, err)

	_, err = NewEngine(profile.Baseline(), rates, capacity)
	assert.ErrorIs(t, err, catalog.ErrUnknownActivity)

	_, err = NewEngine(profile.Profile{Name: "broken"}, rates, capacity)
	assert.Error(t, err)

	_, err = Open(Sources{Profile: "legacy"})
	assert.Error(t, err)
}

func TestGenerateBatch(t *testing.T) {
	bad := allCIS()
	bad.S2 = 0
	inputs := []Input{allCIS(), bad, {
		S1: 8, S2: 8, LiveLoad: 5, Length: 48, Width: 48,
		Column: system.CISColumn, Beam: system.FlatSlabBeam, Slab: system.PTFlatSlab,
	}}

	items, err := engine(t).GenerateBatch(context.Background(), inputs, 2)
	require.NoError(t, err)
	require.Len(t, items, 3)

	for i, item := range items {
		assert.Equal(t, i, item.Index)
	}
	assert.NotNil(t, items[0].Result)
	assert.Empty(t, items[0].Err)
	assert.Nil(t, items[1].Result)
	assert.Contains(t, items[1].Err, "s2")
	assert.NotNil(t, items[2].Result)
	assert.NotEqual(t, items[0].Result.ID, items[2].Result.ID)
}

func TestGenerateBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := engine(t).GenerateBatch(ctx, []Input{allCIS(), allCIS()}, 0)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestReadScenariosXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"name", "s1", "s2", "live_load", "length", "width", "floor_height", "dead_load", "column", "beam", "slab"},
		{"A", 8, 4, 3, 60, 30, "", "", "CIS Column", "CIS Beam", "CIS Slab"},
		{},
		{"", 9, 9, 5, 45, 45, 4.5, 8, "PC Column", "PT Flat Slab", "PT Flat Slab"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	inputs, err := ReadScenariosXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, "A", inputs[0].Name)
	assert.Equal(t, units.Meters(8), inputs[0].S1)
	assert.Zero(t, inputs[0].FloorHeight)
	assert.Equal(t, "row 4", inputs[1].Name)
	assert.Equal(t, units.Meters(4.5), inputs[1].FloorHeight)
	assert.Equal(t, 8.0, inputs[1].DeadLoad)
	assert.Equal(t, system.Beam("PT Flat Slab"), inputs[1].Beam)
}

func TestReadScenariosXLSXErrors(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"s1", "s2"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{8, 4}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	_, err := ReadScenariosXLSX(&buf)
	assert.Error(t, err)

	_, err = ReadScenariosXLSX(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}
