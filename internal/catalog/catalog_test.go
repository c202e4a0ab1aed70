package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/darshoned/DfMA/internal/units"
)

func TestDefaultProductivity(t *testing.T) {
	tbl, err := DefaultProductivity()
	require.NoError(t, err)

	require.NoError(t, tbl.RequireCategories(
		LoosebarTon, MeshTon, VerticalNonRCPc, VerticalBeamFwPc,
		ScaffoldM3, CastingPumpM3, PostTensionPc, HorizontalPc, VerticalPc,
	))
	rate, err := tbl.Rate(LoosebarTon)
	require.NoError(t, err)
	assert.Equal(t, 40.0, rate)
	assert.Equal(t, 9, tbl.Len())
	assert.Equal(t, CastingPumpM3, tbl.Rates()[0].Category)
}

func TestMissingRate(t *testing.T) {
	tbl, err := NewProductivityTable([]Rate{{Category: MeshTon, Manhour: 12}})
	require.NoError(t, err)

	_, err = tbl.Rate("crane_day")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownActivity))

	err = tbl.RequireCategories(MeshTon, LoosebarTon)
	var missing *MissingRateError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, LoosebarTon, missing.Category)
}

func TestProductivityTableRejectsBadRows(t *testing.T) {
	_, err := NewProductivityTable([]Rate{{Category: "a", Manhour: 1}, {Category: "a", Manhour: 2}})
	assert.Error(t, err)
	_, err = NewProductivityTable([]Rate{{Category: " ", Manhour: 1}})
	assert.Error(t, err)
	_, err = NewProductivityTable([]Rate{{Category: "a", Manhour: -1}})
	assert.Error(t, err)
}

func TestCapacityLookup(t *testing.T) {
	tbl, err := DefaultCapacity()
	require.NoError(t, err)

	tests := []struct {
		name  string
		width float64
		span  float64
		load  float64
		want  units.Millimeters
	}{
		{"short light", 1.2, 5, 3, 150},
		{"8m office", 1.2, 8, 3, 200},
		{"8m heavy", 1.2, 8, 10, 250},
		{"long span", 1.2, 15.5, 3, 400},
		{"wide 8m", 2.4, 8, 3, 200},
		{"wide 12m", 2.4, 12, 5, 320},
		{"wide long", 2.4, 18, 3, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tbl.Lookup(tt.width, tt.span, tt.load)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCapacityLookupNoMatch(t *testing.T) {
	tbl, err := DefaultCapacity()
	require.NoError(t, err)

	_, err = tbl.Lookup(1.2, 17, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMatchingProduct))

	var lookup *LookupError
	require.ErrorAs(t, err, &lookup)
	assert.Equal(t, 17.0, lookup.Span)
	assert.Equal(t, 1.2, lookup.WidthClass)

	// half span is available
	got, err := tbl.Lookup(1.2, 8.5, 3)
	require.NoError(t, err)
	assert.Equal(t, units.Millimeters(200), got)

	_, err = tbl.Lookup(3.6, 5, 1)
	assert.ErrorIs(t, err, ErrNoMatchingProduct)
}

func TestWidthClasses(t *testing.T) {
	tbl, err := DefaultCapacity()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.2, 2.4}, tbl.WidthClasses())
	assert.NotEmpty(t, tbl.Products())
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadProductivityCSV(strings.NewReader("name,rate\nx,1\n"))
	assert.Error(t, err)

	_, err = ReadProductivityCSV(strings.NewReader("category,manhour\nx,lots\n"))
	assert.Error(t, err)

	_, err = ReadCapacityCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = ReadCapacityCSV(strings.NewReader("width_class,span_m,load_kn_m2,thickness_mm\n1.2,0,3,200\n"))
	assert.Error(t, err)
}

func TestReadCSVSkipsBlankRows(t *testing.T) {
	tbl, err := ReadProductivityCSV(strings.NewReader("Category, Manhour\nmesh_ton, 12\n,\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"width_class", "span_m", "load_kn_m2", "thickness_mm"},
		{1.2, 10, 5, 265},
		{1.2, 12, 5, 320},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "hcs.xlsx")
	require.NoError(t, f.SaveAs(path))

	tbl, err := LoadCapacity(path)
	require.NoError(t, err)
	got, err := tbl.Lookup(1.2, 11, 4)
	require.NoError(t, err)
	assert.Equal(t, units.Millimeters(320), got)
}

func TestLoadPaths(t *testing.T) {
	tbl, err := LoadProductivity("")
	require.NoError(t, err)
	assert.Equal(t, 9, tbl.Len())

	dir := t.TempDir()
	path := filepath.Join(dir, "rates.csv")
	require.NoError(t, os.WriteFile(path, []byte("category,manhour\nmesh_ton,10\n"), 0o644))
	tbl, err = LoadProductivity(path)
	require.NoError(t, err)
	rate, _ := tbl.Rate(MeshTon)
	assert.Equal(t, 10.0, rate)

	_, err = LoadProductivity(filepath.Join(dir, "rates.json"))
	assert.Error(t, err)
	_, err = LoadCapacity(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
