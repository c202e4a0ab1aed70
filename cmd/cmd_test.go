package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/darshoned/DfMA/internal/system"
	"github.com/darshoned/DfMA/internal/units"
)

func TestReadInputFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"s1":8,"s2":4,"live_load":3,"length":60,"width":30,
"column":"CIS Column","beam":"CIS Beam","slab":"CIS Slab"}`), 0o644))

	cmd := &cobra.Command{Use: "test"}
	addInputFlags(cmd)
	t.Cleanup(func() { inputFile = "" })
	require.NoError(t, cmd.Flags().Parse([]string{"--file", path, "--live-load", "5"}))

	in, err := readInput(cmd)
	require.NoError(t, err)
	assert.Equal(t, units.Meters(8), in.S1)
	assert.Equal(t, 5.0, in.LiveLoad)
	assert.Equal(t, system.CISSlab, in.Slab)
}

func TestGenerateCommandWritesFiles(t *testing.T) {
	dir := t.TempDir()
	plan := filepath.Join(dir, "plan.svg")
	xlsx := filepath.Join(dir, "report.xlsx")
	pdf := filepath.Join(dir, "report.pdf")

	rootCmd.SetArgs([]string{
		"generate", "--s1", "8", "--s2", "4", "--live-load", "3", "-L", "60", "-W", "30",
		"--output", plan, "--xlsx", xlsx, "--pdf", pdf, "--log-level", "error",
	})
	require.NoError(t, rootCmd.Execute())

	for _, p := range []string{plan, xlsx, pdf} {
		assert.FileExists(t, p)
	}
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scenarios.xlsx")
	out := filepath.Join(dir, "results.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"name", "s1", "s2", "live_load", "length", "width", "column", "beam", "slab"},
		{"a", 8, 4, 3, 60, 30, "CIS Column", "CIS Beam", "CIS Slab"},
		{"b", 40, 6, 3, 80, 36, "CIS Column", "CIS Beam", "2.4HC Slab"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(in))

	rootCmd.SetArgs([]string{"batch", "--file", in, "--out", out, "--workers", "2"})
	require.NoError(t, rootCmd.Execute())

	res, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer res.Close()
	got, err := res.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "ok", got[1][5])
	assert.Contains(t, got[2][5], "no matching")
}
