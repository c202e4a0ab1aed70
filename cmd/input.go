package cmd

import (
	"github.com/spf13/cobra"

	"github.com/darshoned/DfMA/internal/planner"
	"github.com/darshoned/DfMA/internal/system"
	"github.com/darshoned/DfMA/internal/units"
)

var (
	// Scenario inputs shared by generate, column, slab and beam
	inputFile  string
	inS1       float64
	inS2       float64
	inLength   float64
	inWidth    float64
	inHeight   float64
	inLiveLoad float64
	inDeadLoad float64
	inColumn   string
	inBeam     string
	inSlab     string
	inFck      float64
)

// addInputFlags registers the scenario flags on cmd. Each command gets its
// own flag set bound to the same variables; only one command runs per process.
func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&inputFile, "file", "f", "", "Scenario JSON file; flags given explicitly override it")

	// Grid flags
	f.Float64Var(&inS1, "s1", 0, "Grid span S1 (m)")
	f.Float64Var(&inS2, "s2", 0, "Grid span S2 (m)")
	f.Float64VarP(&inLength, "length", "L", 0, "Building length (m), rounded up to whole S1 bays")
	f.Float64VarP(&inWidth, "width", "W", 0, "Building width (m), rounded up to whole S2 bays")
	f.Float64Var(&inHeight, "floor-height", 0, "Floor-to-floor height (m) (default 6)")

	// Load flags
	f.Float64Var(&inLiveLoad, "live-load", 0, "Live load (kN/m²)")
	f.Float64Var(&inDeadLoad, "dead-load", 0, "Superimposed dead load (kN/m²) (default 7)")

	// System flags
	f.StringVar(&inColumn, "column", string(system.CISColumn), "Column system (CIS Column, PC Column)")
	f.StringVar(&inBeam, "beam", string(system.CISBeam), "Beam system (CIS Beam, PT Beam, PT Flat Slab)")
	f.StringVar(&inSlab, "slab", string(system.CISSlab), "Slab system (CIS Slab, PT Flat Slab, 1.2HC Slab, 2.4HC Slab, 1.2HCS_S3, 2.4HCS_S3)")

	// Material flags
	f.Float64Var(&inFck, "fck", 0, "Beam concrete strength f_ck (MPa) (default 40)")
}

// readInput builds the scenario from --file and the explicitly set flags.
func readInput(cmd *cobra.Command) (planner.Input, error) {
	var in planner.Input
	if inputFile != "" {
		loaded, err := planner.LoadFromFile(inputFile)
		if err != nil {
			return planner.Input{}, err
		}
		in = *loaded
	}

	flags := cmd.Flags()
	set := func(name string) bool { return inputFile == "" || flags.Changed(name) }
	if set("s1") {
		in.S1 = units.Meters(inS1)
	}
	if set("s2") {
		in.S2 = units.Meters(inS2)
	}
	if set("length") {
		in.Length = units.Meters(inLength)
	}
	if set("width") {
		in.Width = units.Meters(inWidth)
	}
	if set("floor-height") {
		in.FloorHeight = units.Meters(inHeight)
	}
	if set("live-load") {
		in.LiveLoad = inLiveLoad
	}
	if set("dead-load") {
		in.DeadLoad = inDeadLoad
	}
	if set("column") {
		in.Column = system.Column(inColumn)
	}
	if set("beam") {
		in.Beam = system.Beam(inBeam)
	}
	if set("slab") {
		in.Slab = system.Slab(inSlab)
	}
	if set("fck") {
		in.Materials.Fck = inFck
	}
	return in, nil
}
