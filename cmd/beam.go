package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/darshoned/DfMA/internal/beam"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Size the beams on each grid direction",
	Long: `Size the beams of the selected beam system. The S2 beam carries the
factored slab load over span S1 and a tributary width of S2. The S1 beam
follows a span/depth rule. S3 midspan beams appear only on split-span
hollow-core layouts, and flat slabs have no beams.

Examples:
  dfma beam --s1 8 --s2 4 --live-load 3 -L 60 -W 30
  dfma beam --s1 8 --s2 4 --live-load 3 -L 60 -W 30 --beam "PT Beam"`,
	Run: runBeam,
}

func init() {
	rootCmd.AddCommand(beamCmd)
	addInputFlags(beamCmd)
}

func runBeam(cmd *cobra.Command, args []string) {
	in, err := readInput(cmd)
	if err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		return
	}
	engine, err := openEngine()
	if err != nil {
		fmt.Printf("Error loading engine: %v\n", err)
		return
	}

	res, err := engine.Beams(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if jsonOutput {
		printJSON(res)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     BEAM SIZING - %s\n", in.Beam)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if res.S1.Zero() && res.S2.Zero() {
		fmt.Println("  Flat slab system: no beams.")
		fmt.Println()
		return
	}

	fmt.Println("LOADED BEAM DESIGN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Line load (w):\t%.2f kN/m\n", res.LineLoad)
	fmt.Fprintf(w, "  Moment (M = wL²/8):\t%.2f kN-m\n", res.Moment)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTIONS (b x d):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, s := range []struct {
		name string
		sec  beam.Section
	}{
		{"S1", res.S1},
		{"S2", res.S2},
		{"S3", res.S3},
	} {
		if s.sec.Zero() {
			fmt.Fprintf(w, "  %s:\t-\n", s.name)
			continue
		}
		fmt.Fprintf(w, "  %s:\t%.0f x %.0f mm\n", s.name, float64(s.sec.Width), float64(s.sec.Depth))
	}
	w.Flush()
	fmt.Println()
}
