package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var slabCmd = &cobra.Command{
	Use:   "slab",
	Short: "Select and size the slab system",
	Long: `Resolve the slab system and size it:
  - CIS slab: span/depth ratio of the profile, 150 mm minimum, 50 mm steps
  - PT flat slab: span/depth breakpoints, tendon spacing and count
  - Hollow-core: thinnest catalog unit for the span and live load,
    falling back to the split-span variant at S1/2

Examples:
  dfma slab --s1 8 --s2 4 --live-load 3 -L 60 -W 30
  dfma slab --s1 17 --s2 6 --live-load 3 -L 68 -W 36 --beam "CIS Beam" --slab "1.2HC Slab"`,
	Run: runSlab,
}

func init() {
	rootCmd.AddCommand(slabCmd)
	addInputFlags(slabCmd)
}

func runSlab(cmd *cobra.Command, args []string) {
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

	res, err := engine.Slab(in)
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
	fmt.Printf("     SLAB SELECTION - %s\n", res.Slab)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SLAB:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Requested:\t%s\n", in.Slab)
	fmt.Fprintf(w, "  Selected:\t%s\n", res.Slab)
	if res.SpanDepthRatio > 0 {
		fmt.Fprintf(w, "  Span/depth ratio:\t%.2f\n", res.SpanDepthRatio)
	}
	fmt.Fprintf(w, "  Thickness:\t%.0f mm\n", float64(res.Thickness))
	if res.TendonSpacing > 0 {
		fmt.Fprintf(w, "  Max tendon spacing:\t%.0f mm\n", float64(res.TendonSpacing))
		fmt.Fprintf(w, "  Tendons per bay:\t%d\n", res.TendonCount)
	}
	if res.HollowCoreThickness > 0 {
		fmt.Fprintf(w, "  Lookup span:\t%.2f m\n", float64(res.LookupSpan))
		fmt.Fprintf(w, "  Hollow-core unit:\t%.0f mm\n", float64(res.HollowCoreThickness))
	}
	w.Flush()

	if res.Slab != in.Slab && res.Slab.SplitSpan() {
		fmt.Println()
		fmt.Println("  ⚠ No unit spans S1; switched to the split-span layout with S3 beams")
	}
	fmt.Println()
}
