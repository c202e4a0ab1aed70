package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Size the interior column of a building",
	Long: `Size the square interior column from the axial load of every storey
carried over one bay (S1 x S2).

The side starts at 500 mm and grows in 50 mm steps until the section
carries the load. Precast columns also report their weight.

Examples:
  dfma column --s1 8 --s2 4 --live-load 3 -L 60 -W 30
  dfma column --s1 12 --s2 9 --live-load 7.5 -L 60 -W 36 --column "PC Column"`,
	Run: runColumn,
}

func init() {
	rootCmd.AddCommand(columnCmd)
	addInputFlags(columnCmd)
}

func runColumn(cmd *cobra.Command, args []string) {
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

	res, err := engine.Column(in)
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
	fmt.Printf("     COLUMN SIZING - %s\n", in.Column)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("COLUMN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Profile:\t%s\n", engine.Profile().Name)
	fmt.Fprintf(w, "  Storeys:\t%d\n", engine.Profile().Storeys)
	fmt.Fprintf(w, "  Axial load (N):\t%.1f kN\n", res.AxialLoad)
	fmt.Fprintf(w, "  Axial resistance:\t%.2f MPa\n", res.AxialResistance)
	fmt.Fprintf(w, "  Required area:\t%.0f mm²\n", res.RequiredArea)
	fmt.Fprintf(w, "  Self-weight length:\t%.2f m\n", res.EffectiveLength)
	fmt.Fprintf(w, "  Column size:\t%.0f x %.0f mm\n", float64(res.Size), float64(res.Size))
	if res.Weight > 0 {
		fmt.Fprintf(w, "  Precast weight:\t%.2f t\n", float64(res.Weight))
	}
	w.Flush()
	fmt.Println()
}
