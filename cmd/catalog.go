package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the loaded lookup tables",
	Long: `List the productivity rates or the hollow-core catalog the engine is
using: the built-in tables, or the files given by --productivity and
--catalog (CSV or XLSX).`,
}

var catalogProductivityCmd = &cobra.Command{
	Use:   "productivity",
	Short: "List manhours per unit of each activity",
	Run:   runCatalogProductivity,
}

var catalogHollowCoreCmd = &cobra.Command{
	Use:   "hollowcore",
	Short: "List hollow-core products by width class, span and load",
	Run:   runCatalogHollowCore,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogProductivityCmd)
	catalogCmd.AddCommand(catalogHollowCoreCmd)
}

func runCatalogProductivity(cmd *cobra.Command, args []string) {
	engine, err := openEngine()
	if err != nil {
		fmt.Printf("Error loading engine: %v\n", err)
		return
	}
	rates := engine.Rates().Rates()
	if jsonOutput {
		printJSON(rates)
		return
	}

	fmt.Println()
	fmt.Println("PRODUCTIVITY RATES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Category\tManhours\tPer")
	for _, r := range rates {
		fmt.Fprintf(w, "  %s\t%g\t%s\n", r.Category, r.Manhour, r.Unit)
	}
	w.Flush()
	fmt.Println()
}

func runCatalogHollowCore(cmd *cobra.Command, args []string) {
	engine, err := openEngine()
	if err != nil {
		fmt.Printf("Error loading engine: %v\n", err)
		return
	}
	products := engine.Capacity().Products()
	if jsonOutput {
		printJSON(products)
		return
	}

	fmt.Println()
	fmt.Println("HOLLOW-CORE CATALOG:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Width (m)\tSpan (m)\tLoad (kN/m²)\tThickness (mm)")
	for _, p := range products {
		fmt.Fprintf(w, "  %.1f\t%g\t%g\t%.0f\n", p.WidthClass, p.Span, p.Load, float64(p.Thickness))
	}
	w.Flush()
	fmt.Println()
}
