package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darshoned/DfMA/internal/layout"
	"github.com/darshoned/DfMA/internal/report"
)

var (
	// Output options
	genShowDiagram bool
	genExportFile  string
	genXLSXFile    string
	genPDFFile     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Size the structure and estimate quantities for one building",
	Long: `Run the full pipeline for one building: column sizing, slab selection,
beam sizing, then quantities, equipment and manpower.

A hollow-core slab that has no product at the full span S1 is retried at
S1/2 and, if that succeeds, switched to its split-span variant with
midspan S3 beams.

Examples:
  # All cast-in-situ, 8 x 4 m grid, 60 x 30 m building
  dfma generate --s1 8 --s2 4 --live-load 3 -L 60 -W 30

  # Precast columns with 1.2 m hollow-core planks and a plan diagram
  dfma generate --s1 12 --s2 6 --live-load 5 -L 96 -W 48 \
    --column "PC Column" --slab "1.2HC Slab" --diagram -o plan.png

  # From a scenario file, with Excel and PDF reports
  dfma generate -f project.json --xlsx report.xlsx --pdf report.pdf`,
	Run: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addInputFlags(generateCmd)

	// Diagram and report options
	generateCmd.Flags().BoolVar(&genShowDiagram, "diagram", false, "Show ASCII plan view")
	generateCmd.Flags().StringVarP(&genExportFile, "output", "o", "", "Export plan view to file (png, svg, pdf)")
	generateCmd.Flags().StringVar(&genXLSXFile, "xlsx", "", "Write an Excel report")
	generateCmd.Flags().StringVar(&genPDFFile, "pdf", "", "Write a PDF summary")
}

func runGenerate(cmd *cobra.Command, args []string) {
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

	res, err := engine.Generate(context.Background(), in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if jsonOutput {
		printJSON(res)
	} else {
		report.Text(os.Stdout, res)
	}

	plan := layout.Build(res)
	if genShowDiagram {
		fmt.Print(layout.RenderASCII(plan, 100))
	}

	if genExportFile != "" {
		if err := layout.Export(plan, genExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("  Plan view exported to: %s\n", genExportFile)
		}
	}

	if genXLSXFile != "" {
		if err := report.SaveWorkbook(genXLSXFile, report.Items(res)); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("  Excel report written to: %s\n", genXLSXFile)
		}
	}

	if genPDFFile != "" {
		if err := report.SavePDF(genPDFFile, res); err != nil {
			fmt.Printf("Error writing PDF: %v\n", err)
		} else {
			fmt.Printf("  PDF summary written to: %s\n", genPDFFile)
		}
	}
}
