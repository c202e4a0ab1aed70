package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darshoned/DfMA/internal/planner"
	"github.com/darshoned/DfMA/internal/report"
)

var (
	batchFile    string
	batchOutFile string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run many scenarios from a workbook",
	Long: `Read one scenario per row from the first sheet of an Excel workbook and
run them concurrently. A failing row is reported and does not stop the
others.

Header columns: name, s1, s2, live_load, length, width, floor_height,
dead_load, column, beam, slab (name, floor_height and dead_load may be blank).

Examples:
  dfma batch --file scenarios.xlsx
  dfma batch --file scenarios.xlsx --out results.xlsx --workers 4`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Scenario workbook (.xlsx) [required]")
	batchCmd.Flags().StringVar(&batchOutFile, "out", "", "Write the results workbook")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent scenarios (default DFMA_WORKERS or GOMAXPROCS)")

	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) {
	f, err := os.Open(batchFile)
	if err != nil {
		fmt.Printf("Error opening scenarios: %v\n", err)
		return
	}
	inputs, err := planner.ReadScenariosXLSX(f)
	f.Close()
	if err != nil {
		fmt.Printf("Error reading scenarios: %v\n", err)
		return
	}

	engine, err := openEngine()
	if err != nil {
		fmt.Printf("Error loading engine: %v\n", err)
		return
	}

	workers := batchWorkers
	if !cmd.Flags().Changed("workers") {
		workers = cfg.Workers
	}
	items, err := engine.GenerateBatch(context.Background(), inputs, workers)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if jsonOutput {
		printJSON(items)
	} else {
		report.Batch(os.Stdout, items)
	}

	if batchOutFile != "" {
		if err := report.SaveWorkbook(batchOutFile, items); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("  Results written to: %s\n", batchOutFile)
		}
	}
}
