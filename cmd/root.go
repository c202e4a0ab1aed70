package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darshoned/DfMA/internal/config"
	"github.com/darshoned/DfMA/internal/logging"
	"github.com/darshoned/DfMA/internal/planner"
	"github.com/darshoned/DfMA/internal/version"
)

var (
	// Persistent options, layered over the environment
	profileName      string
	profileFile      string
	productivityFile string
	catalogFile      string
	logLevel         string
	jsonOutput       bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dfma",
	Short: "DfMA building scheme generator",
	Long: `dfma - Design for Manufacture and Assembly scheme generator

Sizes the structural members of a multi-storey building from its grid,
loading and chosen structural systems, then estimates the construction
resources it needs:
  - Column, slab and beam sizing (CIS, PT and precast hollow-core systems)
  - Material quantities, equipment and delivery counts
  - Trade manhours, mandays, productivity and the crane floor cycle

Formula constants come from a named profile (baseline, revised) or a YAML
profile file; productivity rates and the hollow-core catalog are built in
and may be replaced by CSV or XLSX tables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Flags win over the environment
		flags := cmd.Flags()
		if flags.Changed("profile") {
			cfg.Profile = profileName
		}
		if flags.Changed("profile-file") {
			cfg.ProfileFile = profileFile
		}
		if flags.Changed("productivity") {
			cfg.ProductivityFile = productivityFile
		}
		if flags.Changed("catalog") {
			cfg.CatalogFile = catalogFile
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevel
		}

		logging.Setup(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   dfma v%-50s║\n", version.Version)
		fmt.Println("  ║   DfMA Building Scheme Generator                          ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Sizes columns, slabs and beams for a building grid and")
		fmt.Println("  estimates its construction quantities and manpower.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Column sizing from the storey axial load")
		fmt.Println("    • CIS, post-tensioned and hollow-core slab selection")
		fmt.Println("    • Beam sizing on both grid directions")
		fmt.Println("    • Equipment, delivery and manpower estimates")
		fmt.Println("    • Plan view diagrams, Excel and PDF reports, HTTP API")
		fmt.Println()
		fmt.Println("  Use 'dfma --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&profileName, "profile", "baseline", "Built-in formula profile (baseline, revised)")
	pf.StringVar(&profileFile, "profile-file", "", "YAML profile file (overrides --profile)")
	pf.StringVar(&productivityFile, "productivity", "", "Productivity table (.csv or .xlsx)")
	pf.StringVar(&catalogFile, "catalog", "", "Hollow-core catalog (.csv or .xlsx)")
	pf.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}

// openEngine loads the profile and tables selected by flags and environment.
func openEngine() (*planner.Engine, error) {
	return planner.Open(planner.Sources{
		Profile:      cfg.Profile,
		ProfileFile:  cfg.ProfileFile,
		Productivity: cfg.ProductivityFile,
		Catalog:      cfg.CatalogFile,
	})
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Printf("Error encoding JSON: %v\n", err)
	}
}
