package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/darshoned/DfMA/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dfma",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("DfMA Building Scheme Generator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
