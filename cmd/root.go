package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fhdb",
	Short: "Schema migrations and reference data for the fieldhire platform",
	Long: `fhdb manages the fieldhire database: revision-chained schema
migrations, reference-data seeding, and drift checks against the declared
models.

Examples:

  fhdb migrate
  fhdb status
  fhdb seed
`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rollbackCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(driftCmd)
	rootCmd.AddCommand(healthCmd)
}
