package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Khrischatyy/fieldhire-db/runner"
)

var (
	dryRunMigrate bool
	migrateTarget string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations",
	Long: `Apply pending migrations up the chain.

Examples:
  fhdb migrate                       # Apply everything up to the head
  fhdb migrate --to 20240402101500   # Stop at a specific revision
  fhdb migrate --dry-run             # Preview SQL without applying
`,
	Run: func(cmd *cobra.Command, args []string) {

		if dryRunMigrate {
			if err := runner.Preview(migrateTarget); err != nil {
				fmt.Println("❌ Dry run failed:", err)
				os.Exit(1)
			}
			return
		}

		if err := runner.Upgrade(migrateTarget); err != nil {
			fmt.Println("❌ Migration failed:", err)
			os.Exit(1)
		}
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&dryRunMigrate, "dry-run", false, "Preview the SQL that would be executed without applying migrations")
	migrateCmd.Flags().StringVar(&migrateTarget, "to", "", "Target revision (default: chain head)")
}
