package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Khrischatyy/fieldhire-db/runner"
)

var (
	steps          int
	rollbackTarget string
)

func init() {
	rollbackCmd.Flags().IntVarP(&steps, "steps", "s", 1, "Number of migrations to rollback")
	rollbackCmd.Flags().StringVar(&rollbackTarget, "to", "", "Rollback until this revision is the newest applied one")
}

var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Rollback migrations",
	Long: `Rollback the last migration or multiple migrations.

Examples:
  fhdb rollback                      # Rollback the last migration
  fhdb rollback --steps=3            # Rollback the last 3 migrations
  fhdb rollback --to 20240318094500  # Rollback down to a revision
`,
	Run: func(cmd *cobra.Command, args []string) {
		if rollbackTarget != "" {
			if err := runner.DowngradeTo(rollbackTarget); err != nil {
				fmt.Println("❌ Rollback failed:", err)
				os.Exit(1)
			}
			return
		}

		if steps < 1 {
			fmt.Println("❌ Steps must be at least 1")
			os.Exit(1)
		}

		if err := runner.Downgrade(steps); err != nil {
			fmt.Println("❌ Rollback failed:", err)
			os.Exit(1)
		}
	},
}
