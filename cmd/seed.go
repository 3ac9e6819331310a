package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Khrischatyy/fieldhire-db/database"
	"github.com/Khrischatyy/fieldhire-db/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert reference data",
	Long: `Insert the fixed reference rows (booking statuses). Each seeder
skips itself when any row of its kind already exists, so re-running is
safe.

Examples:
  fhdb seed
`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		conn, err := database.Connect(ctx)
		if err != nil {
			fmt.Println("❌ Seed failed:", err)
			os.Exit(1)
		}
		defer conn.Close(ctx)

		if err := seed.Run(ctx, conn, seed.All()...); err != nil {
			fmt.Println("❌ Seed failed:", err)
			os.Exit(1)
		}

		fmt.Println("✅ Seeding completed.")
	},
}
