package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Khrischatyy/fieldhire-db/runner"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	Run: func(cmd *cobra.Command, args []string) {

		applied, pending, failed, err := runner.Status()
		if err != nil {
			fmt.Println("❌ Status error:", err)
			os.Exit(1)
		}

		green := color.New(color.FgGreen)
		yellow := color.New(color.FgYellow)
		red := color.New(color.FgRed)

		fmt.Println("✅ Applied migrations:")
		for _, rev := range applied {
			green.Printf("   - %s\n", rev)
		}

		if len(failed) > 0 {
			fmt.Println("\n❌ Failed migrations:")
			for _, r := range failed {
				red.Printf("   - %s: %s\n", r.Revision, r.ErrorMessage)
			}
		}

		fmt.Println("\n🕒 Pending migrations:")
		for _, rev := range pending {
			yellow.Printf("   - %s\n", rev)
		}
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the newest applied revision",
	Run: func(cmd *cobra.Command, args []string) {
		rev, err := runner.Current()
		if err != nil {
			fmt.Println("❌ Current error:", err)
			os.Exit(1)
		}
		if rev == "" {
			fmt.Println("🕒 No migrations applied yet.")
			return
		}
		fmt.Println("✅ Current revision:", rev)
	},
}
