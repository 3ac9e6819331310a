package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Khrischatyy/fieldhire-db/introspect"
	"github.com/Khrischatyy/fieldhire-db/runner"
)

var (
	historyLimit    int
	historyRevision string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show detailed migration history",
	Long: `Show migration history with timestamps, execution times, and user
information.

Examples:
  fhdb history                  # Show all migration history
  fhdb history --limit 10       # Show last 10 entries
  fhdb history --revision 2024  # Filter by revision substring
`,
	Run: func(cmd *cobra.Command, args []string) {
		db, err := introspect.Connect()
		if err != nil {
			fmt.Printf("❌ Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		defer db.Close(context.Background())

		history, err := runner.History(db, historyLimit, historyRevision)
		if err != nil {
			fmt.Printf("❌ Error getting migration history: %v\n", err)
			os.Exit(1)
		}

		if len(history) == 0 {
			fmt.Println("📋 No migration history found")
			return
		}

		showHistory(history)
	},
}

func showHistory(history []runner.Record) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Println("📋 Migration History")
	fmt.Println(strings.Repeat("=", 60))

	for i, r := range history {
		fmt.Printf("\n%d. ", i+1)

		if r.Status == "success" {
			green.Print("✅ ")
		} else {
			red.Print("❌ ")
		}

		fmt.Printf("%s", r.Revision)
		if r.Label != "" {
			fmt.Printf(" (%s)", r.Label)
		}
		fmt.Println()

		cyan.Printf("   🕒 %s", r.AppliedAt.Format("2006-01-02 15:04:05"))
		if r.ExecutionTime > 0 {
			cyan.Printf("  ⏱  %v", r.ExecutionTime)
		}
		if r.ExecutedBy != "" {
			cyan.Printf("  👤 %s", r.ExecutedBy)
		}
		fmt.Println()

		if r.ErrorMessage != "" {
			red.Printf("   📄 %s\n", r.ErrorMessage)
		}
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("📊 Showing %d record(s)\n", len(history))
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 0, "Limit number of records to show (0 = all)")
	historyCmd.Flags().StringVarP(&historyRevision, "revision", "r", "", "Filter by revision substring")
}
