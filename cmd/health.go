package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Khrischatyy/fieldhire-db/database"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database connectivity",
	Long: `Check if the database is accessible and responsive.

Examples:
  fhdb health                    # Check default database connection
  fhdb health --timeout 10s      # Set custom timeout
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkDatabaseHealth(); err != nil {
			fmt.Printf("❌ Database health check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Database is healthy and accessible")
	},
}

var healthTimeout time.Duration

func init() {
	healthCmd.Flags().DurationVarP(&healthTimeout, "timeout", "t", 5*time.Second, "Timeout for health check")
}

func checkDatabaseHealth() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	pool, err := database.GetPool()
	if err != nil {
		return fmt.Errorf("failed to get database pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	// A missing schema_revisions table just means nothing has been applied.
	var tableExists bool
	query := `SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_name = 'schema_revisions'
	)`

	if err := pool.QueryRow(ctx, query).Scan(&tableExists); err != nil {
		return fmt.Errorf("failed to check schema_revisions table: %v", err)
	}

	if !tableExists {
		fmt.Println("⚠️  Database is accessible but schema_revisions table not found")
		fmt.Println("   Run 'fhdb migrate' to set it up and apply the chain")
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM schema_revisions WHERE status = 'success'").Scan(&count); err != nil {
		return fmt.Errorf("failed to count applied revisions: %v", err)
	}

	fmt.Printf("📊 Found %d applied migrations\n", count)

	return nil
}
