package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Khrischatyy/fieldhire-db/drift"
	"github.com/Khrischatyy/fieldhire-db/introspect"
	"github.com/Khrischatyy/fieldhire-db/loader"
	"github.com/Khrischatyy/fieldhire-db/models"
	"github.com/Khrischatyy/fieldhire-db/schema"
)

var driftSchemaFile string

var driftCmd = &cobra.Command{
	Use:   "drift",
	Short: "Compare declared models against the live database",
	Long: `Compare the declared models against the live database schema and
report every difference. Read-only: drift never changes anything, it only
tells you the database and the models disagree.

By default the compiled-in struct models are the source of truth; pass
--schema to compare against a YAML schema file instead.

Examples:
  fhdb drift                       # Compare against struct models
  fhdb drift --schema schema.yaml  # Compare against a YAML definition
`,
	Run: func(cmd *cobra.Command, args []string) {
		declared, err := loadDeclaredTables()
		if err != nil {
			fmt.Println("❌ Loading declared tables:", err)
			os.Exit(1)
		}

		conn, err := introspect.Connect()
		if err != nil {
			fmt.Printf("❌ Error connecting to database: %v\n", err)
			os.Exit(1)
		}
		ctx := context.Background()
		defer conn.Close(ctx)

		live, err := introspect.Tables(ctx, conn)
		if err != nil {
			fmt.Println("❌ Introspecting database:", err)
			os.Exit(1)
		}

		findings := drift.Compare(declared, live)
		if len(findings) == 0 {
			fmt.Println("✅ No drift: database matches the declared models.")
			return
		}

		red := color.New(color.FgRed)
		fmt.Printf("❌ Found %d difference(s):\n", len(findings))
		for _, f := range findings {
			red.Printf("   - %s\n", f)
		}
		os.Exit(1)
	},
}

func loadDeclaredTables() ([]schema.Table, error) {
	if driftSchemaFile != "" {
		return loader.LoadTablesFromYAML(driftSchemaFile)
	}
	return models.Tables()
}

func init() {
	driftCmd.Flags().StringVarP(&driftSchemaFile, "schema", "f", "", "YAML schema file to compare instead of struct models")
}
