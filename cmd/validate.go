package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Khrischatyy/fieldhire-db/migration"
	"github.com/Khrischatyy/fieldhire-db/migrations"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the migration chain offline",
	Long: `Validate the migration chain without touching a database.

This command checks:
- revision uniqueness and predecessor linkage (single root, no branches,
  no cycles, one head)
- that every structured operation applies cleanly when the chain is
  simulated in order from an empty schema
- that simulating upgrade then downgrade of each migration restores the
  structural state (raw-SQL migrations are reported as unsimulatable)

Examples:
  fhdb validate
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := validateChain(); err != nil {
			fmt.Printf("❌ Chain validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func validateChain() error {
	yellow := color.New(color.FgYellow)

	chain, err := migrations.Chain()
	if err != nil {
		return err
	}

	ordered := chain.Ordered()
	fmt.Printf("🔗 Chain OK: %d migrations, root %s, head %s\n",
		len(ordered), chain.Root().Revision, chain.Head().Revision)

	// Walk the chain from an empty schema, checking each migration both
	// forward and for structural reversibility before moving on.
	sim := migration.NewSimSchema()
	unsimulatable := 0
	for _, m := range ordered {
		before := sim.Clone()

		if err := sim.ApplyAll(m.Up); err != nil {
			if errors.Is(err, migration.ErrUnsimulatable) {
				yellow.Printf("⚠️  %s: %v (skipping simulation)\n", m.Revision, err)
				unsimulatable++
				continue
			}
			return fmt.Errorf("%s does not apply: %v", m.Revision, err)
		}

		down := sim.Clone()
		if err := down.ApplyAll(m.Down); err != nil {
			if errors.Is(err, migration.ErrUnsimulatable) {
				yellow.Printf("⚠️  %s: downgrade is raw SQL, reversibility unchecked\n", m.Revision)
				continue
			}
			return fmt.Errorf("%s downgrade does not apply: %v", m.Revision, err)
		}
		if !migration.StructuralEqual(before, down) {
			return fmt.Errorf("%s downgrade does not restore the prior structure", m.Revision)
		}
	}

	if unsimulatable > 0 {
		fmt.Printf("⚠️  %d migration(s) use raw SQL and were not simulated\n", unsimulatable)
	}
	fmt.Println("✅ Chain validation passed")
	return nil
}
