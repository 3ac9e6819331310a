package migrations

import (
	"errors"
	"strings"
	"testing"

	"github.com/Khrischatyy/fieldhire-db/migration"
	"github.com/Khrischatyy/fieldhire-db/models"
)

var wantOrder = []string{
	"20240301120000",
	"20240318094500",
	"20240402101500",
	"20240419160000",
	"20240507083000",
	"20240522143000",
}

func TestChainLinksAndOrders(t *testing.T) {
	chain, err := Chain()
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}

	ordered := chain.Ordered()
	if len(ordered) != len(wantOrder) {
		t.Fatalf("expected %d migrations, got %d", len(wantOrder), len(ordered))
	}
	for i, rev := range wantOrder {
		if ordered[i].Revision != rev {
			t.Errorf("position %d: expected %s, got %s", i, rev, ordered[i].Revision)
		}
	}
	if chain.Head().Revision != "20240522143000" {
		t.Errorf("unexpected head %s", chain.Head().Revision)
	}
}

func TestChargeStatusIsTwoStep(t *testing.T) {
	chain, err := Chain()
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}

	m := chain.Get("20240402101500")
	if m == nil {
		t.Fatal("charge status migration not registered")
	}

	stmts, err := m.UpSQL()
	if err != nil {
		t.Fatalf("UpSQL: %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(stmts), stmts)
	}
	if !strings.Contains(stmts[0], `ADD COLUMN "status" varchar(20) NOT NULL DEFAULT 'pending'`) {
		t.Errorf("first statement must add the column with the backfill default, got %q", stmts[0])
	}
	if !strings.Contains(stmts[1], `ALTER COLUMN "status" DROP DEFAULT`) {
		t.Errorf("second statement must strip the default, got %q", stmts[1])
	}
}

func TestPasswordRenameRoundTrips(t *testing.T) {
	chain, err := Chain()
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}

	// Build the schema up to the rename's predecessor.
	sim := migration.NewSimSchema()
	path, err := chain.PathTo("20240301120000")
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	for _, m := range path {
		if err := sim.ApplyAll(m.Up); err != nil {
			t.Fatalf("apply %s: %v", m.Revision, err)
		}
	}

	rename := chain.Get("20240318094500")
	if err := sim.ApplyAll(rename.Up); err != nil {
		t.Fatalf("apply rename: %v", err)
	}
	if sim["users"].Columns["hashed_password"].Name != "hashed_password" {
		t.Fatal("expected hashed_password after upgrade")
	}
	if _, exists := sim["users"].Columns["password"]; exists {
		t.Fatal("password should be gone after upgrade")
	}

	if err := sim.ApplyAll(rename.Down); err != nil {
		t.Fatalf("apply rename downgrade: %v", err)
	}
	if _, exists := sim["users"].Columns["password"]; !exists {
		t.Fatal("expected password restored after downgrade")
	}
}

func TestStructuredMigrationsAreStructurallyReversible(t *testing.T) {
	chain, err := Chain()
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}

	sim := migration.NewSimSchema()
	for _, m := range chain.Ordered() {
		before := sim.Clone()

		if err := sim.ApplyAll(m.Up); err != nil {
			if errors.Is(err, migration.ErrUnsimulatable) {
				// Raw migrations are exempt from simulation.
				continue
			}
			t.Fatalf("apply %s: %v", m.Revision, err)
		}

		down := sim.Clone()
		if err := down.ApplyAll(m.Down); err != nil {
			t.Fatalf("downgrade %s: %v", m.Revision, err)
		}
		if !migration.StructuralEqual(before, down) {
			t.Errorf("%s: downgrade does not restore the prior structure", m.Revision)
		}
	}
}

// The struct models declare the head-of-chain schema. Simulating the chain
// must land on the same tables and columns, except for photo timestamps,
// which the raw migration adds outside the simulator's reach.
func TestModelsMatchSimulatedHead(t *testing.T) {
	chain, err := Chain()
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}

	sim := migration.NewSimSchema()
	for _, m := range chain.Ordered() {
		if err := sim.ApplyAll(m.Up); err != nil {
			if errors.Is(err, migration.ErrUnsimulatable) {
				continue
			}
			t.Fatalf("apply %s: %v", m.Revision, err)
		}
	}

	rawAdded := map[string]map[string]bool{
		"photos": {"created_at": true, "updated_at": true},
	}

	tables, err := models.Tables()
	if err != nil {
		t.Fatalf("models.Tables: %v", err)
	}
	if len(tables) != len(sim) {
		t.Fatalf("models declare %d tables, chain produces %d (%v)", len(tables), len(sim), sim.TableNames())
	}

	for _, table := range tables {
		simCols := sim.ColumnNames(table.Name)
		if simCols == nil {
			t.Errorf("model table %s never created by the chain", table.Name)
			continue
		}

		declared := map[string]bool{}
		for _, c := range table.Columns {
			declared[c.Name] = true
		}

		for _, col := range simCols {
			if !declared[col] {
				t.Errorf("chain creates %s.%s but no model declares it", table.Name, col)
			}
		}
		for col := range declared {
			if !contains(simCols, col) && !rawAdded[table.Name][col] {
				t.Errorf("model declares %s.%s but the chain never creates it", table.Name, col)
			}
		}
	}
}

func TestChecksumIsStable(t *testing.T) {
	chain, err := Chain()
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}

	m := chain.Root()
	first, err := migration.Checksum(m)
	if err != nil {
		t.Fatalf("Checksum: %v", err)
	}
	second, err := migration.Checksum(m)
	if err != nil {
		t.Fatalf("Checksum: %v", err)
	}
	if first != second || len(first) != 64 {
		t.Fatalf("expected stable sha256 checksum, got %q and %q", first, second)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
