package migration

import (
	"errors"
	"strings"
	"testing"

	"github.com/Khrischatyy/fieldhire-db/migration/op"
	"github.com/Khrischatyy/fieldhire-db/schema"
)

func usersTable() op.CreateTable {
	return op.CreateTable{
		Table: "users",
		Columns: []schema.Column{
			{Name: "id", Type: "serial", Primary: true},
			{Name: "email", Type: "varchar(255)", NotNull: true},
		},
	}
}

func TestSimulateCreateAndDropTable(t *testing.T) {
	sim := NewSimSchema()

	if err := sim.Apply(usersTable()); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if got := sim.ColumnNames("users"); len(got) != 2 {
		t.Fatalf("expected 2 columns, got %v", got)
	}

	if err := sim.Apply(usersTable()); err == nil {
		t.Fatal("expected error creating existing table")
	}

	if err := sim.Apply(op.DropTable{Table: "users"}); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	if err := sim.Apply(op.DropTable{Table: "users"}); err == nil {
		t.Fatal("expected error dropping missing table")
	}
}

func TestSimulateColumnOperations(t *testing.T) {
	sim := NewSimSchema()
	if err := sim.Apply(usersTable()); err != nil {
		t.Fatalf("create table: %v", err)
	}

	add := op.AddColumn{Table: "users", Column: schema.Column{Name: "age", Type: "integer"}}
	if err := sim.Apply(add); err != nil {
		t.Fatalf("add column: %v", err)
	}
	if err := sim.Apply(add); err == nil {
		t.Fatal("expected error adding duplicate column")
	}

	if err := sim.Apply(op.RenameColumn{Table: "users", From: "age", To: "years"}); err != nil {
		t.Fatalf("rename column: %v", err)
	}
	if err := sim.Apply(op.RenameColumn{Table: "users", From: "age", To: "x"}); err == nil {
		t.Fatal("expected error renaming missing column")
	}
	if err := sim.Apply(op.RenameColumn{Table: "users", From: "years", To: "email"}); err == nil {
		t.Fatal("expected error renaming onto existing column")
	}

	if err := sim.Apply(op.SetDefault{Table: "users", Column: "years", Default: "0"}); err != nil {
		t.Fatalf("set default: %v", err)
	}
	if d := sim["users"].Columns["years"].Default; d == nil || *d != "0" {
		t.Fatalf("expected default 0, got %v", d)
	}
	if err := sim.Apply(op.DropDefault{Table: "users", Column: "years"}); err != nil {
		t.Fatalf("drop default: %v", err)
	}
	if d := sim["users"].Columns["years"].Default; d != nil {
		t.Fatalf("expected no default, got %q", *d)
	}

	if err := sim.Apply(op.DropColumn{Table: "users", Column: "years"}); err != nil {
		t.Fatalf("drop column: %v", err)
	}
	if err := sim.Apply(op.DropColumn{Table: "users", Column: "years"}); err == nil {
		t.Fatal("expected error dropping missing column")
	}
}

func TestSimulateOperationsRequireTable(t *testing.T) {
	sim := NewSimSchema()

	err := sim.Apply(op.AddColumn{Table: "nowhere", Column: schema.Column{Name: "x", Type: "text"}})
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing table error, got %v", err)
	}
}

func TestSimulateRawSQLIsUnsimulatable(t *testing.T) {
	sim := NewSimSchema()

	err := sim.Apply(op.RawSQL{Summary: "backfill", Stmts: []string{"UPDATE x SET y = 1;"}})
	if !errors.Is(err, ErrUnsimulatable) {
		t.Fatalf("expected ErrUnsimulatable, got %v", err)
	}
}

func TestUpgradeThenDowngradeRestoresStructure(t *testing.T) {
	up := []op.Operation{
		usersTable(),
		op.AddColumn{Table: "users", Column: schema.Column{Name: "age", Type: "integer"}},
		op.RenameColumn{Table: "users", From: "email", To: "mail"},
	}
	down := []op.Operation{
		op.RenameColumn{Table: "users", From: "mail", To: "email"},
		op.DropColumn{Table: "users", Column: "age"},
		op.DropTable{Table: "users"},
	}

	sim := NewSimSchema()
	before := sim.Clone()

	if err := sim.ApplyAll(up); err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if err := sim.ApplyAll(down); err != nil {
		t.Fatalf("downgrade: %v", err)
	}

	if !StructuralEqual(before, sim) {
		t.Fatalf("expected structure restored, got tables %v", sim.TableNames())
	}
}

func TestStructuralEqualDetectsColumnDifference(t *testing.T) {
	a := NewSimSchema()
	b := NewSimSchema()
	if err := a.Apply(usersTable()); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := b.Apply(usersTable()); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !StructuralEqual(a, b) {
		t.Fatal("expected equal schemas")
	}

	if err := b.Apply(op.AddColumn{Table: "users", Column: schema.Column{Name: "x", Type: "text"}}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if StructuralEqual(a, b) {
		t.Fatal("expected schemas to differ")
	}
}
