package schema

import (
	"strings"
	"testing"
)

type widget struct {
	ID      int32   `db:"id,type:serial,primary"`
	Label   string  `db:"label,type:varchar(100),notnull,unique"`
	OwnerID int32   `db:"owner_id,type:integer,notnull,references:users.id,ondelete:CASCADE"`
	Note    *string `db:"note,type:text"`
	Skipped string
	Omitted string `db:"-"`
}

func (widget) TableName() string { return "widgets" }

func TestFromStructsParsesTags(t *testing.T) {
	tables, err := FromStructs(widget{})
	if err != nil {
		t.Fatalf("FromStructs: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}

	table := tables[0]
	if table.Name != "widgets" {
		t.Errorf("expected table widgets, got %s", table.Name)
	}
	if len(table.Columns) != 4 {
		t.Fatalf("expected 4 columns (untagged skipped), got %d", len(table.Columns))
	}

	id := table.Column("id")
	if id == nil || !id.Primary || id.Type != "serial" {
		t.Errorf("unexpected id column %+v", id)
	}

	label := table.Column("label")
	if label == nil || !label.NotNull || !label.Unique || label.Type != "varchar(100)" {
		t.Errorf("unexpected label column %+v", label)
	}

	owner := table.Column("owner_id")
	if owner == nil || owner.ForeignKey == nil {
		t.Fatalf("expected foreign key on owner_id, got %+v", owner)
	}
	if owner.ForeignKey.ReferencesTable != "users" ||
		owner.ForeignKey.ReferencesColumn != "id" ||
		owner.ForeignKey.OnDelete != "CASCADE" {
		t.Errorf("unexpected foreign key %+v", owner.ForeignKey)
	}

	note := table.Column("note")
	if note == nil || note.NotNull || note.Type != "text" {
		t.Errorf("unexpected note column %+v", note)
	}

	pk := table.PrimaryKeyColumns()
	if len(pk) != 1 || pk[0] != "id" {
		t.Errorf("unexpected primary key %v", pk)
	}
}

type pair struct {
	A int32 `db:"a,type:integer,primary,notnull"`
	B int32 `db:"b,type:integer,primary,notnull"`
}

func (pair) TableName() string { return "pairs" }

func TestFromStructsCompositePrimaryKey(t *testing.T) {
	tables, err := FromStructs(pair{})
	if err != nil {
		t.Fatalf("FromStructs: %v", err)
	}

	pk := tables[0].PrimaryKey
	if len(pk) != 2 || pk[0] != "a" || pk[1] != "b" {
		t.Errorf("expected composite key [a b], got %v", pk)
	}
}

type untyped struct {
	X string `db:"x"`
}

func (untyped) TableName() string { return "untyped" }

func TestFromStructsRejectsMissingType(t *testing.T) {
	_, err := FromStructs(untyped{})
	if err == nil || !strings.Contains(err.Error(), "no type") {
		t.Fatalf("expected missing type error, got %v", err)
	}
}

type badTag struct {
	X string `db:"x,type:text,wat"`
}

func (badTag) TableName() string { return "bad" }

func TestFromStructsRejectsUnknownOption(t *testing.T) {
	_, err := FromStructs(badTag{})
	if err == nil || !strings.Contains(err.Error(), "unknown tag option") {
		t.Fatalf("expected unknown option error, got %v", err)
	}
}

type orphanAction struct {
	X int32 `db:"x,type:integer,ondelete:CASCADE"`
}

func (orphanAction) TableName() string { return "orphans" }

func TestFromStructsRejectsActionWithoutReference(t *testing.T) {
	_, err := FromStructs(orphanAction{})
	if err == nil || !strings.Contains(err.Error(), "without references") {
		t.Fatalf("expected orphan action error, got %v", err)
	}
}
