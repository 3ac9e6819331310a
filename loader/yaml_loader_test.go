package loader

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
tables:
  - name: badges
    columns:
      - name: id
        type: serial
        primary: true
      - name: name
        type: varchar(100)
        notnull: true
        unique: true
  - name: address_badge
    primary_key: [address_id, badge_id]
    columns:
      - name: address_id
        type: integer
        notnull: true
        references: addresses.id
        ondelete: CASCADE
      - name: badge_id
        type: integer
        notnull: true
        references: badges.id
        ondelete: CASCADE
`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write schema file: %v", err)
	}
	return path
}

func TestLoadTablesFromYAML(t *testing.T) {
	tables, err := LoadTablesFromYAML(writeSchema(t, sampleYAML))
	if err != nil {
		t.Fatalf("LoadTablesFromYAML: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}

	badges := tables[0]
	if badges.Name != "badges" || len(badges.Columns) != 2 {
		t.Fatalf("unexpected badges table %+v", badges)
	}
	name := badges.Column("name")
	if name == nil || !name.NotNull || !name.Unique {
		t.Errorf("unexpected name column %+v", name)
	}

	ab := tables[1]
	if len(ab.PrimaryKey) != 2 || ab.PrimaryKey[0] != "address_id" {
		t.Errorf("unexpected composite key %v", ab.PrimaryKey)
	}
	addr := ab.Column("address_id")
	if addr == nil || addr.ForeignKey == nil {
		t.Fatalf("expected foreign key on address_id, got %+v", addr)
	}
	if addr.ForeignKey.ReferencesTable != "addresses" || addr.ForeignKey.OnDelete != "CASCADE" {
		t.Errorf("unexpected foreign key %+v", addr.ForeignKey)
	}
}

func TestLoadTablesRejectsBadReference(t *testing.T) {
	bad := `
tables:
  - name: t
    columns:
      - name: x
        type: integer
        references: nodot
`
	_, err := LoadTablesFromYAML(writeSchema(t, bad))
	if err == nil {
		t.Fatal("expected invalid references error")
	}
}

func TestLoadTablesMissingFile(t *testing.T) {
	_, err := LoadTablesFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
