// Package op defines the structured operation vocabulary migrations are
// written in. Every operation renders deterministic PostgreSQL statements,
// which keeps dry-run previews and in-memory chain simulation possible.
// RawSQL is the escape hatch for what the vocabulary cannot express.
package op

import (
	"fmt"
	"strings"

	"github.com/Khrischatyy/fieldhire-db/schema"
)

// Operation is a single forward or inverse schema change.
type Operation interface {
	// Statements renders the operation as one or more SQL statements.
	Statements() ([]string, error)
	// Describe summarizes the operation for previews and activity logs.
	Describe() string
}

type CreateTable struct {
	Table      string
	Columns    []schema.Column
	PrimaryKey []string // composite key; leave empty when one column is Primary
}

func (o CreateTable) Statements() ([]string, error) {
	if o.Table == "" {
		return nil, fmt.Errorf("create table: missing table name")
	}
	if len(o.Columns) == 0 {
		return nil, fmt.Errorf("create table %s: no columns", o.Table)
	}

	var defs []string
	for _, col := range o.Columns {
		def, err := columnDef(col, len(o.PrimaryKey) == 0)
		if err != nil {
			return nil, fmt.Errorf("create table %s: %v", o.Table, err)
		}
		defs = append(defs, "  "+def)
	}

	if len(o.PrimaryKey) > 0 {
		defs = append(defs, fmt.Sprintf("  PRIMARY KEY (%s)", quoteList(o.PrimaryKey)))
	}

	stmt := fmt.Sprintf("CREATE TABLE \"%s\" (\n%s\n);", o.Table, strings.Join(defs, ",\n"))
	return []string{stmt}, nil
}

func (o CreateTable) Describe() string {
	return fmt.Sprintf("create table %s", o.Table)
}

type DropTable struct {
	Table string
}

func (o DropTable) Statements() ([]string, error) {
	if o.Table == "" {
		return nil, fmt.Errorf("drop table: missing table name")
	}
	return []string{fmt.Sprintf(`DROP TABLE "%s";`, o.Table)}, nil
}

func (o DropTable) Describe() string {
	return fmt.Sprintf("drop table %s", o.Table)
}

type AddColumn struct {
	Table  string
	Column schema.Column
}

func (o AddColumn) Statements() ([]string, error) {
	if o.Table == "" || o.Column.Name == "" {
		return nil, fmt.Errorf("add column: missing table or column name")
	}
	def, err := columnDef(o.Column, false)
	if err != nil {
		return nil, fmt.Errorf("add column %s.%s: %v", o.Table, o.Column.Name, err)
	}
	return []string{fmt.Sprintf(`ALTER TABLE "%s" ADD COLUMN %s;`, o.Table, def)}, nil
}

func (o AddColumn) Describe() string {
	return fmt.Sprintf("add column %s.%s", o.Table, o.Column.Name)
}

type DropColumn struct {
	Table  string
	Column string
}

func (o DropColumn) Statements() ([]string, error) {
	if o.Table == "" || o.Column == "" {
		return nil, fmt.Errorf("drop column: missing table or column name")
	}
	return []string{fmt.Sprintf(`ALTER TABLE "%s" DROP COLUMN "%s";`, o.Table, o.Column)}, nil
}

func (o DropColumn) Describe() string {
	return fmt.Sprintf("drop column %s.%s", o.Table, o.Column)
}

type RenameColumn struct {
	Table string
	From  string
	To    string
}

func (o RenameColumn) Statements() ([]string, error) {
	if o.Table == "" || o.From == "" || o.To == "" {
		return nil, fmt.Errorf("rename column: missing table or column name")
	}
	return []string{fmt.Sprintf(`ALTER TABLE "%s" RENAME COLUMN "%s" TO "%s";`,
		o.Table, o.From, o.To)}, nil
}

func (o RenameColumn) Describe() string {
	return fmt.Sprintf("rename column %s.%s to %s", o.Table, o.From, o.To)
}

// SetDefault attaches a default expression to an existing column.
type SetDefault struct {
	Table   string
	Column  string
	Default string
}

func (o SetDefault) Statements() ([]string, error) {
	if o.Table == "" || o.Column == "" || o.Default == "" {
		return nil, fmt.Errorf("set default: missing table, column, or default")
	}
	return []string{fmt.Sprintf(`ALTER TABLE "%s" ALTER COLUMN "%s" SET DEFAULT %s;`,
		o.Table, o.Column, o.Default)}, nil
}

func (o SetDefault) Describe() string {
	return fmt.Sprintf("set default on %s.%s", o.Table, o.Column)
}

// DropDefault strips a column's default so future inserts must supply the
// value explicitly.
type DropDefault struct {
	Table  string
	Column string
}

func (o DropDefault) Statements() ([]string, error) {
	if o.Table == "" || o.Column == "" {
		return nil, fmt.Errorf("drop default: missing table or column name")
	}
	return []string{fmt.Sprintf(`ALTER TABLE "%s" ALTER COLUMN "%s" DROP DEFAULT;`,
		o.Table, o.Column)}, nil
}

func (o DropDefault) Describe() string {
	return fmt.Sprintf("drop default on %s.%s", o.Table, o.Column)
}

// RawSQL runs free-form statements. It cannot be simulated, so chain
// simulation reports it instead of guessing at its structural effect.
type RawSQL struct {
	Summary string
	Stmts   []string
}

func (o RawSQL) Statements() ([]string, error) {
	if len(o.Stmts) == 0 {
		return nil, fmt.Errorf("raw sql: no statements")
	}
	return o.Stmts, nil
}

func (o RawSQL) Describe() string {
	if o.Summary != "" {
		return o.Summary
	}
	return fmt.Sprintf("raw sql (%d statements)", len(o.Stmts))
}

// columnDef renders a single column definition. inlinePK controls whether
// a Primary column gets PRIMARY KEY inline; composite keys are rendered as
// a table constraint by CreateTable instead.
func columnDef(col schema.Column, inlinePK bool) (string, error) {
	if col.Type == "" {
		return "", fmt.Errorf("column %s has no type", col.Name)
	}

	def := fmt.Sprintf(`"%s" %s`, col.Name, col.Type)
	if col.Primary && inlinePK {
		def += " PRIMARY KEY"
	}
	if col.NotNull && !(col.Primary && inlinePK) {
		def += " NOT NULL"
	}
	if col.Default != nil {
		def += fmt.Sprintf(" DEFAULT %s", *col.Default)
	}
	if col.Unique {
		def += " UNIQUE"
	}
	if col.ForeignKey != nil {
		def += fmt.Sprintf(` REFERENCES "%s"("%s")`,
			col.ForeignKey.ReferencesTable, col.ForeignKey.ReferencesColumn)
		if col.ForeignKey.OnDelete != "" {
			def += " ON DELETE " + col.ForeignKey.OnDelete
		}
		if col.ForeignKey.OnUpdate != "" {
			def += " ON UPDATE " + col.ForeignKey.OnUpdate
		}
	}
	return def, nil
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf(`"%s"`, n)
	}
	return strings.Join(quoted, ", ")
}
