package migration

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Khrischatyy/fieldhire-db/migration/op"
	"github.com/Khrischatyy/fieldhire-db/schema"
)

// ErrUnsimulatable marks operations (RawSQL) whose structural effect the
// simulator cannot derive. Chain validation reports them instead of
// guessing.
var ErrUnsimulatable = errors.New("operation cannot be simulated")

// SimSchema is an in-memory table/column model used to dry-run a chain
// without a database: it catches duplicate columns, missing tables, and
// lets tests check that up-then-down restores the structural state.
type SimSchema map[string]*SimTable

type SimTable struct {
	Columns    map[string]schema.Column
	PrimaryKey []string
}

func NewSimSchema() SimSchema {
	return SimSchema{}
}

// Apply mutates the schema by one operation, mirroring the failure modes a
// live database would produce (duplicate column, missing table, and so on).
func (s SimSchema) Apply(o op.Operation) error {
	switch o := o.(type) {
	case op.CreateTable:
		if _, exists := s[o.Table]; exists {
			return fmt.Errorf("create table %s: already exists", o.Table)
		}
		t := &SimTable{Columns: map[string]schema.Column{}, PrimaryKey: o.PrimaryKey}
		for _, col := range o.Columns {
			if _, dup := t.Columns[col.Name]; dup {
				return fmt.Errorf("create table %s: duplicate column %s", o.Table, col.Name)
			}
			t.Columns[col.Name] = col
		}
		s[o.Table] = t

	case op.DropTable:
		if _, exists := s[o.Table]; !exists {
			return fmt.Errorf("drop table %s: does not exist", o.Table)
		}
		delete(s, o.Table)

	case op.AddColumn:
		t, err := s.table(o.Table)
		if err != nil {
			return err
		}
		if _, dup := t.Columns[o.Column.Name]; dup {
			return fmt.Errorf("add column %s.%s: already exists", o.Table, o.Column.Name)
		}
		t.Columns[o.Column.Name] = o.Column

	case op.DropColumn:
		t, err := s.table(o.Table)
		if err != nil {
			return err
		}
		if _, exists := t.Columns[o.Column]; !exists {
			return fmt.Errorf("drop column %s.%s: does not exist", o.Table, o.Column)
		}
		delete(t.Columns, o.Column)

	case op.RenameColumn:
		t, err := s.table(o.Table)
		if err != nil {
			return err
		}
		col, exists := t.Columns[o.From]
		if !exists {
			return fmt.Errorf("rename column %s.%s: does not exist", o.Table, o.From)
		}
		if _, taken := t.Columns[o.To]; taken {
			return fmt.Errorf("rename column %s.%s to %s: target exists", o.Table, o.From, o.To)
		}
		delete(t.Columns, o.From)
		col.Name = o.To
		t.Columns[o.To] = col

	case op.SetDefault:
		t, err := s.table(o.Table)
		if err != nil {
			return err
		}
		col, exists := t.Columns[o.Column]
		if !exists {
			return fmt.Errorf("set default %s.%s: column does not exist", o.Table, o.Column)
		}
		d := o.Default
		col.Default = &d
		t.Columns[o.Column] = col

	case op.DropDefault:
		t, err := s.table(o.Table)
		if err != nil {
			return err
		}
		col, exists := t.Columns[o.Column]
		if !exists {
			return fmt.Errorf("drop default %s.%s: column does not exist", o.Table, o.Column)
		}
		col.Default = nil
		t.Columns[o.Column] = col

	case op.RawSQL:
		return fmt.Errorf("%s: %w", o.Describe(), ErrUnsimulatable)

	default:
		return fmt.Errorf("unknown operation %T", o)
	}
	return nil
}

// ApplyAll applies operations in order, stopping at the first failure.
func (s SimSchema) ApplyAll(ops []op.Operation) error {
	for _, o := range ops {
		if err := s.Apply(o); err != nil {
			return err
		}
	}
	return nil
}

func (s SimSchema) table(name string) (*SimTable, error) {
	t, exists := s[name]
	if !exists {
		return nil, fmt.Errorf("table %s does not exist", name)
	}
	return t, nil
}

// Clone deep-copies the schema so a simulation can be compared against its
// starting point.
func (s SimSchema) Clone() SimSchema {
	out := SimSchema{}
	for name, t := range s {
		cols := make(map[string]schema.Column, len(t.Columns))
		for n, c := range t.Columns {
			cols[n] = c
		}
		pk := make([]string, len(t.PrimaryKey))
		copy(pk, t.PrimaryKey)
		out[name] = &SimTable{Columns: cols, PrimaryKey: pk}
	}
	return out
}

// TableNames returns the sorted table names.
func (s SimSchema) TableNames() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ColumnNames returns the sorted column names of a table, or nil when the
// table does not exist.
func (s SimSchema) ColumnNames(table string) []string {
	t, exists := s[table]
	if !exists {
		return nil
	}
	names := make([]string, 0, len(t.Columns))
	for n := range t.Columns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// StructuralEqual reports whether two schemas have the same tables and
// column sets. Column attributes beyond the name are ignored: downgrades
// are only required to restore structure, not data or exact defaults.
func StructuralEqual(a, b SimSchema) bool {
	if len(a) != len(b) {
		return false
	}
	for name := range a {
		bt, exists := b[name]
		if !exists {
			return false
		}
		at := a[name]
		if len(at.Columns) != len(bt.Columns) {
			return false
		}
		for col := range at.Columns {
			if _, exists := bt.Columns[col]; !exists {
				return false
			}
		}
	}
	return true
}
