package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Tabler names the table a model struct maps to.
type Tabler interface {
	TableName() string
}

// FromStructs reflects model structs into Table metadata.
//
// Each struct must implement Tabler and tag its fields with a `db` tag:
//
//	ID    int32  `db:"id,type:serial,primary"`
//	Email string `db:"email,type:varchar(255),notnull,unique"`
//
// Supported tag options: type:<sql type>, primary, unique, notnull,
// default:<literal>, references:<table>.<column>, ondelete:<action>,
// onupdate:<action>. Fields without a db tag are skipped.
func FromStructs(models ...Tabler) ([]Table, error) {
	var tables []Table

	for _, m := range models {
		t := reflect.TypeOf(m)
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("model %s is not a struct", t.Name())
		}

		table := Table{Name: m.TableName()}

		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			tag := field.Tag.Get("db")
			if tag == "" || tag == "-" {
				continue
			}
			col, err := parseDBTag(tag)
			if err != nil {
				return nil, fmt.Errorf("parsing tag on %s.%s: %v", t.Name(), field.Name, err)
			}
			table.Columns = append(table.Columns, col)
		}

		// Composite keys are carried on the table, simple keys on the column.
		if pk := table.PrimaryKeyColumns(); len(pk) > 1 {
			table.PrimaryKey = pk
		}

		tables = append(tables, table)
	}

	return tables, nil
}

func parseDBTag(tag string) (Column, error) {
	parts := strings.Split(tag, ",")

	col := Column{Name: strings.TrimSpace(parts[0])}
	if col.Name == "" {
		return col, fmt.Errorf("missing column name")
	}

	var fk *ForeignKey
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		switch {
		case part == "primary":
			col.Primary = true
		case part == "unique":
			col.Unique = true
		case part == "notnull":
			col.NotNull = true
		case strings.HasPrefix(part, "type:"):
			col.Type = strings.TrimPrefix(part, "type:")
		case strings.HasPrefix(part, "default:"):
			val := strings.TrimPrefix(part, "default:")
			col.Default = &val
		case strings.HasPrefix(part, "references:"):
			ref := strings.TrimPrefix(part, "references:")
			refTable, refColumn, ok := strings.Cut(ref, ".")
			if !ok {
				return col, fmt.Errorf("invalid references %q, want table.column", ref)
			}
			if fk == nil {
				fk = &ForeignKey{}
			}
			fk.ReferencesTable = refTable
			fk.ReferencesColumn = refColumn
		case strings.HasPrefix(part, "ondelete:"):
			if fk == nil {
				fk = &ForeignKey{}
			}
			fk.OnDelete = strings.TrimPrefix(part, "ondelete:")
		case strings.HasPrefix(part, "onupdate:"):
			if fk == nil {
				fk = &ForeignKey{}
			}
			fk.OnUpdate = strings.TrimPrefix(part, "onupdate:")
		case part == "":
			// trailing comma, ignore
		default:
			return col, fmt.Errorf("unknown tag option %q", part)
		}
	}

	if col.Type == "" {
		return col, fmt.Errorf("column %s has no type", col.Name)
	}
	if fk != nil {
		if fk.ReferencesTable == "" {
			return col, fmt.Errorf("column %s has ondelete/onupdate without references", col.Name)
		}
		col.ForeignKey = fk
	}

	return col, nil
}
