// Package introspect reads the live database structure from
// information_schema for drift detection. Read-only.
package introspect

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Khrischatyy/fieldhire-db/database"
)

type ExistingTable struct {
	Name       string
	Columns    []ExistingColumn
	PrimaryKey []string
}

type ExistingColumn struct {
	Name         string
	DataType     string
	IsNullable   bool
	Default      *string
	IsPrimaryKey bool
}

// trackingTables are maintained by the runner, not the models; drift
// detection ignores them.
var trackingTables = map[string]bool{
	"schema_revisions": true,
	"migration_logs":   true,
}

// Connect opens a dedicated introspection connection.
func Connect() (*pgx.Conn, error) {
	return database.Connect(context.Background())
}

// Tables reads every public base table with its columns and primary key,
// excluding the runner's tracking tables.
func Tables(ctx context.Context, conn *pgx.Conn) ([]ExistingTable, error) {
	rows, err := conn.Query(ctx, `
	SELECT table_name
	FROM information_schema.tables
	WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
	ORDER BY table_name;
	`)
	if err != nil {
		return nil, fmt.Errorf("querying tables: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %v", err)
		}
		if !trackingTables[name] {
			names = append(names, name)
		}
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterating table rows: %v", rows.Err())
	}

	var tables []ExistingTable
	for _, name := range names {
		t, err := table(ctx, conn, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func table(ctx context.Context, conn *pgx.Conn, name string) (ExistingTable, error) {
	t := ExistingTable{Name: name}

	pk, err := primaryKey(ctx, conn, name)
	if err != nil {
		return t, err
	}
	t.PrimaryKey = pk
	pkSet := map[string]bool{}
	for _, col := range pk {
		pkSet[col] = true
	}

	rows, err := conn.Query(ctx, `
	SELECT column_name, data_type, is_nullable = 'YES', column_default
	FROM information_schema.columns
	WHERE table_schema = 'public' AND table_name = $1
	ORDER BY ordinal_position;
	`, name)
	if err != nil {
		return t, fmt.Errorf("querying columns of %s: %v", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c ExistingColumn
		if err := rows.Scan(&c.Name, &c.DataType, &c.IsNullable, &c.Default); err != nil {
			return t, fmt.Errorf("scanning column of %s: %v", name, err)
		}
		c.IsPrimaryKey = pkSet[c.Name]
		t.Columns = append(t.Columns, c)
	}
	if rows.Err() != nil {
		return t, fmt.Errorf("iterating columns of %s: %v", name, rows.Err())
	}

	return t, nil
}

func primaryKey(ctx context.Context, conn *pgx.Conn, name string) ([]string, error) {
	rows, err := conn.Query(ctx, `
	SELECT kcu.column_name
	FROM information_schema.table_constraints tc
	JOIN information_schema.key_column_usage kcu
	  ON tc.constraint_name = kcu.constraint_name
	 AND tc.table_schema = kcu.table_schema
	WHERE tc.table_schema = 'public'
	  AND tc.table_name = $1
	  AND tc.constraint_type = 'PRIMARY KEY'
	ORDER BY kcu.ordinal_position;
	`, name)
	if err != nil {
		return nil, fmt.Errorf("querying primary key of %s: %v", name, err)
	}
	defer rows.Close()

	var pk []string
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return nil, fmt.Errorf("scanning primary key of %s: %v", name, err)
		}
		pk = append(pk, col)
	}
	return pk, rows.Err()
}
