// Package drift compares the declared models against a live schema and
// reports every difference. It never generates or applies changes; schema
// structure is only ever mutated by migrations.
package drift

import (
	"fmt"
	"strings"

	"github.com/Khrischatyy/fieldhire-db/introspect"
	"github.com/Khrischatyy/fieldhire-db/schema"
)

type Kind string

const (
	MissingTable        Kind = "MISSING_TABLE"
	ExtraTable          Kind = "EXTRA_TABLE"
	MissingColumn       Kind = "MISSING_COLUMN"
	ExtraColumn         Kind = "EXTRA_COLUMN"
	TypeMismatch        Kind = "TYPE_MISMATCH"
	NullabilityMismatch Kind = "NULLABILITY_MISMATCH"
	DefaultMismatch     Kind = "DEFAULT_MISMATCH"
)

type Finding struct {
	Kind   Kind
	Table  string
	Column string
	Detail string
}

func (f Finding) String() string {
	if f.Column != "" {
		return fmt.Sprintf("%s %s.%s: %s", f.Kind, f.Table, f.Column, f.Detail)
	}
	return fmt.Sprintf("%s %s: %s", f.Kind, f.Table, f.Detail)
}

// Compare reports every difference between the declared tables and the live
// ones. An empty result means the database matches the models.
func Compare(declared []schema.Table, live []introspect.ExistingTable) []Finding {
	var findings []Finding

	liveByName := map[string]introspect.ExistingTable{}
	for _, t := range live {
		liveByName[t.Name] = t
	}
	declaredByName := map[string]schema.Table{}
	for _, t := range declared {
		declaredByName[t.Name] = t
	}

	for _, want := range declared {
		have, exists := liveByName[want.Name]
		if !exists {
			findings = append(findings, Finding{
				Kind: MissingTable, Table: want.Name,
				Detail: "declared by models but absent from the database",
			})
			continue
		}
		findings = append(findings, compareTable(want, have)...)
	}

	for _, have := range live {
		if _, exists := declaredByName[have.Name]; !exists {
			findings = append(findings, Finding{
				Kind: ExtraTable, Table: have.Name,
				Detail: "present in the database but not declared by any model",
			})
		}
	}

	return findings
}

func compareTable(want schema.Table, have introspect.ExistingTable) []Finding {
	var findings []Finding

	haveCols := map[string]introspect.ExistingColumn{}
	for _, c := range have.Columns {
		haveCols[c.Name] = c
	}
	wantCols := map[string]bool{}

	for _, wc := range want.Columns {
		wantCols[wc.Name] = true

		hc, exists := haveCols[wc.Name]
		if !exists {
			findings = append(findings, Finding{
				Kind: MissingColumn, Table: want.Name, Column: wc.Name,
				Detail: "declared by the model but absent from the table",
			})
			continue
		}

		if nt := normalizeType(wc.Type); nt != normalizeType(hc.DataType) {
			findings = append(findings, Finding{
				Kind: TypeMismatch, Table: want.Name, Column: wc.Name,
				Detail: fmt.Sprintf("model declares %s, database has %s", wc.Type, hc.DataType),
			})
		}

		// serial columns are not-null with a sequence default; the model
		// tag implies both.
		wantNotNull := wc.NotNull || wc.Primary || isSerial(wc.Type)
		if wantNotNull == hc.IsNullable {
			findings = append(findings, Finding{
				Kind: NullabilityMismatch, Table: want.Name, Column: wc.Name,
				Detail: fmt.Sprintf("model declares notnull=%v, database nullable=%v", wantNotNull, hc.IsNullable),
			})
		}

		if !isSerial(wc.Type) && !defaultsMatch(wc.Default, hc.Default) {
			findings = append(findings, Finding{
				Kind: DefaultMismatch, Table: want.Name, Column: wc.Name,
				Detail: fmt.Sprintf("model declares default %s, database has %s",
					describeDefault(wc.Default), describeDefault(hc.Default)),
			})
		}
	}

	for _, hc := range have.Columns {
		if !wantCols[hc.Name] {
			findings = append(findings, Finding{
				Kind: ExtraColumn, Table: want.Name, Column: hc.Name,
				Detail: "present in the table but not declared by the model",
			})
		}
	}

	return findings
}

// normalizeType maps declared SQL types and information_schema type names
// onto one vocabulary so "varchar(255)" matches "character varying".
func normalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}
	switch t {
	case "serial", "int", "int4", "integer":
		return "integer"
	case "bigserial", "int8", "bigint":
		return "bigint"
	case "varchar", "character varying":
		return "varchar"
	case "bool", "boolean":
		return "boolean"
	case "timestamptz", "timestamp with time zone":
		return "timestamptz"
	case "timestamp", "timestamp without time zone":
		return "timestamp"
	}
	return t
}

func isSerial(t string) bool {
	t = strings.ToLower(strings.TrimSpace(t))
	return t == "serial" || t == "bigserial"
}

// defaultsMatch compares a declared default with a reported one, ignoring
// the cast suffix information_schema appends ('USD'::character varying).
func defaultsMatch(want, have *string) bool {
	if want == nil && have == nil {
		return true
	}
	if want == nil || have == nil {
		return false
	}
	return normalizeDefault(*want) == normalizeDefault(*have)
}

func normalizeDefault(d string) string {
	d = strings.TrimSpace(d)
	if i := strings.Index(d, "::"); i >= 0 {
		d = d[:i]
	}
	return strings.ToLower(d)
}

func describeDefault(d *string) string {
	if d == nil {
		return "<none>"
	}
	return *d
}
