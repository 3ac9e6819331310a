// Package loader reads declarative table definitions from YAML, as an
// alternative to the struct models, for drift checks driven by a schema
// file instead of compiled-in models.
package loader

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Khrischatyy/fieldhire-db/schema"
)

type yamlFile struct {
	Tables []yamlTable `yaml:"tables"`
}

type yamlTable struct {
	Name       string       `yaml:"name"`
	Columns    []yamlColumn `yaml:"columns"`
	PrimaryKey []string     `yaml:"primary_key"`
}

type yamlColumn struct {
	Name       string  `yaml:"name"`
	Type       string  `yaml:"type"`
	Primary    bool    `yaml:"primary"`
	Unique     bool    `yaml:"unique"`
	NotNull    bool    `yaml:"notnull"`
	Default    *string `yaml:"default"`
	References string  `yaml:"references"` // "table.column"
	OnDelete   string  `yaml:"ondelete"`
	OnUpdate   string  `yaml:"onupdate"`
}

// LoadTablesFromYAML reads table definitions from a YAML schema file.
func LoadTablesFromYAML(filename string) ([]schema.Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	var yf yamlFile
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return nil, fmt.Errorf("unmarshalling YAML: %w", err)
	}

	var tables []schema.Table
	for _, t := range yf.Tables {
		table := schema.Table{
			Name:       t.Name,
			PrimaryKey: t.PrimaryKey,
		}
		for _, c := range t.Columns {
			col := schema.Column{
				Name:    c.Name,
				Type:    c.Type,
				Primary: c.Primary,
				Unique:  c.Unique,
				NotNull: c.NotNull,
				Default: c.Default,
			}
			if c.References != "" {
				refTable, refColumn, ok := strings.Cut(c.References, ".")
				if !ok || refTable == "" || refColumn == "" {
					return nil, fmt.Errorf("table %s column %s: invalid references %q, want table.column",
						t.Name, c.Name, c.References)
				}
				col.ForeignKey = &schema.ForeignKey{
					ReferencesTable:  refTable,
					ReferencesColumn: refColumn,
					OnDelete:         c.OnDelete,
					OnUpdate:         c.OnUpdate,
				}
			}
			table.Columns = append(table.Columns, col)
		}
		tables = append(tables, table)
	}

	return tables, nil
}
